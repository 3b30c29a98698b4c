// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrCustomerNotFound indicates that the customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerHasAccounts indicates that the customer still owns accounts and cannot be deleted.
	ErrCustomerHasAccounts = errors.New("customer has existing accounts")
)

// Customer holds bank customer data.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
