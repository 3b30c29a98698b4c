// Package customerservice manages business logic layer of customers.
package customerservice

import (
	"context"

	"ebank/internal/domain"
)

// Repo provides data access layer interface needed by customer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package customerservice
type Repo interface {
	Create(ctx context.Context, name, email string) (domain.Customer, error)
	Get(ctx context.Context, id int64) (domain.Customer, error)
	Update(ctx context.Context, id int64, name, email string) (domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, keyword string) ([]domain.Customer, error)
}

// Service facilitates customer service layer logic.
type Service struct {
	repo Repo
}

// New returns customer service struct to manage customer business logic.
func New(cr Repo) *Service {
	return &Service{repo: cr}
}

// Create creates and returns a customer with the given name and email.
func (s *Service) Create(ctx context.Context, name, email string) (domain.Customer, error) {
	return s.repo.Create(ctx, name, email)
}

// Get returns the customer for the given customer ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Customer, error) {
	return s.repo.Get(ctx, id)
}

// Update overwrites the customer's name and email. The customer must already
// exist.
func (s *Service) Update(ctx context.Context, id int64, name, email string) (domain.Customer, error) {
	return s.repo.Update(ctx, id, name, email)
}

// Delete removes the customer. A customer that still owns accounts is not
// deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List returns all customers.
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// Search returns the customers whose name contains the given keyword.
func (s *Service) Search(ctx context.Context, keyword string) ([]domain.Customer, error) {
	return s.repo.Search(ctx, keyword)
}
