package customerservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"ebank/internal/domain"
	"ebank/pkg/randompkg"
)

func randomCustomer(id int64) domain.Customer {
	return domain.Customer{
		ID:        id,
		Name:      randompkg.Name(),
		Email:     randompkg.Email(),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreate(t *testing.T) {
	testCustomer := randomCustomer(1)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Eq(testCustomer.Name), gomock.Eq(testCustomer.Email)).
		Times(1).
		Return(testCustomer, nil)

	service := New(repo)

	customer, err := service.Create(context.Background(), testCustomer.Name, testCustomer.Email)
	require.NoError(t, err)
	require.Equal(t, testCustomer, customer)
}

func TestGet(t *testing.T) {
	testCustomer := randomCustomer(1)

	testCases := []struct {
		name          string
		id            int64
		buildStubs    func(repo *MockRepo)
		checkResponse func(customer domain.Customer, err error)
	}{
		{
			name: "OK",
			id:   testCustomer.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(testCustomer.ID)).
					Times(1).
					Return(testCustomer, nil)
			},
			checkResponse: func(customer domain.Customer, err error) {
				require.NoError(t, err)
				require.Equal(t, testCustomer, customer)
			},
		},
		{
			name: "NotFound",
			id:   404,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(int64(404))).
					Times(1).
					Return(domain.Customer{}, domain.ErrCustomerNotFound)
			},
			checkResponse: func(customer domain.Customer, err error) {
				require.EqualError(t, err, domain.ErrCustomerNotFound.Error())
				require.Empty(t, customer)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			customer, err := service.Get(context.Background(), tc.id)
			tc.checkResponse(customer, err)
		})
	}
}

func TestUpdate(t *testing.T) {
	testCustomer := randomCustomer(1)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Eq(testCustomer.ID), gomock.Eq("updated"), gomock.Eq(testCustomer.Email)).
		Times(1).
		Return(domain.Customer{}, domain.ErrCustomerNotFound)

	service := New(repo)

	_, err := service.Update(context.Background(), testCustomer.ID, "updated", testCustomer.Email)
	require.EqualError(t, err, domain.ErrCustomerNotFound.Error())
}

func TestDelete(t *testing.T) {
	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Delete(gomock.Any(), gomock.Eq(int64(1))).Times(1).Return(nil)
			},
			wantErr: nil,
		},
		{
			name: "HasAccounts",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Delete(gomock.Any(), gomock.Eq(int64(1))).
					Times(1).
					Return(domain.ErrCustomerHasAccounts)
			},
			wantErr: domain.ErrCustomerHasAccounts,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			err := service.Delete(context.Background(), 1)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.wantErr.Error())
			}
		})
	}
}

func TestSearch(t *testing.T) {
	matches := []domain.Customer{randomCustomer(1), randomCustomer(2)}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Search(gomock.Any(), gomock.Eq("ali")).Times(1).Return(matches, nil)

	service := New(repo)

	customers, err := service.Search(context.Background(), "ali")
	require.NoError(t, err)
	require.Equal(t, matches, customers)
}
