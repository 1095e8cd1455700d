package services

import (
	"context"
	"errors"
	"testing"

	"order-assistant/internal/domain"
	"order-assistant/internal/mocks"
	"order-assistant/internal/repository"
	"order-assistant/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validDraft() validation.CreateOrderRequest {
	return validation.CreateOrderRequest{
		OrderNumber:        TestOrderNumber,
		BuyerName:          TestBuyerName,
		ShippingName:       TestBuyerName,
		ShippingAddress1:   "1 Main St",
		ShippingCity:       "Rome",
		ShippingPostalCode: "00100",
		ShippingCountry:    "IT",
		Items: []validation.OrderItemDraft{
			{Title: TestItemTitle, Quantity: 2},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*validation.CreateOrderRequest)
		setupMocks     func(*mocks.MockOrderRepository)
		expectedStatus domain.OrderStatus
		expectedError  error
	}{
		{
			name: "status defaults to NOT_SHIPPED",
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).
					Return(nil).
					Run(func(args mock.Arguments) {
						order := args.Get(1).(*domain.Order)
						order.ID = 1
					})
			},
			expectedStatus: domain.StatusNotShipped,
		},
		{
			name:   "explicit status kept",
			mutate: func(r *validation.CreateOrderRequest) { r.Status = "SHIPPED" },
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).
					Return(nil).
					Run(func(args mock.Arguments) {
						order := args.Get(1).(*domain.Order)
						order.ID = 2
					})
			},
			expectedStatus: domain.StatusShipped,
		},
		{
			name: "duplicate order number surfaces as conflict",
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).
					Return(repository.ErrDuplicateOrderNumber)
			},
			expectedError: repository.ErrDuplicateOrderNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			tt.setupMocks(mockRepo)

			req := validDraft()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			service := NewOrderService(mockRepo)
			order, err := service.CreateOrder(context.Background(), req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.NotZero(t, order.ID)
				assert.Equal(t, tt.expectedStatus, order.Status)
				assert.Len(t, order.Items, 1)
				assert.Equal(t, TestItemTitle, order.Items[0].Title)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	expected := CreateMockOrder(TestOrderID, TestOrderNumber, domain.StatusNotShipped)
	mockRepo.On("FindByID", mock.Anything, TestOrderID).Return(expected, nil)

	service := NewOrderService(mockRepo)
	got, err := service.GetOrder(context.Background(), TestOrderID)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockRepo.On("FindByID", mock.Anything, uint64(404)).Return(nil, nil)

	service := NewOrderService(mockRepo)
	got, err := service.GetOrder(context.Background(), 404)

	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, got)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		affected      bool
		repoErr       error
		expectedError error
	}{
		{name: "updated", affected: true},
		{name: "missing order", affected: false, expectedError: ErrOrderNotFound},
		{name: "repository error", repoErr: errors.New("database error"), expectedError: errors.New("database error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			mockRepo.On("UpdateStatus", mock.Anything, TestOrderID, domain.StatusShipped).
				Return(tt.affected, tt.repoErr)

			service := NewOrderService(mockRepo)
			err := service.UpdateStatus(context.Background(), TestOrderID, domain.StatusShipped)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockRepo.On("Delete", mock.Anything, TestOrderID).Return(true, nil)

	service := NewOrderService(mockRepo)
	assert.NoError(t, service.DeleteOrder(context.Background(), TestOrderID))

	mockRepo = new(mocks.MockOrderRepository)
	mockRepo.On("Delete", mock.Anything, uint64(404)).Return(false, nil)

	service = NewOrderService(mockRepo)
	assert.ErrorIs(t, service.DeleteOrder(context.Background(), 404), ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	expected := []domain.Order{
		*CreateMockOrder(2, "A-2", domain.StatusShipped),
		*CreateMockOrder(1, "A-1", domain.StatusNotShipped),
	}
	mockRepo.On("List", mock.Anything, 20, 0).Return(expected, nil)

	service := NewOrderService(mockRepo)
	got, err := service.ListOrders(context.Background(), 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
	mockRepo.AssertExpectations(t)
}
