package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/utils"
	"gorm.io/gorm"
)

func TestOrderService_Create_ComputesTotalFromLines(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo)

	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil)

	order, err := svc.Create(CreateOrderInput{
		UserID:  1,
		HotelID: 2,
		OrderProducts: []OrderProductInput{
			{ProductID: 10, Quantity: 2, Price: 100},
			{ProductID: 11, Quantity: 3, Price: 20.5},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 261.5, order.Total)
	assert.Len(t, order.OrderProducts, 2)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_Create_DefaultsStatusToPending(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo)

	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil)

	order, err := svc.Create(CreateOrderInput{
		UserID:        1,
		HotelID:       2,
		OrderProducts: []OrderProductInput{{ProductID: 10, Quantity: 1, Price: 5}},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestOrderService_Create_IgnoresClientTotal(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo)

	orderRepo.On("Create", mock.MatchedBy(func(order *models.Order) bool {
		return order.Total == 10
	})).Return(nil)

	order, err := svc.Create(CreateOrderInput{
		UserID:        1,
		HotelID:       2,
		Status:        "CONFIRMED",
		OrderProducts: []OrderProductInput{{ProductID: 10, Quantity: 2, Price: 5}},
	})

	assert.NoError(t, err)
	assert.Equal(t, float64(10), order.Total)
	assert.Equal(t, "CONFIRMED", order.Status)
}

func TestOrderService_FindOne_NotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo)

	orderRepo.On("FindOne", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.FindOne(99)

	assert.True(t, utils.IsNotFound(err))
	assert.EqualError(t, err, "Order with ID 99 not found")
}

func TestOrderService_Update_SendsOnlySetFields(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo)

	status := "CONFIRMED"
	updated := &models.Order{Model: gorm.Model{ID: 1}, Status: status}
	orderRepo.On("Update", uint(1), map[string]any{"status": status}).Return(updated, nil)

	order, err := svc.Update(1, UpdateOrderInput{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, status, order.Status)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_Remove_NotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo)

	orderRepo.On("Remove", uint(99)).Return(gorm.ErrRecordNotFound)

	err := svc.Remove(99)

	assert.True(t, utils.IsNotFound(err))
}
