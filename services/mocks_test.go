package services

import (
	"github.com/stretchr/testify/mock"
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(userID uint) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByUser(userID uint) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByID(id uint) (*models.Cart, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) AddItem(cartID, productID uint, quantity int, price float64) (*models.CartItem, error) {
	args := m.Called(cartID, productID, quantity, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) UpdateItemQuantity(itemID uint, quantity int) (*models.CartItem, error) {
	args := m.Called(itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) RemoveItem(itemID uint) error {
	args := m.Called(itemID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(cartID uint) (*models.Cart, error) {
	args := m.Called(cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) FindAll(query repository.ListQuery) ([]models.Product, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindOne(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByService(serviceID uint) ([]models.Product, error) {
	args := m.Called(serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByHotel(hotelID uint) ([]models.Product, error) {
	args := m.Called(hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(id uint, fields map[string]any) (*models.Product, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Remove(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindAll(query repository.OrderListQuery) ([]models.Order, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOne(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByHotel(hotelID uint) ([]models.Order, error) {
	args := m.Called(hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(id uint, fields map[string]any) (*models.Order, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Remove(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockOrderProductRepository struct {
	mock.Mock
}

func (m *MockOrderProductRepository) Create(orderProduct *models.OrderProduct) error {
	args := m.Called(orderProduct)
	return args.Error(0)
}

func (m *MockOrderProductRepository) FindAll() ([]models.OrderProduct, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderProduct), args.Error(1)
}

func (m *MockOrderProductRepository) FindOne(id uint) (*models.OrderProduct, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderProduct), args.Error(1)
}

func (m *MockOrderProductRepository) FindByOrder(orderID uint) ([]models.OrderProduct, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderProduct), args.Error(1)
}

func (m *MockOrderProductRepository) Update(id uint, fields map[string]any) (*models.OrderProduct, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderProduct), args.Error(1)
}

func (m *MockOrderProductRepository) Remove(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll(query repository.ListQuery) ([]models.User, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindOne(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(id uint, fields map[string]any) (*models.User, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Remove(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockServiceTemplateRepository struct {
	mock.Mock
}

func (m *MockServiceTemplateRepository) Create(template *models.ServiceTemplate) error {
	args := m.Called(template)
	return args.Error(0)
}

func (m *MockServiceTemplateRepository) FindAll(query repository.ListQuery) ([]models.ServiceTemplate, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceTemplate), args.Error(1)
}

func (m *MockServiceTemplateRepository) FindOne(id uint) (*models.ServiceTemplate, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceTemplate), args.Error(1)
}

func (m *MockServiceTemplateRepository) Update(id uint, fields map[string]any) (*models.ServiceTemplate, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceTemplate), args.Error(1)
}

func (m *MockServiceTemplateRepository) Remove(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockSystemServiceRepository struct {
	mock.Mock
}

func (m *MockSystemServiceRepository) Create(systemService *models.SystemService) error {
	args := m.Called(systemService)
	return args.Error(0)
}

func (m *MockSystemServiceRepository) FindAll(query repository.ListQuery) ([]models.SystemService, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SystemService), args.Error(1)
}

func (m *MockSystemServiceRepository) FindOne(id uint) (*models.SystemService, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SystemService), args.Error(1)
}

func (m *MockSystemServiceRepository) FindByHotel(hotelID uint) ([]models.SystemService, error) {
	args := m.Called(hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SystemService), args.Error(1)
}

func (m *MockSystemServiceRepository) Update(id uint, fields map[string]any) (*models.SystemService, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SystemService), args.Error(1)
}

func (m *MockSystemServiceRepository) Remove(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(input CreateOrderInput) (*models.Order, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) FindAll(query repository.OrderListQuery) ([]models.Order, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) FindOne(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) FindByUser(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) FindByHotel(hotelID uint) ([]models.Order, error) {
	args := m.Called(hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) Update(id uint, input UpdateOrderInput) (*models.Order, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) Remove(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
