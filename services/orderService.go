package services

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
)

type OrderProductInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"min=0"`
}

type CreateOrderInput struct {
	UserID        uint                `json:"userId" binding:"required"`
	HotelID       uint                `json:"hotelId" binding:"required"`
	Status        string              `json:"status"`
	OrderProducts []OrderProductInput `json:"orderProducts" binding:"required,min=1,dive"`
}

type UpdateOrderInput struct {
	Status *string  `json:"status"`
	Total  *float64 `json:"total" binding:"omitempty,min=0"`
}

type IOrderService interface {
	Create(input CreateOrderInput) (*models.Order, error)
	FindAll(query repository.OrderListQuery) ([]models.Order, error)
	FindOne(id uint) (*models.Order, error)
	FindByUser(userID uint) ([]models.Order, error)
	FindByHotel(hotelID uint) ([]models.Order, error)
	Update(id uint, input UpdateOrderInput) (*models.Order, error)
	Remove(id uint) error
}

type OrderService struct {
	orderRepo repository.IOrderRepository
}

func NewOrderService(orderRepo repository.IOrderRepository) IOrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Create persists the order together with its products. The total is always
// recomputed from the supplied product lines; a client-sent total is ignored.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	var total float64
	orderProducts := make([]models.OrderProduct, 0, len(input.OrderProducts))
	for _, product := range input.OrderProducts {
		total += product.Price * float64(product.Quantity)
		orderProducts = append(orderProducts, models.OrderProduct{
			ProductID: product.ProductID,
			Quantity:  product.Quantity,
			Price:     product.Price,
		})
	}

	status := input.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	order := &models.Order{
		UserID:        input.UserID,
		HotelID:       input.HotelID,
		Status:        status,
		Total:         total,
		OrderProducts: orderProducts,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) FindAll(query repository.OrderListQuery) ([]models.Order, error) {
	return s.orderRepo.FindAll(query)
}

func (s *OrderService) FindOne(id uint) (*models.Order, error) {
	order, err := s.orderRepo.FindOne(id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Order", id)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) FindByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.FindByUser(userID)
}

func (s *OrderService) FindByHotel(hotelID uint) ([]models.Order, error) {
	return s.orderRepo.FindByHotel(hotelID)
}

func (s *OrderService) Update(id uint, input UpdateOrderInput) (*models.Order, error) {
	fields := map[string]any{}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Total != nil {
		fields["total"] = *input.Total
	}

	order, err := s.orderRepo.Update(id, fields)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Order", id)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Remove(id uint) error {
	if err := s.orderRepo.Remove(id); err != nil {
		if repository.IsRecordNotFound(err) {
			return utils.NewNotFound("Order", id)
		}
		return err
	}
	return nil
}
