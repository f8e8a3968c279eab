package services

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
)

type CreateOrderProductInput struct {
	OrderID   uint    `json:"orderId" binding:"required"`
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"min=0"`
}

type UpdateOrderProductInput struct {
	Quantity *int     `json:"quantity" binding:"omitempty,min=1"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
}

type IOrderProductService interface {
	Create(input CreateOrderProductInput) (*models.OrderProduct, error)
	FindAll() ([]models.OrderProduct, error)
	FindOne(id uint) (*models.OrderProduct, error)
	FindByOrder(orderID uint) ([]models.OrderProduct, error)
	Update(id uint, input UpdateOrderProductInput) (*models.OrderProduct, error)
	Remove(id uint) error
}

// OrderProductService owns order line items and keeps the parent order's
// total equal to the sum of price*quantity over its current lines after
// every mutation.
type OrderProductService struct {
	orderProductRepo repository.IOrderProductRepository
	orderService     IOrderService
}

func NewOrderProductService(orderProductRepo repository.IOrderProductRepository, orderService IOrderService) IOrderProductService {
	return &OrderProductService{
		orderProductRepo: orderProductRepo,
		orderService:     orderService,
	}
}

func (s *OrderProductService) Create(input CreateOrderProductInput) (*models.OrderProduct, error) {
	orderProduct := &models.OrderProduct{
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Price:     input.Price,
	}
	if err := s.orderProductRepo.Create(orderProduct); err != nil {
		return nil, err
	}
	if err := s.updateOrderTotal(orderProduct.OrderID); err != nil {
		return nil, err
	}
	return orderProduct, nil
}

func (s *OrderProductService) FindAll() ([]models.OrderProduct, error) {
	return s.orderProductRepo.FindAll()
}

func (s *OrderProductService) FindOne(id uint) (*models.OrderProduct, error) {
	orderProduct, err := s.orderProductRepo.FindOne(id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Order Product", id)
		}
		return nil, err
	}
	return orderProduct, nil
}

func (s *OrderProductService) FindByOrder(orderID uint) ([]models.OrderProduct, error) {
	return s.orderProductRepo.FindByOrder(orderID)
}

// Update resolves the line first so NotFound surfaces before any write.
func (s *OrderProductService) Update(id uint, input UpdateOrderProductInput) (*models.OrderProduct, error) {
	orderProduct, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Quantity != nil {
		fields["quantity"] = *input.Quantity
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}

	updated, err := s.orderProductRepo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if err := s.updateOrderTotal(orderProduct.OrderID); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *OrderProductService) Remove(id uint) error {
	orderProduct, err := s.FindOne(id)
	if err != nil {
		return err
	}
	if err := s.orderProductRepo.Remove(id); err != nil {
		return err
	}
	return s.updateOrderTotal(orderProduct.OrderID)
}

// updateOrderTotal re-reads every line of the order and writes the sum back.
// Reading all lines rather than applying a delta keeps the total correct
// regardless of mutation order.
func (s *OrderProductService) updateOrderTotal(orderID uint) error {
	total, err := s.calculateOrderTotal(orderID)
	if err != nil {
		return err
	}
	_, err = s.orderService.Update(orderID, UpdateOrderInput{Total: &total})
	return err
}

func (s *OrderProductService) calculateOrderTotal(orderID uint) (float64, error) {
	orderProducts, err := s.FindByOrder(orderID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, product := range orderProducts {
		total += product.Price * float64(product.Quantity)
	}
	return total, nil
}
