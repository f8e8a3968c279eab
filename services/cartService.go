package services

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
)

type AddCartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

type ICartService interface {
	GetCartByUser(userID uint) (*models.Cart, error)
	GetCartByID(cartID uint) (*models.Cart, error)
	AddItem(cartID, productID uint, quantity int) (*models.CartItem, error)
	UpdateItemQuantity(itemID uint, quantity int) (*models.CartItem, error)
	RemoveItem(itemID uint) error
	ClearCart(cartID uint) (*models.Cart, error)
	Checkout(cartID uint) (*models.Order, error)
}

// CartService manages a user's in-progress selection and converts it into a
// placed order.
type CartService struct {
	cartRepo     repository.ICartRepository
	productRepo  repository.IProductRepository
	orderService IOrderService
}

func NewCartService(cartRepo repository.ICartRepository, productRepo repository.IProductRepository, orderService IOrderService) ICartService {
	return &CartService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		orderService: orderService,
	}
}

// GetCartByUser returns the user's cart, creating an empty one on first
// access.
func (s *CartService) GetCartByUser(userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.FindByUser(userID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return s.cartRepo.Create(userID)
		}
		return nil, err
	}
	return cart, nil
}

func (s *CartService) GetCartByID(cartID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.FindByID(cartID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Cart", cartID)
		}
		return nil, err
	}
	return cart, nil
}

// AddItem merges quantities when the product is already in the cart;
// otherwise it inserts a new line priced from the current catalog.
func (s *CartService) AddItem(cartID, productID uint, quantity int) (*models.CartItem, error) {
	cart, err := s.GetCartByID(cartID)
	if err != nil {
		return nil, err
	}

	for _, item := range cart.Items {
		if item.ProductID == productID {
			return s.UpdateItemQuantity(item.ID, item.Quantity+quantity)
		}
	}

	product, err := s.productRepo.FindOne(productID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Product", productID)
		}
		return nil, err
	}

	return s.cartRepo.AddItem(cart.ID, productID, quantity, product.Price)
}

// UpdateItemQuantity treats quantity zero as removal and returns a nil item
// in that case.
func (s *CartService) UpdateItemQuantity(itemID uint, quantity int) (*models.CartItem, error) {
	if quantity == 0 {
		return nil, s.RemoveItem(itemID)
	}

	item, err := s.cartRepo.UpdateItemQuantity(itemID, quantity)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Cart item", itemID)
		}
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveItem(itemID uint) error {
	if err := s.cartRepo.RemoveItem(itemID); err != nil {
		if repository.IsRecordNotFound(err) {
			return utils.NewNotFound("Cart item", itemID)
		}
		return err
	}
	return nil
}

func (s *CartService) ClearCart(cartID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.Clear(cartID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Cart", cartID)
		}
		return nil, err
	}
	return cart, nil
}

// Checkout converts the cart's contents into one order and clears the cart.
// Order creation and cart clearing are two independent store operations; on
// order-creation failure the cart is left untouched.
func (s *CartService) Checkout(cartID uint) (*models.Order, error) {
	cart, err := s.GetCartByID(cartID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, utils.ErrCartEmpty
	}

	// All items in one cart are assumed to belong to one hotel; the order's
	// hotel comes from the first line's product. A line whose product no
	// longer resolves cannot be ordered.
	if cart.Items[0].Product == nil {
		return nil, utils.NewNotFound("Product", cart.Items[0].ProductID)
	}
	hotelID := cart.Items[0].Product.HotelID

	orderProducts := make([]OrderProductInput, 0, len(cart.Items))
	for _, item := range cart.Items {
		orderProducts = append(orderProducts, OrderProductInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := s.orderService.Create(CreateOrderInput{
		UserID:        cart.UserID,
		HotelID:       hotelID,
		Status:        models.OrderStatusPending,
		OrderProducts: orderProducts,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.ClearCart(cart.ID); err != nil {
		return nil, err
	}
	return order, nil
}
