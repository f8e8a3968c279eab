package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

type ICartRepository interface {
	Create(userID uint) (*models.Cart, error)
	FindByUser(userID uint) (*models.Cart, error)
	FindByID(id uint) (*models.Cart, error)
	AddItem(cartID, productID uint, quantity int, price float64) (*models.CartItem, error)
	UpdateItemQuantity(itemID uint, quantity int) (*models.CartItem, error)
	RemoveItem(itemID uint) error
	Clear(cartID uint) (*models.Cart, error)
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Create(userID uint) (*models.Cart, error) {
	cart := models.Cart{UserID: userID}
	if err := r.db.Create(&cart).Error; err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}
	return &cart, nil
}

func (r *CartRepository) FindByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Items.Product").
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) FindByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items.Product").
		First(&cart, id).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) AddItem(cartID, productID uint, quantity int, price float64) (*models.CartItem, error) {
	item := models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	if err := r.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) UpdateItemQuantity(itemID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) RemoveItem(itemID uint) error {
	result := r.db.Delete(&models.CartItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Clear deletes every item in the cart but keeps the cart row itself.
func (r *CartRepository) Clear(cartID uint) (*models.Cart, error) {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}
	var cart models.Cart
	if err := r.db.First(&cart, cartID).Error; err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}
	return &cart, nil
}
