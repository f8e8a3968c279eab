package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

type IOrderProductRepository interface {
	Create(orderProduct *models.OrderProduct) error
	FindAll() ([]models.OrderProduct, error)
	FindOne(id uint) (*models.OrderProduct, error)
	FindByOrder(orderID uint) ([]models.OrderProduct, error)
	Update(id uint, fields map[string]any) (*models.OrderProduct, error)
	Remove(id uint) error
}

type OrderProductRepository struct {
	db *gorm.DB
}

func NewOrderProductRepository(db *gorm.DB) IOrderProductRepository {
	return &OrderProductRepository{db: db}
}

func (r *OrderProductRepository) Create(orderProduct *models.OrderProduct) error {
	return r.db.Create(orderProduct).Error
}

func (r *OrderProductRepository) FindAll() ([]models.OrderProduct, error) {
	var orderProducts []models.OrderProduct
	err := r.db.Find(&orderProducts).Error
	return orderProducts, err
}

func (r *OrderProductRepository) FindOne(id uint) (*models.OrderProduct, error) {
	var orderProduct models.OrderProduct
	if err := r.db.First(&orderProduct, id).Error; err != nil {
		return nil, err
	}
	return &orderProduct, nil
}

func (r *OrderProductRepository) FindByOrder(orderID uint) ([]models.OrderProduct, error) {
	var orderProducts []models.OrderProduct
	err := r.db.Where("order_id = ?", orderID).Find(&orderProducts).Error
	return orderProducts, err
}

func (r *OrderProductRepository) Update(id uint, fields map[string]any) (*models.OrderProduct, error) {
	orderProduct, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(orderProduct).Updates(fields).Error; err != nil {
		return nil, err
	}
	return orderProduct, nil
}

func (r *OrderProductRepository) Remove(id uint) error {
	result := r.db.Delete(&models.OrderProduct{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
