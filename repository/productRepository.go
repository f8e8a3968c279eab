package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

type IProductRepository interface {
	Create(product *models.Product) error
	FindAll(query ListQuery) ([]models.Product, error)
	FindOne(id uint) (*models.Product, error)
	FindByService(serviceID uint) ([]models.Product, error)
	FindByHotel(hotelID uint) ([]models.Product, error)
	Update(id uint, fields map[string]any) (*models.Product, error)
	Remove(id uint) error
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) FindAll(query ListQuery) ([]models.Product, error) {
	var products []models.Product
	err := query.scope(r.db).
		Scopes(searchOn("name", query.Search)).
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindOne(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindByService(serviceID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("service_id = ?", serviceID).Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByHotel(hotelID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("hotel_id = ?", hotelID).Find(&products).Error
	return products, err
}

func (r *ProductRepository) Update(id uint, fields map[string]any) (*models.Product, error) {
	product, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(product).Updates(fields).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) Remove(id uint) error {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
