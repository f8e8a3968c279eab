package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

type ICategoryRepository interface {
	Create(category *models.Category) error
	FindAll(query ListQuery) ([]models.Category, error)
	FindOne(id uint) (*models.Category, error)
	FindByHotel(hotelID uint) ([]models.Category, error)
	FindByService(serviceID uint) ([]models.Category, error)
	Update(id uint, fields map[string]any) (*models.Category, error)
	Remove(id uint) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) FindAll(query ListQuery) ([]models.Category, error) {
	var categories []models.Category
	err := query.scope(r.db).
		Scopes(searchOn("name", query.Search)).
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindOne(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByHotel(hotelID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("hotel_id = ?", hotelID).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByService(serviceID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("service_id = ?", serviceID).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Update(id uint, fields map[string]any) (*models.Category, error) {
	category, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(category).Updates(fields).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) Remove(id uint) error {
	result := r.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
