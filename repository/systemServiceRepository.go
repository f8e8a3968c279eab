package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

type ISystemServiceRepository interface {
	Create(systemService *models.SystemService) error
	FindAll(query ListQuery) ([]models.SystemService, error)
	FindOne(id uint) (*models.SystemService, error)
	FindByHotel(hotelID uint) ([]models.SystemService, error)
	Update(id uint, fields map[string]any) (*models.SystemService, error)
	Remove(id uint) error
}

type SystemServiceRepository struct {
	db *gorm.DB
}

func NewSystemServiceRepository(db *gorm.DB) ISystemServiceRepository {
	return &SystemServiceRepository{db: db}
}

func (r *SystemServiceRepository) Create(systemService *models.SystemService) error {
	return r.db.Create(systemService).Error
}

func (r *SystemServiceRepository) FindAll(query ListQuery) ([]models.SystemService, error) {
	var systemServices []models.SystemService
	err := query.scope(r.db).
		Scopes(searchOn("name", query.Search)).
		Find(&systemServices).Error
	return systemServices, err
}

func (r *SystemServiceRepository) FindOne(id uint) (*models.SystemService, error) {
	var systemService models.SystemService
	if err := r.db.First(&systemService, id).Error; err != nil {
		return nil, err
	}
	return &systemService, nil
}

func (r *SystemServiceRepository) FindByHotel(hotelID uint) ([]models.SystemService, error) {
	var systemServices []models.SystemService
	err := r.db.Where("hotel_id = ?", hotelID).Find(&systemServices).Error
	return systemServices, err
}

func (r *SystemServiceRepository) Update(id uint, fields map[string]any) (*models.SystemService, error) {
	systemService, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(systemService).Updates(fields).Error; err != nil {
		return nil, err
	}
	return systemService, nil
}

func (r *SystemServiceRepository) Remove(id uint) error {
	result := r.db.Delete(&models.SystemService{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
