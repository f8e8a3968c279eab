package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

type IServiceRepository interface {
	Create(service *models.Service) error
	FindAll(query ListQuery) ([]models.Service, error)
	FindOne(id uint) (*models.Service, error)
	FindByHotel(hotelID uint) ([]models.Service, error)
	Update(id uint, fields map[string]any) (*models.Service, error)
	Remove(id uint) error
}

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) IServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *ServiceRepository) FindAll(query ListQuery) ([]models.Service, error) {
	var services []models.Service
	err := query.scope(r.db).
		Scopes(searchOn("name", query.Search)).
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) FindOne(id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) FindByHotel(hotelID uint) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("hotel_id = ?", hotelID).Find(&services).Error
	return services, err
}

func (r *ServiceRepository) Update(id uint, fields map[string]any) (*models.Service, error) {
	service, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(service).Updates(fields).Error; err != nil {
		return nil, err
	}
	return service, nil
}

func (r *ServiceRepository) Remove(id uint) error {
	result := r.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
