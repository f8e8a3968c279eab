package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

type IHotelRepository interface {
	Create(hotel *models.Hotel) error
	FindAll(query ListQuery) ([]models.Hotel, error)
	FindOne(id uint) (*models.Hotel, error)
	Update(id uint, fields map[string]any) (*models.Hotel, error)
	Remove(id uint) error
}

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) IHotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(hotel *models.Hotel) error {
	return r.db.Create(hotel).Error
}

func (r *HotelRepository) FindAll(query ListQuery) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := query.scope(r.db).
		Scopes(searchOn("name", query.Search)).
		Preload("Owner").
		Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) FindOne(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.Preload("Owner").First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) Update(id uint, fields map[string]any) (*models.Hotel, error) {
	hotel, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(hotel).Updates(fields).Error; err != nil {
		return nil, err
	}
	return hotel, nil
}

func (r *HotelRepository) Remove(id uint) error {
	result := r.db.Delete(&models.Hotel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
