package services

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
)

type CreateHotelInput struct {
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address" binding:"required"`
	Rating  float64 `json:"rating" binding:"min=0,max=5"`
	OwnerID uint    `json:"ownerId" binding:"required"`
}

type UpdateHotelInput struct {
	Name    *string  `json:"name"`
	Address *string  `json:"address"`
	Rating  *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
}

type IHotelService interface {
	Create(input CreateHotelInput) (*models.Hotel, error)
	FindAll(query repository.ListQuery) ([]models.Hotel, error)
	FindOne(id uint) (*models.Hotel, error)
	Update(id uint, input UpdateHotelInput) (*models.Hotel, error)
	Remove(id uint) error
}

type HotelService struct {
	hotelRepo repository.IHotelRepository
}

func NewHotelService(hotelRepo repository.IHotelRepository) IHotelService {
	return &HotelService{hotelRepo: hotelRepo}
}

func (s *HotelService) Create(input CreateHotelInput) (*models.Hotel, error) {
	hotel := &models.Hotel{
		Name:    input.Name,
		Address: input.Address,
		Rating:  input.Rating,
		OwnerID: input.OwnerID,
	}
	if err := s.hotelRepo.Create(hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *HotelService) FindAll(query repository.ListQuery) ([]models.Hotel, error) {
	return s.hotelRepo.FindAll(query)
}

func (s *HotelService) FindOne(id uint) (*models.Hotel, error) {
	hotel, err := s.hotelRepo.FindOne(id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Hotel", id)
		}
		return nil, err
	}
	return hotel, nil
}

func (s *HotelService) Update(id uint, input UpdateHotelInput) (*models.Hotel, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.Rating != nil {
		fields["rating"] = *input.Rating
	}

	hotel, err := s.hotelRepo.Update(id, fields)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Hotel", id)
		}
		return nil, err
	}
	return hotel, nil
}

func (s *HotelService) Remove(id uint) error {
	if err := s.hotelRepo.Remove(id); err != nil {
		if repository.IsRecordNotFound(err) {
			return utils.NewNotFound("Hotel", id)
		}
		return err
	}
	return nil
}
