package services

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
)

type CreateServiceInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	HotelID     uint   `json:"hotelId" binding:"required"`
}

type UpdateServiceInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type IServiceService interface {
	Create(input CreateServiceInput) (*models.Service, error)
	FindAll(query repository.ListQuery) ([]models.Service, error)
	FindOne(id uint) (*models.Service, error)
	FindByHotel(hotelID uint) ([]models.Service, error)
	Update(id uint, input UpdateServiceInput) (*models.Service, error)
	Remove(id uint) error
}

type ServiceService struct {
	serviceRepo repository.IServiceRepository
}

func NewServiceService(serviceRepo repository.IServiceRepository) IServiceService {
	return &ServiceService{serviceRepo: serviceRepo}
}

func (s *ServiceService) Create(input CreateServiceInput) (*models.Service, error) {
	service := &models.Service{
		Name:        input.Name,
		Description: input.Description,
		HotelID:     input.HotelID,
	}
	if err := s.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceService) FindAll(query repository.ListQuery) ([]models.Service, error) {
	return s.serviceRepo.FindAll(query)
}

func (s *ServiceService) FindOne(id uint) (*models.Service, error) {
	service, err := s.serviceRepo.FindOne(id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Service", id)
		}
		return nil, err
	}
	return service, nil
}

func (s *ServiceService) FindByHotel(hotelID uint) ([]models.Service, error) {
	return s.serviceRepo.FindByHotel(hotelID)
}

func (s *ServiceService) Update(id uint, input UpdateServiceInput) (*models.Service, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}

	service, err := s.serviceRepo.Update(id, fields)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Service", id)
		}
		return nil, err
	}
	return service, nil
}

func (s *ServiceService) Remove(id uint) error {
	if err := s.serviceRepo.Remove(id); err != nil {
		if repository.IsRecordNotFound(err) {
			return utils.NewNotFound("Service", id)
		}
		return err
	}
	return nil
}
