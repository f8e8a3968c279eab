package services

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
)

type CreateSystemServiceInput struct {
	HotelID           uint `json:"hotelId" binding:"required"`
	ServiceTemplateID uint `json:"serviceTemplateId" binding:"required"`
}

type UpdateSystemServiceInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
}

type ISystemServiceService interface {
	Create(input CreateSystemServiceInput) (*models.SystemService, error)
	FindAll(query repository.ListQuery) ([]models.SystemService, error)
	FindOne(id uint) (*models.SystemService, error)
	FindByHotel(hotelID uint) ([]models.SystemService, error)
	Update(id uint, input UpdateSystemServiceInput) (*models.SystemService, error)
	Remove(id uint) error
}

// SystemServiceService instantiates service templates for hotels. Template
// fields are cloned at creation time; later template edits do not propagate.
type SystemServiceService struct {
	systemServiceRepo repository.ISystemServiceRepository
	templateRepo      repository.IServiceTemplateRepository
}

func NewSystemServiceService(systemServiceRepo repository.ISystemServiceRepository, templateRepo repository.IServiceTemplateRepository) ISystemServiceService {
	return &SystemServiceService{
		systemServiceRepo: systemServiceRepo,
		templateRepo:      templateRepo,
	}
}

func (s *SystemServiceService) Create(input CreateSystemServiceInput) (*models.SystemService, error) {
	template, err := s.templateRepo.FindOne(input.ServiceTemplateID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Service template", input.ServiceTemplateID)
		}
		return nil, err
	}

	systemService := &models.SystemService{
		HotelID:           input.HotelID,
		ServiceTemplateID: template.ID,
		Name:              template.Name,
		Description:       template.Description,
		Image:             template.Image,
		Link:              template.Link,
	}
	if err := s.systemServiceRepo.Create(systemService); err != nil {
		return nil, err
	}
	return systemService, nil
}

func (s *SystemServiceService) FindAll(query repository.ListQuery) ([]models.SystemService, error) {
	return s.systemServiceRepo.FindAll(query)
}

func (s *SystemServiceService) FindOne(id uint) (*models.SystemService, error) {
	systemService, err := s.systemServiceRepo.FindOne(id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("System service", id)
		}
		return nil, err
	}
	return systemService, nil
}

func (s *SystemServiceService) FindByHotel(hotelID uint) ([]models.SystemService, error) {
	return s.systemServiceRepo.FindByHotel(hotelID)
}

func (s *SystemServiceService) Update(id uint, input UpdateSystemServiceInput) (*models.SystemService, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if input.Link != nil {
		fields["link"] = *input.Link
	}

	systemService, err := s.systemServiceRepo.Update(id, fields)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("System service", id)
		}
		return nil, err
	}
	return systemService, nil
}

func (s *SystemServiceService) Remove(id uint) error {
	if err := s.systemServiceRepo.Remove(id); err != nil {
		if repository.IsRecordNotFound(err) {
			return utils.NewNotFound("System service", id)
		}
		return err
	}
	return nil
}
