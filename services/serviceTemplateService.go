package services

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
)

type CreateServiceTemplateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
	Link        string `json:"link" binding:"required"`
}

type UpdateServiceTemplateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
}

type IServiceTemplateService interface {
	Create(input CreateServiceTemplateInput) (*models.ServiceTemplate, error)
	FindAll(query repository.ListQuery) ([]models.ServiceTemplate, error)
	FindOne(id uint) (*models.ServiceTemplate, error)
	Update(id uint, input UpdateServiceTemplateInput) (*models.ServiceTemplate, error)
	Remove(id uint) error
}

type ServiceTemplateService struct {
	templateRepo repository.IServiceTemplateRepository
}

func NewServiceTemplateService(templateRepo repository.IServiceTemplateRepository) IServiceTemplateService {
	return &ServiceTemplateService{templateRepo: templateRepo}
}

func (s *ServiceTemplateService) Create(input CreateServiceTemplateInput) (*models.ServiceTemplate, error) {
	template := &models.ServiceTemplate{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Link:        input.Link,
	}
	if err := s.templateRepo.Create(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *ServiceTemplateService) FindAll(query repository.ListQuery) ([]models.ServiceTemplate, error) {
	return s.templateRepo.FindAll(query)
}

func (s *ServiceTemplateService) FindOne(id uint) (*models.ServiceTemplate, error) {
	template, err := s.templateRepo.FindOne(id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Service template", id)
		}
		return nil, err
	}
	return template, nil
}

// Update resolves the template first so NotFound surfaces before any write.
func (s *ServiceTemplateService) Update(id uint, input UpdateServiceTemplateInput) (*models.ServiceTemplate, error) {
	if _, err := s.FindOne(id); err != nil {
		return nil, err
	}

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

	return s.templateRepo.Update(id, fields)
}

func (s *ServiceTemplateService) Remove(id uint) error {
	if _, err := s.FindOne(id); err != nil {
		return err
	}
	return s.templateRepo.Remove(id)
}
