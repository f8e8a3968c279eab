package services

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
)

type CreateCategoryInput struct {
	Name      string `json:"name" binding:"required"`
	ServiceID uint   `json:"serviceId" binding:"required"`
	HotelID   uint   `json:"hotelId" binding:"required"`
}

type UpdateCategoryInput struct {
	Name *string `json:"name"`
}

type ICategoryService interface {
	Create(input CreateCategoryInput) (*models.Category, error)
	FindAll(query repository.ListQuery) ([]models.Category, error)
	FindOne(id uint) (*models.Category, error)
	FindByHotel(hotelID uint) ([]models.Category, error)
	FindByService(serviceID uint) ([]models.Category, error)
	Update(id uint, input UpdateCategoryInput) (*models.Category, error)
	Remove(id uint) error
}

type CategoryService struct {
	categoryRepo repository.ICategoryRepository
}

func NewCategoryService(categoryRepo repository.ICategoryRepository) ICategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:      input.Name,
		ServiceID: input.ServiceID,
		HotelID:   input.HotelID,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) FindAll(query repository.ListQuery) ([]models.Category, error) {
	return s.categoryRepo.FindAll(query)
}

func (s *CategoryService) FindOne(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.FindOne(id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Category", id)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) FindByHotel(hotelID uint) ([]models.Category, error) {
	return s.categoryRepo.FindByHotel(hotelID)
}

func (s *CategoryService) FindByService(serviceID uint) ([]models.Category, error) {
	return s.categoryRepo.FindByService(serviceID)
}

func (s *CategoryService) Update(id uint, input UpdateCategoryInput) (*models.Category, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}

	category, err := s.categoryRepo.Update(id, fields)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Category", id)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Remove(id uint) error {
	if err := s.categoryRepo.Remove(id); err != nil {
		if repository.IsRecordNotFound(err) {
			return utils.NewNotFound("Category", id)
		}
		return err
	}
	return nil
}
