package services

import (
	"encoding/json"

	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
	"gorm.io/datatypes"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,min=0"`
	Images      []string `json:"images"`
	ServiceID   uint     `json:"serviceId" binding:"required"`
	HotelID     uint     `json:"hotelId" binding:"required"`
	CategoryID  uint     `json:"categoryId" binding:"required"`
}

type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" binding:"omitempty,min=0"`
	Images      *[]string `json:"images"`
	CategoryID  *uint     `json:"categoryId"`
}

type IProductService interface {
	Create(input CreateProductInput) (*models.Product, error)
	FindAll(query repository.ListQuery) ([]models.Product, error)
	FindOne(id uint) (*models.Product, error)
	FindByService(serviceID uint) ([]models.Product, error)
	FindByHotel(hotelID uint) ([]models.Product, error)
	Update(id uint, input UpdateProductInput) (*models.Product, error)
	AddImages(id uint, urls []string) (*models.Product, error)
	Remove(id uint) error
}

type ProductService struct {
	productRepo repository.IProductRepository
}

func NewProductService(productRepo repository.IProductRepository) IProductService {
	return &ProductService{productRepo: productRepo}
}

func imagesJSON(urls []string) (datatypes.JSON, error) {
	if urls == nil {
		urls = []string{}
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	images, err := imagesJSON(input.Images)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      images,
		ServiceID:   input.ServiceID,
		HotelID:     input.HotelID,
		CategoryID:  input.CategoryID,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) FindAll(query repository.ListQuery) ([]models.Product, error) {
	return s.productRepo.FindAll(query)
}

func (s *ProductService) FindOne(id uint) (*models.Product, error) {
	product, err := s.productRepo.FindOne(id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Product", id)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) FindByService(serviceID uint) ([]models.Product, error) {
	return s.productRepo.FindByService(serviceID)
}

func (s *ProductService) FindByHotel(hotelID uint) ([]models.Product, error) {
	return s.productRepo.FindByHotel(hotelID)
}

func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Images != nil {
		images, err := imagesJSON(*input.Images)
		if err != nil {
			return nil, err
		}
		fields["images"] = images
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}

	product, err := s.productRepo.Update(id, fields)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("Product", id)
		}
		return nil, err
	}
	return product, nil
}

// AddImages appends uploaded image URLs to the product's image list.
func (s *ProductService) AddImages(id uint, urls []string) (*models.Product, error) {
	product, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	var existing []string
	if len(product.Images) > 0 {
		if err := json.Unmarshal(product.Images, &existing); err != nil {
			return nil, err
		}
	}

	merged := append(existing, urls...)
	return s.Update(id, UpdateProductInput{Images: &merged})
}

func (s *ProductService) Remove(id uint) error {
	if err := s.productRepo.Remove(id); err != nil {
		if repository.IsRecordNotFound(err) {
			return utils.NewNotFound("Product", id)
		}
		return err
	}
	return nil
}
