package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

type IServiceTemplateRepository interface {
	Create(template *models.ServiceTemplate) error
	FindAll(query ListQuery) ([]models.ServiceTemplate, error)
	FindOne(id uint) (*models.ServiceTemplate, error)
	Update(id uint, fields map[string]any) (*models.ServiceTemplate, error)
	Remove(id uint) error
}

type ServiceTemplateRepository struct {
	db *gorm.DB
}

func NewServiceTemplateRepository(db *gorm.DB) IServiceTemplateRepository {
	return &ServiceTemplateRepository{db: db}
}

func (r *ServiceTemplateRepository) Create(template *models.ServiceTemplate) error {
	return r.db.Create(template).Error
}

func (r *ServiceTemplateRepository) FindAll(query ListQuery) ([]models.ServiceTemplate, error) {
	var templates []models.ServiceTemplate
	err := query.scope(r.db).
		Scopes(searchOn("name", query.Search)).
		Find(&templates).Error
	return templates, err
}

func (r *ServiceTemplateRepository) FindOne(id uint) (*models.ServiceTemplate, error) {
	var template models.ServiceTemplate
	if err := r.db.First(&template, id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *ServiceTemplateRepository) Update(id uint, fields map[string]any) (*models.ServiceTemplate, error) {
	template, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(template).Updates(fields).Error; err != nil {
		return nil, err
	}
	return template, nil
}

func (r *ServiceTemplateRepository) Remove(id uint) error {
	result := r.db.Delete(&models.ServiceTemplate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
