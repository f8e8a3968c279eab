package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

type IUserRepository interface {
	Create(user *models.User) error
	FindAll(query ListQuery) ([]models.User, error)
	FindOne(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(id uint, fields map[string]any) (*models.User, error)
	Remove(id uint) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindAll(query ListQuery) ([]models.User, error) {
	var users []models.User
	err := query.scope(r.db).
		Scopes(searchOn("email", query.Search)).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) FindOne(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(id uint, fields map[string]any) (*models.User, error) {
	user, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(user).Updates(fields).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Remove(id uint) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
