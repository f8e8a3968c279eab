package services

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/utils"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 13

type CreateUserInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=32"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=ADMIN HOTEL CUSTOMER"`
}

type UpdateUserInput struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=6,max=32"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Type      *string `json:"type" binding:"omitempty,oneof=ADMIN HOTEL CUSTOMER"`
}

type IUserService interface {
	Create(input CreateUserInput) (*models.User, error)
	FindAll(query repository.ListQuery) ([]models.User, error)
	FindOne(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(id uint, input UpdateUserInput) (*models.User, error)
	Remove(id uint) error
}

type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) IUserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     input.Email,
		Password:  string(hashed),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Type:      input.Type,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) FindAll(query repository.ListQuery) ([]models.User, error) {
	return s.userRepo.FindAll(query)
}

func (s *UserService) FindOne(id uint) (*models.User, error) {
	user, err := s.userRepo.FindOne(id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("User", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	return s.userRepo.FindByEmail(email)
}

func (s *UserService) Update(id uint, input UpdateUserInput) (*models.User, error) {
	fields := map[string]any{}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hashed)
	}
	if input.FirstName != nil {
		fields["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		fields["last_name"] = *input.LastName
	}
	if input.Type != nil {
		fields["type"] = *input.Type
	}

	user, err := s.userRepo.Update(id, fields)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, utils.NewNotFound("User", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Remove(id uint) error {
	if err := s.userRepo.Remove(id); err != nil {
		if repository.IsRecordNotFound(err) {
			return utils.NewNotFound("User", id)
		}
		return err
	}
	return nil
}
