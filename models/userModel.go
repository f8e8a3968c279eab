package models

import "gorm.io/gorm"

const (
	UserTypeAdmin    = "ADMIN"
	UserTypeHotel    = "HOTEL"
	UserTypeCustomer = "CUSTOMER"
)

type User struct {
	gorm.Model
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Type      string `json:"type"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
