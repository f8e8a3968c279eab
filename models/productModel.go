package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Images      datatypes.JSON `json:"images"`
	ServiceID   uint           `json:"serviceId"`
	HotelID     uint           `json:"hotelId"`
	CategoryID  uint           `json:"categoryId"`
}
