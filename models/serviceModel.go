package models

import "gorm.io/gorm"

// Service is a hotel-defined offering that groups categories and products.
type Service struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	HotelID     uint   `json:"hotelId"`
}

type Category struct {
	gorm.Model
	Name      string `json:"name"`
	ServiceID uint   `json:"serviceId"`
	HotelID   uint   `json:"hotelId"`
}
