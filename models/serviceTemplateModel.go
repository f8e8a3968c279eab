package models

import "gorm.io/gorm"

// ServiceTemplate is a system-wide blueprint hotels can instantiate as a
// SystemService. Its fields are cloned onto the instance at creation time.
type ServiceTemplate struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

// SystemService is a hotel-specific instance of a ServiceTemplate.
type SystemService struct {
	gorm.Model
	HotelID           uint   `json:"hotelId"`
	ServiceTemplateID uint   `json:"serviceTemplateId"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Image             string `json:"image"`
	Link              string `json:"link"`
}
