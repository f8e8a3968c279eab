package models

import "gorm.io/gorm"

const OrderStatusPending = "PENDING"

type Order struct {
	gorm.Model
	UserID        uint           `json:"userId"`
	HotelID       uint           `json:"hotelId"`
	Status        string         `json:"status" gorm:"default:PENDING"`
	Hidden        bool           `json:"hidden" gorm:"default:false"`
	Total         float64        `json:"total"`
	OrderProducts []OrderProduct `json:"orderProducts" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderProduct struct {
	gorm.Model
	OrderID   uint    `json:"orderId"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
