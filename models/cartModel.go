package models

import "gorm.io/gorm"

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem carries the price captured when the product was added; checkout
// does not re-read the catalog.
type CartItem struct {
	gorm.Model
	CartID    uint     `json:"cartId"`
	ProductID uint     `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
