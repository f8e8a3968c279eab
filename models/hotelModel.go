package models

import "gorm.io/gorm"

type Hotel struct {
	gorm.Model
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
	OwnerID uint    `json:"ownerId"`
	Owner   *User   `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
