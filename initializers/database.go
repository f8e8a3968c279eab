package initializers

import (
	"fmt"

	"github.com/yasirnabil534/hotel-management-backend/config"
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectToDB opens the MySQL connection described by the configuration.
func ConnectToDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// SyncDatabase migrates every table the application owns.
func SyncDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Service{},
		&models.Category{},
		&models.Product{},
		&models.ServiceTemplate{},
		&models.SystemService{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderProduct{},
	)
}
