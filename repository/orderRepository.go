package repository

import (
	"github.com/yasirnabil534/hotel-management-backend/models"
	"gorm.io/gorm"
)

// OrderListQuery extends the shared query object with order-specific
// filters. Hidden nil means "active records only" (the repository default);
// a non-nil value overrides the soft-delete filter explicitly.
type OrderListQuery struct {
	ListQuery
	Hidden     *bool
	HotelID    *uint
	CustomerID *uint
}

type IOrderRepository interface {
	Create(order *models.Order) error
	FindAll(query OrderListQuery) ([]models.Order, error)
	FindOne(id uint) (*models.Order, error)
	FindByUser(userID uint) ([]models.Order, error)
	FindByHotel(hotelID uint) ([]models.Order, error)
	Update(id uint, fields map[string]any) (*models.Order, error)
	Remove(id uint) error
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

// activeOnly is the default read scope: hidden orders are soft-deleted and
// excluded from every standard read path.
func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("hidden = ?", false)
}

// Create persists the order row and its products as one unit; a reader never
// observes one without the other.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *OrderRepository) FindAll(query OrderListQuery) ([]models.Order, error) {
	tx := query.scope(r.db).Scopes(searchOn("status", query.Search))

	if query.Hidden != nil {
		tx = tx.Where("hidden = ?", *query.Hidden)
	} else {
		tx = tx.Scopes(activeOnly)
	}
	if query.HotelID != nil {
		tx = tx.Where("hotel_id = ?", *query.HotelID)
	}
	if query.CustomerID != nil {
		tx = tx.Where("user_id = ?", *query.CustomerID)
	}

	var orders []models.Order
	err := tx.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindOne(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Scopes(activeOnly).
		Preload("OrderProducts").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Scopes(activeOnly).
		Where("user_id = ?", userID).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByHotel(hotelID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Scopes(activeOnly).
		Where("hotel_id = ?", hotelID).
		Find(&orders).Error
	return orders, err
}

// Update does not apply the hidden scope: internal writers (the order-product
// total recompute) must reach hidden orders too.
func (r *OrderRepository) Update(id uint, fields map[string]any) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&order).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Remove(id uint) error {
	result := r.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
