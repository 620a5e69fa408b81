package repository

import (
	"storefront-catalog/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	// GroupIDs returns the customer group memberships used by category access
	// checks.
	GroupIDs(customerID uint) ([]uint, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("Groups").First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GroupIDs(customerID uint) ([]uint, error) {
	var groupIDs []uint
	err := r.db.Table("customer_groups").
		Where("customer_id = ?", customerID).
		Pluck("customer_group_id", &groupIDs).Error
	return groupIDs, err
}
