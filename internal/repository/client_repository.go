package repository

import (
	"gorm.io/gorm"

	"opsboard/internal/models"
)

// GormClientRepository is a GORM implementation of ClientRepository
type GormClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *GormClientRepository) Update(id string, values map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Client{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

// Delete removes the client and nulls client_id on referencing tasks in the
// same transaction, so a reference is never left dangling.
func (r *GormClientRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("client_id = ?", id).
			Update("client_id", nil).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Client{}).Error
	})
}

func (r *GormClientRepository) List() ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *GormClientRepository) Options() ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Select("id", "name").Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *GormClientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Count(&count).Error
	return count, err
}
