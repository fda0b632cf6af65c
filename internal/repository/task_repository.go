package repository

import (
	"time"

	"gorm.io/gorm"

	"opsboard/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *GormTaskRepository) Update(id string, values map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Task{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

func (r *GormTaskRepository) UpdateStatus(id string, status models.TaskStatus) (int64, error) {
	result := r.db.Model(&models.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

func (r *GormTaskRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Task{}).Error
}

func (r *GormTaskRepository) List() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Preload("Client").
		Preload("Assignee").
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByID(id string) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Preload("Client").
		Preload("Assignee").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Statuses returns the raw status column of every task. The dashboard buckets
// these in memory, the same single pass the listing page total relies on.
func (r *GormTaskRepository) Statuses() ([]string, error) {
	var statuses []string
	err := r.db.Model(&models.Task{}).Pluck("status", &statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
