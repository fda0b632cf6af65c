package repository

import (
	"gorm.io/gorm"

	"opsboard/internal/models"
)

// GormTeamMemberRepository is a GORM implementation of TeamMemberRepository
type GormTeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &GormTeamMemberRepository{db: db}
}

func (r *GormTeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

func (r *GormTeamMemberRepository) Update(id string, values map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.TeamMember{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

// Delete removes the member and nulls assigned_to on their tasks. The tasks
// themselves survive.
func (r *GormTeamMemberRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("assigned_to = ?", id).
			Update("assigned_to", nil).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.TeamMember{}).Error
	})
}

func (r *GormTeamMemberRepository) List() ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *GormTeamMemberRepository) Options() ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Select("id", "name").Order("name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *GormTeamMemberRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Count(&count).Error
	return count, err
}
