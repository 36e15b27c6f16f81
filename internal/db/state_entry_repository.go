package db

import (
	"context"

	"github.com/terraincognita07/utero/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StateEntryRepository struct {
	database *gorm.DB
}

func NewStateEntryRepository(database *gorm.DB) *StateEntryRepository {
	return &StateEntryRepository{database: database}
}

func (repo *StateEntryRepository) FindByKey(ctx context.Context, key string) (models.StateEntry, bool, error) {
	entry := models.StateEntry{}
	result := repo.database.WithContext(ctx).
		Where("state_key = ?", key).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.StateEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StateEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *StateEntryRepository) Upsert(ctx context.Context, entry *models.StateEntry) error {
	return repo.database.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "state_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error
}
