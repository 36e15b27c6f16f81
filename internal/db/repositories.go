package db

import "gorm.io/gorm"

type Repositories struct {
	StateEntries *StateEntryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		StateEntries: NewStateEntryRepository(database),
	}
}
