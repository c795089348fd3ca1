package store

import "github.com/simterview/simterview/internal/logger"

// Storages bundles all repositories behind a single constructor for wiring
// at startup.
type Storages struct {
	UserRepository       UserRepository
	SettingsRepository   SettingsRepository
	TranscriptRepository TranscriptRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		SettingsRepository:   NewSettingsRepository(db, log),
		TranscriptRepository: NewTranscriptRepository(db, log),
	}
}
