package service

import (
	"github.com/simterview/simterview/internal/ai"
	"github.com/simterview/simterview/internal/config"
	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/internal/store"
)

type Services struct {
	AuthService       AuthService
	SettingsService   SettingsService
	InterviewService  InterviewService
	TranscriptService TranscriptService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, provider ai.TextGenerationProvider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		SettingsService:   NewSettingsService(storages.SettingsRepository, logger),
		InterviewService:  NewInterviewService(storages.SettingsRepository, provider, logger),
		TranscriptService: NewTranscriptService(storages.TranscriptRepository, logger),
		AppInfoService:    appInfoService,
	}, nil
}
