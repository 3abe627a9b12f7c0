package service

import (
	"github.com/MKhiriev/go-kudos-board/internal/config"
	"github.com/MKhiriev/go-kudos-board/internal/logger"
	"github.com/MKhiriev/go-kudos-board/internal/store"
)

type Services struct {
	AuthService    AuthService
	MessageService MessageService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	messageService := NewMessageValidationService().Wrap(NewMessageService(storages.MessageRepository, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		MessageService: messageService,
		HealthService:  NewHealthService(storages.MessageRepository, cfg.App, logger),
	}
}
