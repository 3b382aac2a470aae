package service

import (
	"github.com/avelichko/notekeeper/internal/config"
	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	UserService    UserService
	NoteService    NoteService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		SessionService: NewSessionService(cfg, logger),
		UserService:    NewUserService(storages.UserRepository, storages.NoteRepository, logger),
		NoteService:    NewNoteService(storages.NoteRepository, logger),
	}
}
