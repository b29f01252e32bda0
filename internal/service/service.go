package service

import (
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/bibliotheca/lending-service/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events Events

	today func() model.Date
}

func NewService(repo repository.Repository, events Events, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
		today:  model.Today,
	}
}
