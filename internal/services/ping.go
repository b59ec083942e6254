package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// PingService проверяет, что сессию хранилища можно открыть и она отвечает.
type PingService struct {
	sessions
}

func NewPingService(opener RepositoryOpener, logger *logrus.Logger) *PingService {
	return &PingService{sessions{
		opener: opener,
		logger: logger.WithField("module", "services/ping"),
	}}
}

func (s *PingService) CheckConnection(ctx context.Context) error {
	return s.do(ctx, func(repo LinkRepository) error {
		if err := repo.Ping(ctx); err != nil {
			return fmt.Errorf("ping error: %w", err)
		}
		return nil
	})
}
