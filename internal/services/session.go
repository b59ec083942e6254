package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// sessions открывает отдельную сессию хранилища на каждую логическую операцию.
type sessions struct {
	opener RepositoryOpener
	logger *logrus.Entry
}

// do открывает сессию, выполняет fn и закрывает сессию на любом пути выхода,
// включая панику и отмену контекста. Ошибка закрытия после уже выполненной операции
// только логируется: транзакция к этому моменту зафиксирована.
func (s *sessions) do(ctx context.Context, fn func(repo LinkRepository) error) error {
	repo, err := s.opener.Open(ctx)
	if err != nil {
		return fmt.Errorf("%w: open session: %w", ErrStorage, err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			s.logger.WithError(closeErr).Warn("failed to close storage session")
		}
	}()

	return fn(repo)
}
