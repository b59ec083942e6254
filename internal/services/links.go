package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/readlater/internal/models"
	"github.com/fsdevblog/readlater/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LinkService сервис отложенных ссылок. Не хранит состояние между вызовами: каждая операция
// работает в собственной сессии хранилища.
type LinkService struct {
	sessions
}

func NewLinkService(opener RepositoryOpener, logger *logrus.Logger) *LinkService {
	return &LinkService{sessions{
		opener: opener,
		logger: logger.WithField("module", "services/links"),
	}}
}

// Save сохраняет ссылку.
//
// Возвращает:
//   - *models.Link: сохраненная ссылка
//   - error: ErrAlreadyExists если ссылка уже сохранена, ErrStorage при сбое хранилища
func (s *LinkService) Save(ctx context.Context, rawURL string) (*models.Link, error) {
	rawURL = strings.TrimSpace(rawURL)

	var link *models.Link
	err := s.do(ctx, func(repo LinkRepository) error {
		created, createErr := repo.Create(ctx, rawURL)
		if createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrStorage, createErr)
		}
		link = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithField("id", link.ID).Debug("link saved")
	return link, nil
}

// PickRandom извлекает случайную ссылку и удаляет её из хранилища.
// Пустое хранилище не ошибка: возвращается false.
func (s *LinkService) PickRandom(ctx context.Context) (*models.Link, bool, error) {
	var (
		link  *models.Link
		found bool
	)
	err := s.do(ctx, func(repo LinkRepository) error {
		picked, ok, pickErr := repo.PickRandomAndDelete(ctx)
		if pickErr != nil {
			return fmt.Errorf("%w: %w", ErrStorage, pickErr)
		}
		link, found = picked, ok
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if found {
		s.logger.WithField("id", link.ID).Debug("link picked")
	}
	return link, found, nil
}

// Count возвращает количество сохраненных ссылок.
func (s *LinkService) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.do(ctx, func(repo LinkRepository) error {
		n, countErr := repo.Count(ctx)
		if countErr != nil {
			return fmt.Errorf("%w: %w", ErrStorage, countErr)
		}
		total = n
		return nil
	})
	return total, err
}
