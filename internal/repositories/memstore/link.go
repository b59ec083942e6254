package memstore

import (
	"context"
	"fmt"

	"github.com/fsdevblog/readlater/internal/db"
	"github.com/fsdevblog/readlater/internal/db/memory"
	"github.com/fsdevblog/readlater/internal/models"
	"github.com/fsdevblog/readlater/internal/repositories"
	"github.com/sirupsen/logrus"
)

// LinkRepo представляет собой репозиторий для работы со ссылками в памяти.
// Ключом записи служит сама ссылка, что и обеспечивает её уникальность.
type LinkRepo struct {
	s      *db.MemoryStorage
	logger *logrus.Entry
	opts   repositories.Options
}

// NewLinkRepo создает новый экземпляр репозитория поверх общего хранилища store.
func NewLinkRepo(store *db.MemoryStorage, logger *logrus.Logger, opts ...func(*repositories.Options)) *LinkRepo {
	return &LinkRepo{
		s:      store,
		logger: logger.WithField("module", "repository/memstore/link"),
		opts:   repositories.NewOptions(opts...),
	}
}

// Create добавляет ссылку.
//
// Возвращает:
//   - *models.Link: созданная запись
//   - error: repositories.ErrDuplicateKey если ссылка уже сохранена
func (l *LinkRepo) Create(ctx context.Context, rawURL string) (*models.Link, error) {
	link := models.Link{
		ID:  l.s.NextID(),
		URL: rawURL,
	}
	if err := memory.Set[models.Link](ctx, rawURL, &link, l.s.MStorage); err != nil {
		return nil, fmt.Errorf("create link: %w", convertErrorType(err))
	}
	return &link, nil
}

// PickRandomAndDelete извлекает случайную ссылку и удаляет её одной операцией под блокировкой хранилища.
func (l *LinkRepo) PickRandomAndDelete(ctx context.Context) (*models.Link, bool, error) {
	pick := func(n int) int {
		return int(l.opts.Pick(int64(n)))
	}
	link, ok, err := memory.Take[models.Link](ctx, l.s.MStorage, pick)
	if err != nil {
		l.logger.WithError(err).Error("failed to pick random link")
		return nil, false, fmt.Errorf("pick random link: %w", convertErrorType(err))
	}
	return link, ok, nil
}

func (l *LinkRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("count links: %w", convertErrorType(err))
	}
	return int64(l.s.Len()), nil
}

// All возвращает все ссылки в порядке добавления. Сервисам не нужна, входит в контракт
// repotest.LinkRepository для проверки содержимого хранилища полным просмотром.
func (l *LinkRepo) All(ctx context.Context) ([]models.Link, error) {
	links, err := memory.All[models.Link](ctx, l.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("get all links: %w", convertErrorType(err))
	}
	return links, nil
}

func (l *LinkRepo) Ping(ctx context.Context) error {
	return ctx.Err() //nolint:wrapcheck
}

// Close ничего не делает: хранилище в памяти живет столько же, сколько процесс.
func (l *LinkRepo) Close() error {
	return nil
}
