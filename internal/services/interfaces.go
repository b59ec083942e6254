package services

import (
	"context"

	"github.com/fsdevblog/readlater/internal/models"
)

// LinkRepository описывает сессию работы с хранилищем ссылок. Сессия владеет подключением
// и освобождает его в Close.
type LinkRepository interface {
	// Create сохраняет ссылку. Для уже сохраненной ссылки возвращает repositories.ErrDuplicateKey.
	Create(ctx context.Context, rawURL string) (*models.Link, error)
	// PickRandomAndDelete атомарно извлекает случайную ссылку. false - хранилище пусто.
	PickRandomAndDelete(ctx context.Context) (*models.Link, bool, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// RepositoryOpener открывает новую сессию хранилища.
type RepositoryOpener interface {
	Open(ctx context.Context) (LinkRepository, error)
}

// OpenerFunc позволяет использовать функцию как RepositoryOpener.
type OpenerFunc func(ctx context.Context) (LinkRepository, error)

func (f OpenerFunc) Open(ctx context.Context) (LinkRepository, error) {
	return f(ctx)
}
