package smocks

import (
	"context"

	"github.com/fsdevblog/readlater/internal/models"
	"github.com/stretchr/testify/mock"
)

// LinkRepoMock мок сессии хранилища ссылок.
type LinkRepoMock struct {
	mock.Mock
}

func (r *LinkRepoMock) Create(ctx context.Context, rawURL string) (*models.Link, error) {
	args := r.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (r *LinkRepoMock) PickRandomAndDelete(ctx context.Context) (*models.Link, bool, error) {
	args := r.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
}

func (r *LinkRepoMock) Count(ctx context.Context) (int64, error) {
	args := r.Called(ctx)
	return args.Get(0).(int64), args.Error(1) //nolint:wrapcheck,errcheck
}

func (r *LinkRepoMock) Ping(ctx context.Context) error {
	return r.Called(ctx).Error(0) //nolint:wrapcheck
}

func (r *LinkRepoMock) Close() error {
	return r.Called().Error(0) //nolint:wrapcheck
}

// LinkServiceMock мок сервиса ссылок для обработчиков бота и контроллеров.
type LinkServiceMock struct {
	mock.Mock
}

func (s *LinkServiceMock) Save(ctx context.Context, rawURL string) (*models.Link, error) {
	args := s.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (s *LinkServiceMock) PickRandom(ctx context.Context) (*models.Link, bool, error) {
	args := s.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
}

func (s *LinkServiceMock) Count(ctx context.Context) (int64, error) {
	args := s.Called(ctx)
	return args.Get(0).(int64), args.Error(1) //nolint:wrapcheck,errcheck
}

func (s *LinkServiceMock) CheckConnection(ctx context.Context) error {
	return s.Called(ctx).Error(0) //nolint:wrapcheck
}
