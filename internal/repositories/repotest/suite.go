// Package repotest содержит общий набор тестов, которому обязана удовлетворять любая реализация
// репозитория ссылок.
package repotest

import (
	"context"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/readlater/internal/models"
	"github.com/fsdevblog/readlater/internal/repositories"
	"github.com/stretchr/testify/suite"
)

// LinkRepository методы репозитория, которые проверяет LinkRepoSuite.
type LinkRepository interface {
	Create(ctx context.Context, rawURL string) (*models.Link, error)
	PickRandomAndDelete(ctx context.Context) (*models.Link, bool, error)
	Count(ctx context.Context) (int64, error)
	All(ctx context.Context) ([]models.Link, error)
	Ping(ctx context.Context) error
	Close() error
}

// LinkRepoSuite набор тестов репозитория. NewRepo должен каждый раз возвращать репозиторий
// над новым пустым хранилищем.
type LinkRepoSuite struct {
	suite.Suite
	NewRepo func(opts ...func(*repositories.Options)) LinkRepository

	repo LinkRepository
}

func (s *LinkRepoSuite) SetupTest() {
	s.repo = s.NewRepo()
}

func (s *LinkRepoSuite) TearDownTest() {
	s.Require().NoError(s.repo.Close())
}

func (s *LinkRepoSuite) TestCreate_Unique() {
	ctx := s.T().Context()

	link, err := s.repo.Create(ctx, "https://example.com/a")
	s.Require().NoError(err)
	s.NotZero(link.ID)
	s.Equal("https://example.com/a", link.URL)

	_, err = s.repo.Create(ctx, "https://example.com/a")
	s.Require().ErrorIs(err, repositories.ErrDuplicateKey)

	// сравнение побайтовое, без нормализации
	_, err = s.repo.Create(ctx, "https://Example.com/a")
	s.Require().NoError(err)

	s.assertCount(2)
	all, err := s.repo.All(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"https://example.com/a", "https://Example.com/a"}, urlsOf(all))
}

func (s *LinkRepoSuite) TestPickRandomAndDelete_Empty() {
	link, ok, err := s.repo.PickRandomAndDelete(s.T().Context())
	s.Require().NoError(err)
	s.False(ok)
	s.Nil(link)
	s.assertCount(0)
}

func (s *LinkRepoSuite) TestPickRandomAndDelete_RemovesPicked() {
	ctx := s.T().Context()
	var gotN int64
	repo := s.NewRepo(repositories.WithPick(func(n int64) int64 {
		gotN = n
		return 1
	}))
	defer func() { s.Require().NoError(repo.Close()) }()

	for _, u := range []string{"https://a.com", "https://b.com", "https://c.com"} {
		_, err := repo.Create(ctx, u)
		s.Require().NoError(err)
	}

	link, ok, err := repo.PickRandomAndDelete(ctx)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.EqualValues(3, gotN)
	s.Equal("https://b.com", link.URL)

	all, err := repo.All(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"https://a.com", "https://c.com"}, urlsOf(all))

	// удаленную ссылку можно сохранить заново
	_, err = repo.Create(ctx, "https://b.com")
	s.Require().NoError(err)
}

func (s *LinkRepoSuite) TestPickRandomAndDelete_OutOfRangeKeepsStore() {
	ctx := s.T().Context()
	repo := s.NewRepo(repositories.WithPick(func(n int64) int64 { return n }))
	defer func() { s.Require().NoError(repo.Close()) }()

	_, err := repo.Create(ctx, "https://a.com")
	s.Require().NoError(err)

	_, ok, err := repo.PickRandomAndDelete(ctx)
	s.Require().Error(err)
	s.False(ok)

	total, err := repo.Count(ctx)
	s.Require().NoError(err)
	s.EqualValues(1, total)
}

func (s *LinkRepoSuite) TestCountConservation() {
	ctx := s.T().Context()
	const n, k = 20, 7

	urls := make(map[string]struct{}, n)
	for len(urls) < n {
		urls[gofakeit.URL()] = struct{}{}
	}
	for u := range urls {
		_, err := s.repo.Create(ctx, u)
		s.Require().NoError(err)
	}

	picked := make(map[string]struct{}, k)
	for range k {
		link, ok, err := s.repo.PickRandomAndDelete(ctx)
		s.Require().NoError(err)
		s.Require().True(ok)
		s.Contains(urls, link.URL)
		s.NotContains(picked, link.URL, "link returned twice")
		picked[link.URL] = struct{}{}
	}

	s.assertCount(n - k)
	all, err := s.repo.All(ctx)
	s.Require().NoError(err)
	for _, link := range all {
		s.NotContains(picked, link.URL)
	}

	for range n - k {
		_, ok, err := s.repo.PickRandomAndDelete(ctx)
		s.Require().NoError(err)
		s.Require().True(ok)
	}
	_, ok, err := s.repo.PickRandomAndDelete(ctx)
	s.Require().NoError(err)
	s.False(ok)
	s.assertCount(0)
}

func (s *LinkRepoSuite) TestIDsAreNotReused() {
	ctx := s.T().Context()

	first, err := s.repo.Create(ctx, "https://a.com")
	s.Require().NoError(err)
	_, ok, err := s.repo.PickRandomAndDelete(ctx)
	s.Require().NoError(err)
	s.Require().True(ok)

	second, err := s.repo.Create(ctx, "https://b.com")
	s.Require().NoError(err)
	s.Greater(second.ID, first.ID)
}

func (s *LinkRepoSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()

	_, err := s.repo.Create(ctx, "https://a.com")
	s.Require().Error(err)
	s.NotErrorIs(err, repositories.ErrDuplicateKey)

	s.assertCount(0)
}

func (s *LinkRepoSuite) TestPing() {
	s.NoError(s.repo.Ping(s.T().Context()))
}

func (s *LinkRepoSuite) assertCount(want int64) {
	total, err := s.repo.Count(s.T().Context())
	s.Require().NoError(err)
	s.Equal(want, total)
}

func urlsOf(links []models.Link) []string {
	result := make([]string, len(links))
	for i, l := range links {
		result[i] = l.URL
	}
	return result
}
