package sql

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/fsdevblog/readlater/internal/db"
	"github.com/fsdevblog/readlater/internal/repositories"
	"github.com/fsdevblog/readlater/internal/repositories/repotest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func openRepo(t *testing.T, path string, opts ...func(*repositories.Options)) *LinkRepo {
	t.Helper()
	conn, err := db.NewSQLite(t.Context(), path, newTestLogger())
	require.NoError(t, err)
	return NewLinkRepo(conn, newTestLogger(), opts...)
}

func TestLinkRepo(t *testing.T) {
	suite.Run(t, &repotest.LinkRepoSuite{
		NewRepo: func(opts ...func(*repositories.Options)) repotest.LinkRepository {
			return openRepo(t, filepath.Join(t.TempDir(), "articles.db"), opts...)
		},
	})
}

func TestLinkRepo_Durability(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.db")

	first := openRepo(t, path)
	_, err := first.Create(t.Context(), "https://example.com/a")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// после "перезапуска" ссылка на месте, а повторное сохранение - дубликат
	second := openRepo(t, path)
	defer func() { require.NoError(t, second.Close()) }()

	_, err = second.Create(t.Context(), "https://example.com/a")
	require.ErrorIs(t, err, repositories.ErrDuplicateKey)

	link, ok, err := second.PickRandomAndDelete(t.Context())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a", link.URL)

	third := openRepo(t, path)
	defer func() { require.NoError(t, third.Close()) }()
	total, err := third.Count(t.Context())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestLinkRepo_ConcurrentSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.db")
	seed := openRepo(t, path)
	for _, u := range []string{"https://a.com", "https://b.com", "https://c.com", "https://d.com"} {
		_, err := seed.Create(t.Context(), u)
		require.NoError(t, err)
	}
	require.NoError(t, seed.Close())

	type result struct {
		url string
		ok  bool
		err error
	}
	results := make(chan result, 6)
	for range cap(results) {
		go func() {
			conn, err := db.NewSQLite(t.Context(), path, newTestLogger())
			if err != nil {
				results <- result{err: err}
				return
			}
			repo := NewLinkRepo(conn, newTestLogger())
			defer repo.Close()

			link, ok, pickErr := repo.PickRandomAndDelete(t.Context())
			if !ok || pickErr != nil {
				results <- result{err: pickErr}
				return
			}
			results <- result{url: link.URL, ok: true}
		}()
	}

	seen := make(map[string]bool)
	for range cap(results) {
		r := <-results
		require.NoError(t, r.err)
		if r.ok {
			assert.False(t, seen[r.url], "link %s returned twice", r.url)
			seen[r.url] = true
		}
	}
	assert.Len(t, seen, 4)
}
