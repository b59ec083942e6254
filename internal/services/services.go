package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/readlater/internal/db"
	"github.com/fsdevblog/readlater/internal/repositories/memstore"
	"github.com/fsdevblog/readlater/internal/repositories/sql"
	"github.com/sirupsen/logrus"
)

type ServiceType string

const (
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	LinkService *LinkService
	PingService *PingService
}

type FactoryConfig struct {
	Type ServiceType
	// Путь к файлу базы. Используется только для ServiceTypeSQLite.
	SQLitePath string
}

// Factory собирает сервисный слой для выбранного типа хранилища.
func Factory(conf FactoryConfig, logger *logrus.Logger) (*Services, error) {
	var opener RepositoryOpener
	switch conf.Type {
	case ServiceTypeSQLite:
		if conf.SQLitePath == "" {
			return nil, errors.New("sqlite path is empty")
		}
		opener = sqliteOpener(conf.SQLitePath, logger)
	case ServiceTypeInMemory:
		opener = memoryOpener(db.NewMemStorage(), logger)
	default:
		return nil, fmt.Errorf("unknown service type: %s", conf.Type)
	}

	return &Services{
		LinkService: NewLinkService(opener, logger),
		PingService: NewPingService(opener, logger),
	}, nil
}

// sqliteOpener открывает новое подключение к файлу базы на каждую сессию.
func sqliteOpener(path string, logger *logrus.Logger) OpenerFunc {
	return func(ctx context.Context) (LinkRepository, error) {
		conn, err := db.NewSQLite(ctx, path, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite `%s`: %w", path, err)
		}
		return sql.NewLinkRepo(conn, logger), nil
	}
}

func memoryOpener(store *db.MemoryStorage, logger *logrus.Logger) OpenerFunc {
	return func(ctx context.Context) (LinkRepository, error) {
		if err := ctx.Err(); err != nil {
			return nil, err //nolint:wrapcheck
		}
		return memstore.NewLinkRepo(store, logger), nil
	}
}
