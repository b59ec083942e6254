package sql

import (
	"context"
	"fmt"

	"github.com/fsdevblog/readlater/internal/db"
	"github.com/fsdevblog/readlater/internal/models"
	"github.com/fsdevblog/readlater/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LinkRepo репозиторий ссылок поверх одного подключения к SQLite.
type LinkRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
	opts   repositories.Options
}

// NewLinkRepo создает репозиторий. Репозиторий становится владельцем conn и закрывает его в Close.
func NewLinkRepo(conn *gorm.DB, logger *logrus.Logger, opts ...func(*repositories.Options)) *LinkRepo {
	return &LinkRepo{
		db:     conn,
		logger: logger.WithField("module", "repository/sql/link"),
		opts:   repositories.NewOptions(opts...),
	}
}

// Create добавляет ссылку. Если такая ссылка уже сохранена, возвращает repositories.ErrDuplicateKey
// и не изменяет таблицу.
func (l *LinkRepo) Create(ctx context.Context, rawURL string) (*models.Link, error) {
	link := models.Link{URL: rawURL}
	if err := l.db.WithContext(ctx).Create(&link).Error; err != nil {
		converted := ConvertErrorType(err)
		if !errors.Is(converted, repositories.ErrDuplicateKey) {
			l.logger.WithError(err).Errorf("failed to create link `%s`", rawURL)
		}
		return nil, fmt.Errorf("create link: %w", converted)
	}
	return &link, nil
}

// PickRandomAndDelete в одной транзакции выбирает случайную ссылку и удаляет её.
// Для пустой таблицы возвращает false без ошибки.
//
// Строка выбирается по случайному смещению среди строк, упорядоченных по id, так что
// таблица целиком в память не загружается.
func (l *LinkRepo) PickRandomAndDelete(ctx context.Context) (*models.Link, bool, error) {
	var (
		link  models.Link
		found bool
	)

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&models.Link{}).Count(&total).Error; err != nil {
			return errors.Wrap(err, "count links")
		}
		if total == 0 {
			return nil
		}

		offset := l.opts.Pick(total)
		if offset < 0 || offset >= total {
			return errors.Errorf("random offset %d is out of range [0, %d)", offset, total)
		}

		if err := tx.Order("id").Offset(int(offset)).Take(&link).Error; err != nil {
			return errors.Wrapf(err, "select link at offset %d", offset)
		}

		res := tx.Delete(&models.Link{}, link.ID)
		if res.Error != nil {
			return errors.Wrapf(res.Error, "delete link %d", link.ID)
		}
		if res.RowsAffected != 1 {
			return errors.Errorf("delete link %d: %d rows affected", link.ID, res.RowsAffected)
		}

		found = true
		return nil
	})
	if err != nil {
		l.logger.WithError(err).Error("failed to pick random link")
		return nil, false, fmt.Errorf("pick random link: %w", ConvertErrorType(err))
	}
	if !found {
		return nil, false, nil
	}
	return &link, true, nil
}

// Count возвращает количество сохраненных ссылок.
func (l *LinkRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := l.db.WithContext(ctx).Model(&models.Link{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count links: %w", ConvertErrorType(err))
	}
	return total, nil
}

// All возвращает все ссылки в порядке добавления. Сервисам не нужна, входит в контракт
// repotest.LinkRepository для проверки содержимого хранилища полным просмотром.
func (l *LinkRepo) All(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	if err := l.db.WithContext(ctx).Order("id").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("get all links: %w", ConvertErrorType(err))
	}
	return links, nil
}

func (l *LinkRepo) Ping(ctx context.Context) error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close освобождает подключение к базе.
func (l *LinkRepo) Close() error {
	return db.CloseSQLite(l.db) //nolint:wrapcheck
}
