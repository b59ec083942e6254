package db

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// busyTimeout время ожидания блокировки файла базы другим писателем.
const busyTimeout = 5 * time.Second

// схема создается при каждом подключении, поэтому запрос обязан быть идемпотентным.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS articles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT UNIQUE NOT NULL
);
`

// NewSQLite открывает новое подключение к файлу базы и создает таблицу ссылок, если её нет.
// Подключение использует ровно одно соединение и должно быть закрыто через CloseSQLite.
//
// Параметры:
//   - ctx: контекст выполнения
//   - dbPath: путь к файлу базы данных
//   - l: логгер, в который перенаправляется лог gorm
//
// Возвращает:
//   - *gorm.DB: подключение
//   - error: ошибка подключения или создания схемы
func NewSQLite(ctx context.Context, dbPath string, l *logrus.Logger) (*gorm.DB, error) {
	conn, connErr := connectSQLite(dbPath, l)
	if connErr != nil {
		return nil, fmt.Errorf("init database error: %w", connErr)
	}
	if migrateErr := migrateSQLite(ctx, conn); migrateErr != nil {
		_ = CloseSQLite(conn)
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return conn, nil
}

// CloseSQLite освобождает соединение, открытое NewSQLite.
func CloseSQLite(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close sql db: %w", err)
	}
	return nil
}

func connectSQLite(dbPath string, l *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(dbPath)), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(l),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func migrateSQLite(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(schemaSQL).Error; err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}

// sqliteDSN добавляет к пути параметры драйвера. `_txlock=immediate` берет блокировку на запись
// в начале транзакции, поэтому выборка и удаление случайной ссылки не пересекаются с другими писателями.
func sqliteDSN(dbPath string) string {
	return fmt.Sprintf("%s?_txlock=immediate&_busy_timeout=%d", dbPath, busyTimeout.Milliseconds())
}

func newGormLogger(l *logrus.Logger) logger.Interface {
	if l == nil {
		return logger.Discard
	}
	return logger.New(l.WithField("module", "gorm"), logger.Config{
		SlowThreshold:             200 * time.Millisecond, //nolint:mnd
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
