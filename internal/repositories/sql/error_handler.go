package sql

import (
	"fmt"
	"strings"

	"github.com/fsdevblog/readlater/internal/repositories"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// uniqueViolationMsg текст ошибки sqlite при нарушении уникального индекса. Нужен на случай,
// если драйвер не перевел ошибку в gorm.ErrDuplicatedKey.
const uniqueViolationMsg = "UNIQUE constraint failed"

// ConvertErrorType оборачивает ошибку gorm в общую ошибку репозитория, сохраняя исходную ошибку в цепочке.
func ConvertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), uniqueViolationMsg):
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}
	return fmt.Errorf("%w: %w", nativeErr, err)
}
