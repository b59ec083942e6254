// Package validators проверяет пользовательский ввод до обращения к хранилищу.
package validators

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidURL строка не похожа на абсолютную http(s) ссылку.
var ErrInvalidURL = errors.New("invalid URL format")

// urlRegex схема http/https, хост из меток через точку с буквенной зоной от двух символов,
// необязательные путь, query и fragment начиная с `/`. Хост только латиницей, а в пути
// допустимы буквы и цифры любого алфавита (`\w` в Go совпадает только с ASCII).
var urlRegex = regexp.MustCompile(
	`^https?://` +
		`(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}` +
		`(?:/[\p{L}\p{N}_\-.~:/?#\[\]@!$&'()*+,;=]*)?$`,
)

// IsValidURL проверяет, что строка является корректной ссылкой на статью.
func IsValidURL(rawURL string) bool {
	return urlRegex.MatchString(rawURL)
}

// ValidateURL обрезает пробельные символы по краям и проверяет ссылку.
//
// Возвращает:
//   - string: очищенная ссылка
//   - error: ErrInvalidURL если ссылка некорректна
func ValidateURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if !IsValidURL(trimmed) {
		return "", errors.Wrapf(ErrInvalidURL, "`%s`", trimmed)
	}
	return trimmed, nil
}
