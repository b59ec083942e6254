// Package sql предоставляет реализацию репозитория ссылок для SQLite через gorm.
//
// Каждый экземпляр LinkRepo владеет собственным подключением и закрывает его в Close.
// Ошибки gorm преобразуются в общие ошибки уровня репозитория с помощью ConvertErrorType:
//   - gorm.ErrDuplicatedKey (UNIQUE constraint) -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
