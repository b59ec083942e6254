package repositories

import "errors"

// Ошибки репозиториев ссылок. Реализации не возвращают ошибки драйвера напрямую:
// они оборачиваются в одну из этих ошибок функциями конвертации (sql.ConvertErrorType,
// memstore.convertErrorType), исходная ошибка остается в цепочке.
var (
	// ErrNotFound запись не найдена. Операции над ссылками пустое хранилище ошибкой не считают,
	// поэтому до сервисов эта ошибка доходит только через конвертацию ошибок драйвера.
	ErrNotFound = errors.New("[link repository]: link not found")
	// ErrDuplicateKey ссылка уже сохранена.
	ErrDuplicateKey = errors.New("[link repository]: link already exists")
	// ErrUnknown любой другой сбой хранилища.
	ErrUnknown = errors.New("[link repository]: storage failure")
)
