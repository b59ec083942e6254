package services

import "errors"

var (
	// ErrAlreadyExists ссылка уже сохранена. Штатная ситуация, о которой сообщают пользователю.
	ErrAlreadyExists = errors.New("[service]: link already exists")
	// ErrStorage сбой хранилища. Не повторяется и не считается восстановимым.
	ErrStorage = errors.New("[service]: storage failure")
)
