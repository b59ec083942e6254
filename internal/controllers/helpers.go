package controllers

import (
	"time"
)

// DefaultRequestTimeout время, которое служебный сервер дает хранилищу на ответ
// (проверка подключения, подсчет ссылок). Каждый запрос открывает свою сессию.
const DefaultRequestTimeout = 3 * time.Second
