package controllers

import (
	"context"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// LinksCounter возвращает количество ожидающих прочтения ссылок.
type LinksCounter interface {
	Count(ctx context.Context) (int64, error)
}
