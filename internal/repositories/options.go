package repositories

import "math/rand/v2"

// PickFunc выбирает индекс в диапазоне [0, n). Используется для случайного выбора ссылки.
type PickFunc func(n int64) int64

// Options общие настройки реализаций репозитория.
type Options struct {
	Pick PickFunc
}

// WithPick подменяет функцию выбора случайного индекса (удобно в тестах).
func WithPick(pick PickFunc) func(*Options) {
	return func(o *Options) {
		o.Pick = pick
	}
}

// NewOptions применяет opts поверх значений по умолчанию (равномерный выбор).
func NewOptions(opts ...func(*Options)) Options {
	o := Options{Pick: rand.Int64N}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
