package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MStorage потокобезопасное хранилище сериализованных в json записей.
// Порядок ключей совпадает с порядком вставки.
type MStorage struct {
	data map[string][]byte
	keys []string
	seq  uint
	m    sync.RWMutex
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()

	return len(m.data)
}

// NextID выдает следующий идентификатор. Выданные идентификаторы не переиспользуются.
func (m *MStorage) NextID() uint {
	m.m.Lock()
	defer m.m.Unlock()

	m.seq++
	return m.seq
}

func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.RLock()
	defer m.m.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	return &result, nil
}

// Set Сохраняет новую пару ключ/значение. Ключ обязан быть уникальным, иначе вернется ошибка ErrDuplicateKey.
func Set[T any](ctx context.Context, key string, val *T, m *MStorage) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}

	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; ok {
		return ErrDuplicateKey
	}
	m.data[key] = bytes
	m.keys = append(m.keys, key)
	return nil
}

// Take атомарно извлекает запись с индексом pick(n) в порядке вставки и удаляет её.
// Если хранилище пусто, возвращает false без ошибки.
func Take[T any](ctx context.Context, m *MStorage, pick func(n int) int) (*T, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err //nolint:wrapcheck
	}
	m.m.Lock()
	defer m.m.Unlock()

	if len(m.keys) == 0 {
		return nil, false, nil
	}

	idx := pick(len(m.keys))
	if idx < 0 || idx >= len(m.keys) {
		return nil, false, errors.Wrapf(ErrOutOfRange, "index %d of %d", idx, len(m.keys))
	}
	key := m.keys[idx]

	var result T
	if err := json.Unmarshal(m.data[key], &result); err != nil {
		return nil, false, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}

	delete(m.data, key)
	m.keys = slices.Delete(m.keys, idx, idx+1)
	return &result, true, nil
}

// All возвращает все записи в порядке вставки.
func All[T any](ctx context.Context, m *MStorage) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.RLock()
	defer m.m.RUnlock()

	result := make([]T, 0, len(m.keys))
	for _, key := range m.keys {
		var val T
		if err := json.Unmarshal(m.data[key], &val); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
		}
		result = append(result, val)
	}
	return result, nil
}
