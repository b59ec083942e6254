package db

import (
	"github.com/fsdevblog/readlater/internal/db/memory"
)

// MemoryStorage хранилище ссылок в памяти процесса. Данные теряются при перезапуске.
type MemoryStorage struct {
	*memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		MStorage: memory.NewMemStorage(),
	}
}
