package session

import (
	"context"
	"sync"

	"github.com/pribylovaa/go-admin-gateway/internal/models"
)

// memoryPersistence — хранилище в памяти процесса: для тестов и запуска
// шлюза без Redis (сессия тогда не переживает перезапуск).
type memoryPersistence struct {
	mu    sync.Mutex
	entry *models.Session
}

// NewMemoryPersistence возвращает пустое in-memory хранилище.
func NewMemoryPersistence() Persistence {
	return &memoryPersistence{}
}

func (p *memoryPersistence) Save(_ context.Context, s *models.Session) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := *s
	p.entry = &c
	return nil
}

func (p *memoryPersistence) Load(_ context.Context) (*models.Session, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.entry == nil {
		return nil, false, nil
	}

	c := *p.entry
	return &c, true, nil
}

func (p *memoryPersistence) Delete(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entry = nil
	return nil
}
