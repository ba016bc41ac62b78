// session хранит единственную сессию оператора дашборда.
//
// Store держит актуальную копию в памяти и синхронизирует её с durable-хранилищем
// (Redis в проде, memory в тестах) на каждой мутации. Запись одна: шлюз
// обслуживает одного оператора, источником истины для решений гейта служит
// именно эта запись.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/pribylovaa/go-admin-gateway/internal/models"
)

// Persistence — контракт durable-хранилища единственной сессии.
// Отсутствие записи — штатное состояние «разлогинен», не ошибка.
type Persistence interface {
	// Save сохраняет сессию целиком (перезаписывает существующую).
	Save(ctx context.Context, s *models.Session) error
	// Load возвращает сессию и признак её наличия.
	Load(ctx context.Context) (*models.Session, bool, error)
	// Delete удаляет запись; отсутствие записи ошибкой не считается.
	Delete(ctx context.Context) error
}

// Store — процессное состояние сессии поверх Persistence.
// Потокобезопасен; писатель логически один (текущая навигация),
// так что достаточно last-write-wins семантики.
type Store struct {
	mu      sync.RWMutex
	current *models.Session
	persist Persistence
}

// NewStore создаёт стор и поднимает сессию из хранилища,
// чтобы она переживала перезапуск шлюза.
func NewStore(ctx context.Context, p Persistence) (*Store, error) {
	const op = "session.NewStore"

	s, ok, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	st := &Store{persist: p}
	if ok {
		st.current = s
	}

	return st, nil
}

// Current возвращает копию текущей сессии (nil — разлогинен).
// Копия защищает внутреннее состояние от мутаций вызывающего.
func (st *Store) Current() *models.Session {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if st.current == nil {
		return nil
	}

	c := *st.current
	return &c
}

// Update целиком заменяет сессию и персистит её. Частичных обновлений нет:
// вызывающий делает read-merge-write (см. обновление профиля в handlers).
// При ошибке персистенции память не меняется — состояния остаются согласованными.
func (st *Store) Update(ctx context.Context, s models.Session) error {
	const op = "session.Store.Update"

	if err := st.persist.Save(ctx, &s); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	st.mu.Lock()
	st.current = &s
	st.mu.Unlock()

	return nil
}

// Logout очищает сессию и удаляет персистентную запись.
// Память очищается даже при ошибке хранилища: протухшая сессия не должна
// пережить logout из-за недоступного Redis (ошибка при этом возвращается).
func (st *Store) Logout(ctx context.Context) error {
	const op = "session.Store.Logout"

	st.mu.Lock()
	st.current = nil
	st.mu.Unlock()

	if err := st.persist.Delete(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
