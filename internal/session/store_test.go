package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-admin-gateway/internal/models"
)

// Покрытие:
//   - NewStore поднимает сессию из хранилища (и прокидывает ошибку Load);
//   - Update заменяет сессию целиком и персистит; при ошибке персистенции
//     память не меняется;
//   - Logout очищает память даже при ошибке удаления из хранилища;
//   - Current отдаёт копию, мутации вызывающего не видны стору;
//   - round-trip memory-персистенции.

// fakePersistence — ручной фейк с инъекцией ошибок.
type fakePersistence struct {
	entry   *models.Session
	saveErr error
	loadErr error
	delErr  error
}

func (p *fakePersistence) Save(_ context.Context, s *models.Session) error {
	if p.saveErr != nil {
		return p.saveErr
	}

	c := *s
	p.entry = &c
	return nil
}

func (p *fakePersistence) Load(_ context.Context) (*models.Session, bool, error) {
	if p.loadErr != nil {
		return nil, false, p.loadErr
	}

	if p.entry == nil {
		return nil, false, nil
	}

	c := *p.entry
	return &c, true, nil
}

func (p *fakePersistence) Delete(_ context.Context) error {
	if p.delErr != nil {
		return p.delErr
	}

	p.entry = nil
	return nil
}

func sampleSession(email string) models.Session {
	return models.Session{
		User: models.User{
			ID:              uuid.New(),
			Name:            "Operator",
			Email:           email,
			IsEmailVerified: true,
			Roles:           []string{models.RoleAdmin},
		},
		AccessToken:  "header.claims.sig",
		RefreshToken: "refresh-opaque",
	}
}

func TestNewStore_LoadsPersistedSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	want := sampleSession("op@example.com")
	p := &fakePersistence{entry: &want}

	st, err := NewStore(ctx, p)
	require.NoError(t, err)

	got := st.Current()
	require.NotNil(t, got)
	require.Equal(t, want, *got)
}

func TestNewStore_EmptyPersistence(t *testing.T) {
	t.Parallel()

	st, err := NewStore(context.Background(), &fakePersistence{})
	require.NoError(t, err)
	require.Nil(t, st.Current())
}

func TestNewStore_LoadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("redis down")
	_, err := NewStore(context.Background(), &fakePersistence{loadErr: boom})
	require.ErrorIs(t, err, boom)
}

func TestUpdate_ReplacesAndPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := &fakePersistence{}
	st, err := NewStore(ctx, p)
	require.NoError(t, err)

	first := sampleSession("first@example.com")
	require.NoError(t, st.Update(ctx, first))
	require.Equal(t, first, *st.Current())
	require.Equal(t, first, *p.entry)

	// Update — wholesale replace, а не merge.
	second := sampleSession("second@example.com")
	require.NoError(t, st.Update(ctx, second))
	require.Equal(t, second, *st.Current())
	require.Equal(t, second, *p.entry)
}

func TestUpdate_PersistFailure_KeepsCurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := &fakePersistence{}
	st, err := NewStore(ctx, p)
	require.NoError(t, err)

	first := sampleSession("first@example.com")
	require.NoError(t, st.Update(ctx, first))

	boom := errors.New("redis down")
	p.saveErr = boom

	err = st.Update(ctx, sampleSession("second@example.com"))
	require.ErrorIs(t, err, boom)
	require.Equal(t, first, *st.Current())
}

func TestLogout_ClearsMemoryAndPersistence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := &fakePersistence{}
	st, err := NewStore(ctx, p)
	require.NoError(t, err)

	require.NoError(t, st.Update(ctx, sampleSession("op@example.com")))
	require.NoError(t, st.Logout(ctx))
	require.Nil(t, st.Current())
	require.Nil(t, p.entry)
}

func TestLogout_DeleteFailure_StillClearsMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := &fakePersistence{}
	st, err := NewStore(ctx, p)
	require.NoError(t, err)

	require.NoError(t, st.Update(ctx, sampleSession("op@example.com")))

	boom := errors.New("redis down")
	p.delErr = boom

	err = st.Logout(ctx)
	require.ErrorIs(t, err, boom)
	// Протухшая сессия не должна пережить logout из-за недоступного хранилища.
	require.Nil(t, st.Current())
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st, err := NewStore(ctx, &fakePersistence{})
	require.NoError(t, err)

	want := sampleSession("op@example.com")
	require.NoError(t, st.Update(ctx, want))

	got := st.Current()
	got.User.Email = "mutated@example.com"
	got.AccessToken = "mutated"

	require.Equal(t, want, *st.Current())
}

func TestMemoryPersistence_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewMemoryPersistence()

	_, ok, err := p.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	want := sampleSession("op@example.com")
	require.NoError(t, p.Save(ctx, &want))

	got, ok, err := p.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, *got)

	require.NoError(t, p.Delete(ctx))
	_, ok, err = p.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// Повторное удаление — не ошибка.
	require.NoError(t, p.Delete(ctx))
}
