package festival

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStorage struct {
	*storage.MemoryKeyValueStorage

	mu   sync.Mutex
	sets map[string]int
}

func newCountingStorage() *countingStorage {
	return &countingStorage{
		MemoryKeyValueStorage: storage.NewMemoryKeyValueStorage(0),
		sets:                  make(map[string]int),
	}
}

func (c *countingStorage) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.sets[key]++
	c.mu.Unlock()
	return c.MemoryKeyValueStorage.Set(ctx, key, value)
}

func (c *countingStorage) setCount(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets[key]
}

type brokenStorage struct{}

func (brokenStorage) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (brokenStorage) Set(context.Context, string, []byte) error {
	return storage.ErrQuotaExceeded
}

func (brokenStorage) Delete(context.Context, string) error {
	return errors.New("disk on fire")
}

func TestHydrate(t *testing.T) {
	logging.Log = logrus.New()
	ctx := context.Background()
	kv := storage.NewMemoryKeyValueStorage(0)

	t.Run("Happy path - decodes stored value", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "k", []byte(`["a","b"]`)))
		got := Hydrate(ctx, kv, "k", []string{"fallback"})
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("Unhappy path - absent key returns fallback", func(t *testing.T) {
		got := Hydrate(ctx, kv, "missing", map[string]int{"x": 1})
		assert.Equal(t, map[string]int{"x": 1}, got)
	})

	t.Run("Unhappy path - corrupt value returns fallback", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "bad", []byte(`{not json`)))
		got := Hydrate(ctx, kv, "bad", "fallback")
		assert.Equal(t, "fallback", got)
	})

	t.Run("Unhappy path - read error returns fallback", func(t *testing.T) {
		got := Hydrate(ctx, brokenStorage{}, "k", 42)
		assert.Equal(t, 42, got)
	})
}

func TestNewStoreSeeds(t *testing.T) {
	s := setupTestStore(t, storage.NewMemoryKeyValueStorage(0), newTestClock())

	users := s.Users()
	require.Len(t, users, 1, "a fresh store knows only the seeded admin")
	assert.Equal(t, RoleAdmin, users[0].Role)
	assert.Equal(t, SeedAdminPrincipal, users[0].Principal)

	_, signedIn := s.CurrentUser()
	assert.False(t, signedIn, "a fresh store is signed out")

	assert.NotEmpty(t, s.Films())
	assert.NotEmpty(t, s.Competitions())
	assert.NotEmpty(t, s.Interviews())
	require.Len(t, s.Ads(), 1)
	assert.True(t, s.Ads()[0].IsActive, "the seeded ad is active")
	assert.Empty(t, s.VotedFilmIDs())
}

func TestNewStoreCorruptSlots(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKeyValueStorage(0)
	require.NoError(t, kv.Set(ctx, StorageKey(DefaultNamespace, SlotFilms), []byte("garbage")))
	require.NoError(t, kv.Set(ctx, StorageKey(DefaultNamespace, SlotUsers), []byte("{")))

	s := setupTestStore(t, kv, newTestClock())

	assert.Equal(t, seedFilms(testNow), s.Films(), "corrupt films fall back to the seed list")
	assert.Len(t, s.Users(), 1, "corrupt users fall back to the seeded admin")
}

func TestNewStoreBrokenBackend(t *testing.T) {
	s := setupTestStore(t, brokenStorage{}, newTestClock())

	film := s.AddFilm(FilmDraft{Title: "Offline"})
	s.Flush()

	got, ok := s.Film(film.ID)
	require.True(t, ok, "in-memory state survives failed writes")
	assert.Equal(t, "Offline", got.Title)
}

func TestFilmsRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKeyValueStorage(0)
	clock := newTestClock()
	s := setupTestStore(t, kv, clock)

	s.AddFilm(FilmDraft{Title: "Reel One", Category: CategoryContest, IsContestActive: ptr(true)})
	f2 := s.AddFilm(FilmDraft{Title: "Reel Two", Category: CategorySelection, IsAIGenerated: true})
	require.NoError(t, s.SubmitVote(f2.ID, 3))
	require.NoError(t, s.AddRating(f2.ID, 4))
	_, err := s.AddComment(f2.ID, "needs a login first")
	require.ErrorIs(t, err, ErrNotSignedIn)

	before := s.Films()
	s.Flush()

	reloaded := setupTestStore(t, kv, clock)
	assert.Equal(t, before, reloaded.Films(), "films survive a reload unchanged")
	assert.True(t, reloaded.HasVoted(f2.ID))
	r, ok := reloaded.UserRating(f2.ID)
	assert.True(t, ok)
	assert.Equal(t, 4, r)
}

func TestRegistriesRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKeyValueStorage(0)
	clock := newTestClock()
	s := setupTestStore(t, kv, clock)

	s.AddCompetition(Competition{Name: "Monsoon Cup", EntryFee: 100})
	s.AddAd(Advertisement{Title: "Premiere night", IsActive: true, TargetForm: TargetPremiere})
	s.AddInterview(DirectorInterview{Name: "R. Kapoor"})
	s.Flush()

	reloaded := setupTestStore(t, kv, clock)
	assert.Equal(t, s.Competitions(), reloaded.Competitions())
	assert.Equal(t, s.Ads(), reloaded.Ads())
	assert.Equal(t, s.Interviews(), reloaded.Interviews())
}

func TestDebouncedPersistence(t *testing.T) {
	logging.Log = logrus.New()
	kv := newCountingStorage()
	clock := newTestClock()

	s := New(context.Background(), kv, Options{
		PersistDebounce: 50 * time.Millisecond,
		Now:             clock.Now,
		NewID:           sequentialIDs("debounce"),
	})
	t.Cleanup(s.Close)

	filmsKey := StorageKey(DefaultNamespace, SlotFilms)

	t.Run("Happy path - rapid changes coalesce into one write", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			s.AddFilm(FilmDraft{Title: "burst"})
		}
		assert.Equal(t, 0, kv.setCount(filmsKey), "nothing is written before the delay")

		require.Eventually(t, func() bool { return kv.setCount(filmsKey) == 1 }, 2*time.Second, 10*time.Millisecond)
		time.Sleep(150 * time.Millisecond)
		assert.Equal(t, 1, kv.setCount(filmsKey), "superseded timers never write")

		stored := Hydrate(context.Background(), kv, filmsKey, []Film{})
		assert.Equal(t, s.Films(), stored, "the single write carries the latest state")
	})

	t.Run("Happy path - flush writes without waiting", func(t *testing.T) {
		before := kv.setCount(filmsKey)
		s.AddFilm(FilmDraft{Title: "flushed"})
		assert.Equal(t, 1, s.PendingWrites())

		s.Flush()
		assert.Equal(t, before+1, kv.setCount(filmsKey))
		assert.Equal(t, 0, s.PendingWrites())

		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, before+1, kv.setCount(filmsKey), "a flushed change is not written twice")
	})
}

func TestQuotaExceededIsSwallowed(t *testing.T) {
	kv := storage.NewMemoryKeyValueStorage(64)
	s := setupTestStore(t, kv, newTestClock())

	f := s.AddFilm(FilmDraft{Title: "Too big for the browser"})
	s.Flush()

	_, err := kv.Get(context.Background(), StorageKey(DefaultNamespace, SlotFilms))
	assert.ErrorIs(t, err, storage.ErrKeyNotFound, "the write was dropped")

	_, ok := s.Film(f.ID)
	assert.True(t, ok, "memory still holds the film")
}

func TestNamespaceIsolation(t *testing.T) {
	kv := storage.NewMemoryKeyValueStorage(0)
	clock := newTestClock()
	logging.Log = logrus.New()

	a := New(context.Background(), kv, Options{Namespace: "fest_a", PersistDebounce: time.Hour, Now: clock.Now})
	t.Cleanup(a.Close)
	a.AddFilm(FilmDraft{Title: "Only in A"})
	a.Flush()

	b := New(context.Background(), kv, Options{Namespace: "fest_b", PersistDebounce: time.Hour, Now: clock.Now})
	t.Cleanup(b.Close)
	assert.Len(t, b.Films(), len(a.Films())-1)
	assert.Contains(t, kv.Keys(), "fest_a_films_v1")
}
