// Package festival holds the festival state store: users and the signed-in
// session, films with their votes, ratings and comments, and the competition, ad
// and interview registries. State lives in memory and is mirrored to a
// storage.KeyValueStorage with debounced write-through.
package festival

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/storage"
	"github.com/google/uuid"
)

const (
	DefaultNamespace       = "bharat_cinefest"
	DefaultPersistDebounce = 500 * time.Millisecond
	DefaultWriteTimeout    = 5 * time.Second
)

type Options struct {
	// Namespace prefixes every storage key.
	Namespace string
	// PersistDebounce is the quiet period before a changed collection is written.
	PersistDebounce time.Duration
	// AuthLatency delays sign-in and registration to mimic a network round trip.
	AuthLatency  time.Duration
	WriteTimeout time.Duration
	Now          func() time.Time
	NewID        func() string
}

func (o Options) withDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.PersistDebounce <= 0 {
		o.PersistDebounce = DefaultPersistDebounce
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultWriteTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

type Store struct {
	kv   storage.KeyValueStorage
	opts Options

	mu           sync.RWMutex
	users        []User
	currentID    string
	films        []Film
	voted        map[string]struct{}
	ratings      map[string]int
	competitions []Competition
	ads          []Advertisement
	interviews   []DirectorInterview

	// writeMu keeps slot writes in the order their snapshots were taken.
	writeMu sync.Mutex
	persist *debouncer
}

// New hydrates a store from kv, falling back to the built-in seed data for any
// slot that is absent or unreadable.
func New(ctx context.Context, kv storage.KeyValueStorage, opts Options) *Store {
	s := &Store{
		kv:   kv,
		opts: opts.withDefaults(),
	}
	s.persist = newDebouncer(s.opts.PersistDebounce, s.writeSlot)

	seedNow := s.now()
	s.users = nonNil(Hydrate(ctx, kv, s.key(SlotUsers), seedUsers(seedNow)))

	sessionID := Hydrate(ctx, kv, s.key(SlotSession), "")
	if idx := s.userIndex(sessionID); idx >= 0 {
		s.currentID = sessionID
		s.users[idx].LastActive = seedNow
		logging.Log.Infof("STORE: restored session for user %s", sessionID)
	} else if sessionID != "" {
		logging.Log.Warnf("STORE: session pointer %s does not match a known user", sessionID)
	}

	s.films = nonNil(Hydrate(ctx, kv, s.key(SlotFilms), seedFilms(seedNow)))
	for i := range s.films {
		if s.films[i].Comments == nil {
			s.films[i].Comments = []Comment{}
		}
	}

	s.voted = make(map[string]struct{})
	for _, id := range Hydrate(ctx, kv, s.key(SlotVotes), []string{}) {
		s.voted[id] = struct{}{}
	}
	s.ratings = Hydrate(ctx, kv, s.key(SlotRatings), map[string]int{})
	if s.ratings == nil {
		s.ratings = map[string]int{}
	}

	s.competitions = nonNil(Hydrate(ctx, kv, s.key(SlotCompetitions), seedCompetitions()))
	s.interviews = nonNil(Hydrate(ctx, kv, s.key(SlotInterviews), seedInterviews()))
	s.ads = nonNil(Hydrate(ctx, kv, s.key(SlotAds), seedAds()))

	if s.currentID != "" {
		s.persist.schedule(SlotUsers)
	}

	logging.Log.Infof("STORE: hydrated %d users, %d films, %d competitions, %d ads, %d interviews",
		len(s.users), len(s.films), len(s.competitions), len(s.ads), len(s.interviews))
	return s
}

// Flush writes every collection with a pending change without waiting for the
// debounce delay.
func (s *Store) Flush() {
	s.persist.flush()
}

// PendingWrites reports how many collections are waiting for their debounced write.
func (s *Store) PendingWrites() int {
	return s.persist.pending()
}

// Close flushes pending writes. Changes made after Close stay in memory only.
func (s *Store) Close() {
	s.persist.close()
	logging.Log.Info("STORE: closed")
}

func (s *Store) key(slot Slot) string {
	return StorageKey(s.opts.Namespace, slot)
}

func (s *Store) now() time.Time {
	return s.opts.Now().UTC()
}

func (s *Store) writeSlot(slot Slot) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, err := s.encodeSlot(slot)
	if err != nil {
		logging.Log.Errorf("PERSIST: failed to encode %s: %v", slot, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.WriteTimeout)
	defer cancel()
	if err := s.kv.Set(ctx, s.key(slot), raw); err != nil {
		logging.Log.Errorf("PERSIST: dropped write of %s (%d bytes): %v", slot, len(raw), err)
		return
	}
	logging.Log.Debugf("PERSIST: wrote %s (%d bytes)", slot, len(raw))
}

func (s *Store) encodeSlot(slot Slot) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch slot {
	case SlotUsers:
		return json.Marshal(s.users)
	case SlotFilms:
		return json.Marshal(s.films)
	case SlotVotes:
		return json.Marshal(s.votedIDs())
	case SlotRatings:
		return json.Marshal(s.ratings)
	case SlotCompetitions:
		return json.Marshal(s.competitions)
	case SlotAds:
		return json.Marshal(s.ads)
	case SlotInterviews:
		return json.Marshal(s.interviews)
	}
	return nil, fmt.Errorf("slot %q is not debounced", slot)
}

// writeSession stores or clears the session pointer immediately.
func (s *Store) writeSession(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.WriteTimeout)
	defer cancel()

	key := s.key(SlotSession)
	if userID == "" {
		if err := s.kv.Delete(ctx, key); err != nil {
			logging.Log.Errorf("SESSION: failed to clear session pointer: %v", err)
		}
		return
	}

	raw, err := json.Marshal(userID)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to encode session pointer: %v", err)
		return
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		logging.Log.Errorf("SESSION: failed to write session pointer: %v", err)
	}
}

func (s *Store) votedIDs() []string {
	ids := make([]string, 0, len(s.voted))
	for id := range s.voted {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) userIndex(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.users, func(u User) bool { return u.ID == id })
}

func (s *Store) filmIndex(id string) int {
	return slices.IndexFunc(s.films, func(f Film) bool { return f.ID == id })
}

// touchCurrentUser refreshes lastActive of the session user, if any.
func (s *Store) touchCurrentUser() {
	if idx := s.userIndex(s.currentID); idx >= 0 {
		s.users[idx].LastActive = s.now()
		s.persist.schedule(SlotUsers)
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	idx := indexByID(items, id, idOf)
	if idx < 0 {
		return items, false
	}
	return slices.Delete(items, idx, idx+1), true
}
