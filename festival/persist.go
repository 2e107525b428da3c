package festival

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/storage"
)

// Slot is one named collection in durable storage.
type Slot string

const (
	SlotUsers        Slot = "users"
	SlotSession      Slot = "session"
	SlotFilms        Slot = "films"
	SlotVotes        Slot = "votes"
	SlotRatings      Slot = "ratings"
	SlotCompetitions Slot = "competitions"
	SlotAds          Slot = "ads"
	SlotInterviews   Slot = "interviews"
)

// StorageKey is the namespaced, versioned key a slot is stored under.
func StorageKey(namespace string, slot Slot) string {
	return fmt.Sprintf("%s_%s_v1", namespace, slot)
}

// Hydrate reads and decodes a slot. Any failure, including an absent key, yields
// fallback; callers never see an error.
func Hydrate[T any](ctx context.Context, kv storage.KeyValueStorage, key string, fallback T) T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			logging.Log.Debugf("PERSIST: %s not stored yet, using defaults", key)
		} else {
			logging.Log.Warnf("PERSIST: failed to read %s, using defaults: %v", key, err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logging.Log.Warnf("PERSIST: corrupt data in %s, using defaults: %v", key, err)
		return fallback
	}
	return v
}

// debouncer coalesces writes per slot. A change arriving before the delay elapses
// replaces the pending timer.
type debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timers map[Slot]*time.Timer
	gen    map[Slot]uint64
	closed bool
	write  func(Slot)
}

func newDebouncer(delay time.Duration, write func(Slot)) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[Slot]*time.Timer),
		gen:    make(map[Slot]uint64),
		write:  write,
	}
}

func (d *debouncer) schedule(slots ...Slot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	for _, slot := range slots {
		if t, ok := d.timers[slot]; ok {
			t.Stop()
		}
		d.gen[slot]++
		gen := d.gen[slot]
		d.timers[slot] = time.AfterFunc(d.delay, func() { d.fire(slot, gen) })
	}
}

func (d *debouncer) fire(slot Slot, gen uint64) {
	d.mu.Lock()
	if d.gen[slot] != gen {
		d.mu.Unlock()
		return
	}
	delete(d.timers, slot)
	d.mu.Unlock()

	d.write(slot)
}

// flush writes every pending slot now, in a stable order.
func (d *debouncer) flush() {
	d.mu.Lock()
	pending := make([]Slot, 0, len(d.timers))
	for slot, t := range d.timers {
		t.Stop()
		d.gen[slot]++
		pending = append(pending, slot)
	}
	clear(d.timers)
	d.mu.Unlock()

	slices.Sort(pending)
	for _, slot := range pending {
		d.write(slot)
	}
}

func (d *debouncer) pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

func (d *debouncer) close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.flush()
}
