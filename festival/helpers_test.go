package festival

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/storage"
	"github.com/sirupsen/logrus"
)

var testNow = time.Date(2026, time.March, 14, 18, 30, 0, 0, time.UTC)

type testClock struct {
	now atomic.Pointer[time.Time]
}

func newTestClock() *testClock {
	c := &testClock{}
	c.set(testNow)
	return c
}

func (c *testClock) Now() time.Time { return *c.now.Load() }

func (c *testClock) set(t time.Time) { c.now.Store(&t) }

func (c *testClock) advance(d time.Duration) { c.set(c.Now().Add(d)) }

func sequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// setupTestStore builds a store over kv with a frozen clock and a debounce long
// enough that only Flush writes during a test.
func setupTestStore(t *testing.T, kv storage.KeyValueStorage, clock *testClock) *Store {
	t.Helper()
	logging.Log = logrus.New()
	logging.Log.SetLevel(logrus.WarnLevel)

	s := New(context.Background(), kv, Options{
		PersistDebounce: time.Hour,
		Now:             clock.Now,
		NewID:           sequentialIDs(t.Name()),
	})
	t.Cleanup(s.Close)
	return s
}

func ptr[T any](v T) *T { return &v }
