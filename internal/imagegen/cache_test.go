package imagegen

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestCache(ttl time.Duration, max int) (*Cache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewCache(ttl, max)
	c.now = clock.now
	return c, clock
}

func TestCacheGetSet(t *testing.T) {
	c, clock := newTestCache(time.Minute, 4)

	if _, ok := c.Get("age?x=1"); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.Set("age?x=1", []byte("png"))
	if got, ok := c.Get("age?x=1"); !ok || string(got) != "png" {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	clock.t = clock.t.Add(2 * time.Minute)
	if _, ok := c.Get("age?x=1"); ok {
		t.Error("expected stale entry to miss")
	}
}

func TestCacheEvictsOldestWhenFull(t *testing.T) {
	c, clock := newTestCache(time.Hour, 2)

	c.Set("a", []byte("1"))
	clock.t = clock.t.Add(time.Second)
	c.Set("b", []byte("2"))
	clock.t = clock.t.Add(time.Second)
	c.Set("c", []byte("3"))

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("expected oldest entry to be evicted")
	}
	for _, k := range []string{"b", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %q to remain", k)
		}
	}
}

func TestCacheEvictsExpiredFirst(t *testing.T) {
	c, clock := newTestCache(time.Minute, 2)

	c.Set("a", []byte("1"))
	clock.t = clock.t.Add(30 * time.Second)
	c.Set("b", []byte("2"))
	clock.t = clock.t.Add(45 * time.Second)
	c.Set("c", []byte("3"))

	if _, ok := c.Get("b"); !ok {
		t.Error("expected live entry to survive while an expired one is dropped")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestCacheDisabled(t *testing.T) {
	c, _ := newTestCache(time.Minute, 0)
	c.Set("a", []byte("1"))
	if _, ok := c.Get("a"); ok {
		t.Error("expected disabled cache to store nothing")
	}
}

func TestCacheGetOrRender(t *testing.T) {
	c, _ := newTestCache(time.Minute, 4)
	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("png"), nil
	}

	if _, hit, err := c.GetOrRender("k", render); err != nil || hit {
		t.Fatalf("first call: hit=%v err=%v", hit, err)
	}
	if _, hit, err := c.GetOrRender("k", render); err != nil || !hit {
		t.Fatalf("second call: hit=%v err=%v", hit, err)
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, _, err := c.GetOrRender("bad", func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("expected failed render not to be cached")
	}
}
