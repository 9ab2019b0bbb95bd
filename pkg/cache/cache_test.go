package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestKeyDeterministic(t *testing.T) {
	a := Key("maze", "wilsons", 5, 5, uint64(42), "png")
	b := Key("maze", "wilsons", 5, 5, uint64(42), "png")
	if a != b {
		t.Errorf("same inputs produced different keys: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "maze:") {
		t.Errorf("key missing prefix: %q", a)
	}
}

func TestKeyDistinguishesInputs(t *testing.T) {
	base := Key("maze", "wilsons", 5, 5, uint64(42), "png")
	variants := []string{
		Key("maze", "wilsons", 5, 5, uint64(43), "png"),
		Key("maze", "wilsons", 5, 6, uint64(42), "png"),
		Key("maze", "sidewinder", 5, 5, uint64(42), "png"),
		Key("maze", "wilsons", 5, 5, uint64(42), "text"),
		Key("render", "wilsons", 5, 5, uint64(42), "png"),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base key", i)
		}
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if ok || data != nil {
		t.Error("null cache must always miss")
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}
