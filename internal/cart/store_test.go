package cart

import (
	"sync"
	"testing"
	"time"
)

func TestStoreIsolatesSessions(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Hour, nil)
	store.Dispatch("sess-a", AddItem{Product: headphones(), Quantity: 2})
	store.Dispatch("sess-b", AddItem{Product: watch(), Quantity: 1})

	a := store.Get("sess-a")
	b := store.Get("sess-b")

	if a.ItemCount() != 2 || a.Items[0].ProductID != 1 {
		t.Fatalf("unexpected cart for sess-a: %+v", a.Items)
	}
	if b.ItemCount() != 1 || b.Items[0].ProductID != 2 {
		t.Fatalf("unexpected cart for sess-b: %+v", b.Items)
	}
	if got := store.Get("sess-c"); len(got.Items) != 0 {
		t.Fatalf("unknown session must read as empty, got %+v", got.Items)
	}
}

func TestStoreSnapshotsAreDetached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Hour, nil)
	snap := store.Dispatch("sess", AddItem{Product: headphones(), Quantity: 2})
	snap.Items[0].Quantity = 99

	if got := store.Get("sess"); got.Items[0].Quantity != 2 {
		t.Fatalf("snapshot mutation leaked into the store: %+v", got.Items)
	}
}

func TestStorePruneIdle(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute, nil)
	store.Dispatch("stale", AddItem{Product: headphones()})
	store.Dispatch("fresh", AddItem{Product: watch()})

	if pruned := store.PruneIdle(time.Now()); pruned != 0 {
		t.Fatalf("nothing should be idle yet, pruned %d", pruned)
	}

	if pruned := store.PruneIdle(time.Now().Add(2 * time.Minute)); pruned != 2 {
		t.Fatalf("expected both sessions pruned, got %d", pruned)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, have %d sessions", store.Len())
	}
}

func TestStorePruneDisabledWithoutTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(0, nil)
	store.Dispatch("sess", AddItem{Product: headphones()})

	if pruned := store.PruneIdle(time.Now().Add(time.Hour)); pruned != 0 {
		t.Fatalf("pruning should be disabled, pruned %d", pruned)
	}
}

func TestStoreConcurrentDispatch(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Hour, nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				store.Dispatch("shared", AddItem{Product: ProductRef{ProductID: 3, Name: "Premium Laptop Bag", PriceCents: 7999, MaxStock: 1000}})
			}
		}()
	}
	wg.Wait()

	got := store.Get("shared")
	if got.ItemCount() != 400 {
		t.Fatalf("expected 400 adds to land, got %d", got.ItemCount())
	}
}
