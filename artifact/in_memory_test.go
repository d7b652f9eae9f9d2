package artifact

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hupe1980/modelbridge/core"
)

// Interface compliance (compile-time assertion)
var _ core.ArtifactStore = (*InMemoryStore)(nil)

func TestInMemoryStore_SaveGetIsolation(t *testing.T) {
	store := NewInMemoryStore()
	data := []byte("hello")
	if err := store.Save("inv-1", "plot.png", data); err != nil {
		t.Fatalf("save: %v", err)
	}
	// mutate original slice
	data[0] = 'H'
	out, err := store.Get("inv-1", "plot.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(out) != "hello" { // should not reflect mutation
		t.Fatalf("expected 'hello', got %q", string(out))
	}
	// mutate returned slice
	out[0] = 'x'
	out2, _ := store.Get("inv-1", "plot.png")
	if string(out2) != "hello" { // original stored should be unchanged
		t.Fatalf("expected isolation, got %q", string(out2))
	}
}

func TestInMemoryStore_ListAndDelete(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Save("inv-1", "plot.png", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("inv-1", "table.csv", []byte("2")); err != nil {
		t.Fatal(err)
	}
	names, err := store.List("inv-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 filenames, got %d", len(names))
	}
	if err := store.Delete("inv-1", "plot.png"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get("inv-1", "plot.png"); err == nil {
		t.Fatalf("expected error for deleted artifact")
	}
	names, _ = store.List("inv-1")
	if len(names) != 1 {
		t.Fatalf("expected 1 filename after delete, got %d", len(names))
	}
}

func TestInMemoryStore_NotFound(t *testing.T) {
	store := NewInMemoryStore()
	if _, err := store.Get("inv-x", "missing.png"); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := store.Delete("inv-x", "missing.png"); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestInMemoryStore_Concurrency(t *testing.T) {
	store := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("file-%d.png", i%10)
			if err := store.Save("inv-1", name, []byte("data")); err != nil {
				t.Errorf("save err: %v", err)
			}
			_, _ = store.List("inv-1")
		}()
	}
	wg.Wait()
	names, err := store.List("inv-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 10 {
		t.Fatalf("expected 10 filenames, got %d", len(names))
	}
}
