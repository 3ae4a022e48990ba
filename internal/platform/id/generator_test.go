package id

import (
	"sync"
	"testing"
)

func TestRandomGenerator_Length(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		size int
		want int
	}{
		{name: "default", size: 0, want: 16},
		{name: "custom", size: 4, want: 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewRandomGenerator(tc.size).NewID()
			if err != nil {
				t.Fatalf("new id: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("unexpected id length: got=%d want=%d (%s)", len(got), tc.want, got)
			}
		})
	}
}

func TestRandomGenerator_Unique(t *testing.T) {
	t.Parallel()

	g := NewRandomGenerator(0)
	seen := make(map[string]struct{})
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := g.NewID()
			if err != nil {
				t.Errorf("new id: %v", err)
				return
			}
			mu.Lock()
			seen[v] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != 50 {
		t.Fatalf("expected 50 unique ids, got %d", len(seen))
	}
}
