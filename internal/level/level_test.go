package level

import (
	"testing"

	"loadout/internal/rng"
)

func TestBounds(t *testing.T) {
	cases := []struct {
		name          string
		player, delta int
		wantLo        int
		wantHi        int
	}{
		{"middle", 30, 10, 20, 40},
		{"clamped at one", 3, 10, 1, 13},
		{"clamped at max", 68, 10, 58, 71},
		{"zero delta", 15, 0, 15, 15},
		{"player above max", 90, 5, 71, 71},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := Bounds(tc.player, tc.delta, 71)
			if lo != tc.wantLo || hi != tc.wantHi {
				t.Fatalf("expected [%d,%d], got [%d,%d]", tc.wantLo, tc.wantHi, lo, hi)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	src := rng.New(42)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		got := Generate(src, 5, 3, 71)
		if got < 2 || got > 8 {
			t.Fatalf("level %d outside [2,8]", got)
		}
		seen[got] = true
	}
	if len(seen) != 7 {
		t.Fatalf("expected every level in range, got %v", seen)
	}
}
