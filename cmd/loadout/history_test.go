package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"loadout/internal/store"
)

func TestParseParamPairs(t *testing.T) {
	params, err := parseParamPairs([]string{"1=default", " 2 = two ", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"1": "default", "2": "two"}, params); diff != "" {
		t.Fatalf("unexpected params (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"novalue", "=x"} {
		if _, err := parseParamPairs([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestPrintSpawns(t *testing.T) {
	var out bytes.Buffer
	if err := printSpawns(&out, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No spawns recorded.") {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	records := []store.SpawnRecord{{
		ID:        "abc",
		CreatedAt: time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC),
		Bundle:    "default",
		Tier:      "two",
		Level:     33,
		Elite:     true,
		WeaponTpl: "rifle",
	}}
	if err := printSpawns(&out, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", out.String())
	}
	for _, want := range []string{"abc", "2026-04-02 08:30:00", "default", "two", "33", "true", "rifle"} {
		if !strings.Contains(lines[1], want) {
			t.Fatalf("expected %q in %q", want, lines[1])
		}
	}
}
