package sqlite

import "testing"

func TestParseDSN(t *testing.T) {
	tests := []struct {
		dsn     string
		want    string
		wantErr bool
	}{
		{dsn: "sqlite://:memory:", want: ":memory:"},
		{dsn: "sqlite:///var/lib/loadout/spawns.db", want: "/var/lib/loadout/spawns.db"},
		{dsn: "sqlite://./spawns.db", want: "./spawns.db"},
		{dsn: "sqlite://spawns.db", want: "./spawns.db"},
		{dsn: "sqlite://my%20spawns.db?_pragma=foo", want: "./my spawns.db?_pragma=foo"},
		{dsn: "sqlite://", wantErr: true},
		{dsn: "postgres://localhost/db", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := parseDSN(tt.dsn)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.dsn)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
