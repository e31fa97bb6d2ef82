// README: ID generator and validation tests.
package types

import "testing"

func TestNewIDShape(t *testing.T) {
	seen := map[ID]struct{}{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if !id.Valid() {
			t.Fatalf("NewID produced invalid id %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("NewID produced duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIDValid(t *testing.T) {
	tests := []struct {
		id   ID
		want bool
	}{
		{"0123456789abcdef0123456789abcdef", true},
		{"", false},
		{"short", false},
		{"0123456789ABCDEF0123456789ABCDEF", false}, // upper case never generated
		{"0123456789abcdef0123456789abcdeg", false},
		{"0123456789abcdef0123456789abcdef0", false},
	}
	for _, tc := range tests {
		if got := tc.id.Valid(); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
