package ui

import "testing"

func TestAreaEntryLabel(t *testing.T) {
	cases := []struct {
		entry AreaEntry
		want  string
	}{
		{AreaEntry{ID: 3}, " 3"},
		{AreaEntry{ID: 17, Name: "Nexus"}, "17  Nexus"},
	}
	for _, c := range cases {
		if got := c.entry.Label(); got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}
