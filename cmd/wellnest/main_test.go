package main

import "testing"

func TestNeedsStore(t *testing.T) {
	tests := map[string]bool{
		"":                             true,
		"tui":                          true,
		"habit toggle <habit>":         true,
		"init":                         false,
		"keyring set <entry> <secret>": false,
		"classify <text>":              false,
	}
	for cmd, want := range tests {
		if got := needsStore(cmd); got != want {
			t.Errorf("needsStore(%q) = %v, want %v", cmd, got, want)
		}
	}
}
