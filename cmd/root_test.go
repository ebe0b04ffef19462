package cmd

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"version":   false,
		"fetch":     false,
		"favorites": false,
		"storage":   false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestStorageHasClear(t *testing.T) {
	var found bool
	for _, c := range storageCmd.Commands() {
		if c.Name() == "clear" {
			found = true
		}
	}
	if !found {
		t.Error("storage clear not registered")
	}
}
