package cmd

import (
	"github.com/jsphweid/chordcoach/level"
	"github.com/jsphweid/chordcoach/pattern"
)

var registry *level.Registry

// LoadRegistry builds the catalog and every tier's chord list. Commands
// call it once on startup; the e2e tests call it from TestMain.
func LoadRegistry() {
	registry = level.NewRegistry(pattern.NewCatalog())
}
