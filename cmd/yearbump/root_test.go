package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestRootCommand checks the command surface stays fixed
func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "yearbump", cmd.Use)
	assert.False(t, cmd.HasSubCommands())

	// The replacement parameters are not configurable; --debug is the only flag
	assert.Nil(t, cmd.Flags().Lookup("root"))
	assert.Nil(t, cmd.Flags().Lookup("from"))
	assert.NotNil(t, cmd.Flags().Lookup("debug"))
}

// 🧪 TestRun_MissingRoot checks the run terminates when the root cannot be enumerated
func TestRun_MissingRoot(t *testing.T) {
	// The test working directory has no src/content/calculators tree
	err := run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerating")
}
