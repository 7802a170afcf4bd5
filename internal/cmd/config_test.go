package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMapFromStruct(t *testing.T) {
	set := buildMapFromStruct(reflect.TypeOf(Set{}))
	assert.Contains(t, set, "library")
	assert.Contains(t, set, "hold")
	assert.Contains(t, set, "axis")
	// Positional args never land in config files.
	assert.NotContains(t, set, "device")
	assert.Equal(t, "0s", set["hold"])

	monitor := buildMapFromStruct(reflect.TypeOf(Monitor{}))
	assert.Contains(t, monitor, "library")
	assert.NotContains(t, monitor, "device")

	status := buildMapFromStruct(reflect.TypeOf(Status{}))
	assert.Contains(t, status, "ranges")
	assert.Equal(t, false, status["ranges"])
}

func TestConfigInitWritesTemplate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "monitor.json")
	c := ConfigInit{Command: "monitor", Format: "json", Output: dest}
	require.NoError(t, c.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var root map[string]any
	require.NoError(t, json.Unmarshal(data, &root))
	assert.Contains(t, root, "library")

	// Without --force a second run must refuse to clobber.
	assert.Error(t, c.Run())
	c.Force = true
	assert.NoError(t, c.Run())
}

func TestAxisUsageFromName(t *testing.T) {
	u, err := axisUsageFromName("x")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x30), u)

	_, err = axisUsageFromName("throttle")
	assert.Error(t, err)
}
