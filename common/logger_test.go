package common

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogFilePathUserMode(t *testing.T) {
	if !UserMode() {
		assert.Equal(t, "/var/log/hostcheck.log", LogFilePath())
		return
	}
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	assert.Equal(t, filepath.Join(state, "hostcheck", "hostcheck.log"), LogFilePath())
	assert.True(t, FileExists(filepath.Join(state, "hostcheck")))
}

func TestInitZerologLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	t.Setenv("HOSTCHECK_LOGLEVEL", "debug")
	InitZerolog()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	t.Setenv("HOSTCHECK_LOGLEVEL", "verbose")
	InitZerolog()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNoColor(t *testing.T) {
	t.Setenv("HOSTCHECK_NOCOLOR", "1")
	assert.True(t, NoColor())
	t.Setenv("HOSTCHECK_NOCOLOR", "")
	assert.False(t, NoColor())
}
