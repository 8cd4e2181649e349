package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFilePath returns the JSON log file location.
// Root writes to /var/log, everyone else to the XDG state directory.
func LogFilePath() string {
	if !UserMode() {
		return "/var/log/hostcheck.log"
	}

	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}

	dir := filepath.Join(xdgStateHome, "hostcheck")
	if err := CreateDirIfNotExists(dir); err != nil {
		return ""
	}
	return filepath.Join(dir, "hostcheck.log")
}

// InitZerolog configures the global zerolog logger.
// Human readable output goes to stderr since stdout carries the report,
// JSON lines go to the log file.
func InitZerolog() {
	lvl := os.Getenv("HOSTCHECK_LOGLEVEL")
	if lvl == "" {
		lvl = "info"
	}

	level, err := zerolog.ParseLevel(lvl)
	if err != nil {
		level = zerolog.InfoLevel
		log.Warn().
			Str("provided_level", lvl).
			Str("default_level", level.String()).
			Msg("Invalid log level provided, using default")
	}
	zerolog.SetGlobalLevel(level)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + fmt.Sprintf("%d", line)
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
	zerolog.ErrorFieldName = "error"

	consoleWriter := zerolog.ConsoleWriter{
		Out:           os.Stderr,
		TimeFormat:    time.RFC3339,
		NoColor:       NoColor(),
		FieldsExclude: []string{"component", "version", "pid", "hostname"},
	}

	var output io.Writer = consoleWriter
	logfilePath := LogFilePath()
	if logfilePath != "" {
		logFile, err := os.OpenFile(logfilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v, logging to stderr only\n", logfilePath, err)
		} else {
			output = zerolog.MultiLevelWriter(consoleWriter, logFile)
		}
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Caller().
		Str("component", ScriptName).
		Str("version", Version).
		Int("pid", os.Getpid())

	if hostname, err := os.Hostname(); err == nil {
		logger = logger.Str("hostname", hostname)
	}

	log.Logger = logger.Logger()

	log.Debug().
		Str("component", "logging").
		Str("level", level.String()).
		Str("log_file", logfilePath).
		Bool("user_mode", UserMode()).
		Msg("zerolog initialized")
}
