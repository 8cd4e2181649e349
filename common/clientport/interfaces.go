package clientport

import (
	"context"
	"io/fs"
)

// FS abstracts filesystem operations for testability.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}

// Exiter lets us stub out os.Exit.
type Exiter interface {
	Exit(code int)
}

// CommandRunner runs a host utility and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
