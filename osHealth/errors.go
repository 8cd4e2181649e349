package osHealth

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrMetricUnavailable means a host facility could not be queried or parsed.
	ErrMetricUnavailable = errors.New("metric unavailable")
	// ErrPathUnavailable means the filesystem path is missing or not accessible.
	ErrPathUnavailable = errors.New("path unavailable")
)

// MetricError is returned by every collector.
// It matches its Kind sentinel and the underlying cause with errors.Is.
type MetricError struct {
	Metric Metric
	Kind   error
	Err    error
}

func (e *MetricError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Metric, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Metric, e.Kind, e.Err)
}

func (e *MetricError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func unavailable(metric Metric, err error) error {
	kind := ErrMetricUnavailable
	if errors.Is(err, ErrPathUnavailable) {
		kind = ErrPathUnavailable
	}
	return &MetricError{Metric: metric, Kind: kind, Err: err}
}

// pathError classifies a filesystem statistics failure for path.
func pathError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s: %w: %w", path, ErrPathUnavailable, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}

// deadline maps an expired collector context onto the error it interrupted.
func deadline(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		return fmt.Errorf("%w: %w", ctxErr, err)
	}
	return err
}
