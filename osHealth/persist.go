package osHealth

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/monobilisim/hostcheck/common/clientport"
)

const (
	DefaultReportsDir = "reports"

	SnapshotModule = "osHealth"
	SnapshotKey    = "last_snapshot"
)

// SnapshotStore keeps the last report between runs.
type SnapshotStore interface {
	PutJSON(module, key, json string, cachedAt time.Time) error
}

// ReportPath returns dir/health_<unix-seconds>.txt.
func ReportPath(dir string, now time.Time) string {
	if dir == "" {
		dir = DefaultReportsDir
	}
	return filepath.Join(dir, "health_"+strconv.FormatInt(now.Unix(), 10)+".txt")
}

// SaveReport writes text to ReportPath, creating dir when missing.
// Two runs within the same second overwrite each other.
func SaveReport(fs clientport.FS, dir string, now time.Time, text string) (string, error) {
	if dir == "" {
		dir = DefaultReportsDir
	}
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create reports directory %s: %w", dir, err)
	}

	path := ReportPath(dir, now)
	if err := fs.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}

// PersistSnapshot stores the report as JSON under osHealth/last_snapshot.
func PersistSnapshot(store SnapshotStore, r Report) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return store.PutJSON(SnapshotModule, SnapshotKey, string(b), r.Snapshot.TakenAt)
}
