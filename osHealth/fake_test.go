package osHealth

import (
	"context"
	"errors"
	"io/fs"
	"time"
)

// fakeSource is a SystemInfoSource returning canned counters.
type fakeSource struct {
	load        LoadAverage
	loadErr     error
	cores       int
	coresErr    error
	pageSize    uint64
	pageSizeErr error
	memTotal    uint64
	memTotalErr error
	pages       PageStats
	pagesErr    error
	disk        DiskCounters
	diskErr     error
	diskPaths   []string
	boot        time.Time
	bootErr     error
	block       bool
}

func healthySource(now time.Time) *fakeSource {
	return &fakeSource{
		load:     LoadAverage{Load1: 0.8, Load5: 0.6, Load15: 0.4},
		cores:    8,
		pageSize: 4096,
		memTotal: 16 * bytesPerGB,
		// 8 GB free + 4 GB inactive
		pages: PageStats{Free: 2097152, Active: 1048576, Inactive: 1048576},
		disk:  DiskCounters{Total: 100 * bytesPerGB, Used: 20 * bytesPerGB, Free: 80 * bytesPerGB},
		boot:  now.Add(-48 * time.Hour),
	}
}

func (f *fakeSource) wait(ctx context.Context) error {
	if !f.block {
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeSource) LoadAverage(ctx context.Context) (LoadAverage, error) {
	if err := f.wait(ctx); err != nil {
		return LoadAverage{}, err
	}
	return f.load, f.loadErr
}

func (f *fakeSource) CPUCount(ctx context.Context) (int, error) {
	return f.cores, f.coresErr
}

func (f *fakeSource) PageSize(ctx context.Context) (uint64, error) {
	return f.pageSize, f.pageSizeErr
}

func (f *fakeSource) MemoryTotal(ctx context.Context) (uint64, error) {
	return f.memTotal, f.memTotalErr
}

func (f *fakeSource) PageStats(ctx context.Context) (PageStats, error) {
	return f.pages, f.pagesErr
}

func (f *fakeSource) DiskUsage(ctx context.Context, path string) (DiskCounters, error) {
	f.diskPaths = append(f.diskPaths, path)
	if f.diskErr != nil {
		return DiskCounters{}, f.diskErr
	}
	return f.disk, nil
}

func (f *fakeSource) BootTime(ctx context.Context) (time.Time, error) {
	return f.boot, f.bootErr
}

// memFS is an in-memory clientport.FS.
type memFS struct {
	files    map[string][]byte
	dirs     []string
	mkdirErr error
	writeErr error
}

func newMemFS() *memFS {
	return &memFS{files: map[string][]byte{}}
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	b, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return b, nil
}

func (m *memFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = data
	return nil
}

func (m *memFS) MkdirAll(path string, perm fs.FileMode) error {
	if m.mkdirErr != nil {
		return m.mkdirErr
	}
	m.dirs = append(m.dirs, path)
	return nil
}

// memStore is an in-memory SnapshotStore.
type memStore struct {
	puts map[string]string
	err  error
}

func (m *memStore) PutJSON(module, key, json string, cachedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	if m.puts == nil {
		m.puts = map[string]string{}
	}
	m.puts[module+"/"+key] = json
	return nil
}

// fakeRunner is a clientport.CommandRunner keyed by "name arg...".
type fakeRunner struct {
	out   map[string]string
	calls []string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	key := name
	for _, a := range args {
		key += " " + a
	}
	r.calls = append(r.calls, key)
	out, ok := r.out[key]
	if !ok {
		return nil, errors.New(key + ": command not found")
	}
	return []byte(out), nil
}
