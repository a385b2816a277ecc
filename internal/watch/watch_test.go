package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func startWatcher(t *testing.T, path string, opts ...Option) (<-chan Change, context.CancelFunc, <-chan error) {
	t.Helper()

	changes := make(chan Change, 16)
	w, err := New(path, func(c Change) { changes <- c }, append([]Option{WithDebounce(20 * time.Millisecond)}, opts...)...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	return changes, cancel, done
}

func waitChange(t *testing.T, changes <-chan Change) Change {
	t.Helper()
	select {
	case c := <-changes:
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for change")
		return Change{}
	}
}

func stop(t *testing.T, cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestInitialRead(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "result.txt")
	if err := os.WriteFile(path, []byte("42\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	changes, cancel, done := startWatcher(t, path, WithInitialRead())
	c := waitChange(t, changes)
	if string(c.Data) != "42\n" || c.Removed {
		t.Errorf("Unexpected initial change: %+v", c)
	}
	stop(t, cancel, done)
}

func TestInitialReadMissingFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "later.txt")
	changes, cancel, done := startWatcher(t, path, WithInitialRead())

	select {
	case c := <-changes:
		t.Errorf("Expected no change for a file that does not exist yet, got %+v", c)
	case <-time.After(100 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("7"), 0o600); err != nil {
		t.Fatal(err)
	}
	c := waitChange(t, changes)
	if string(c.Data) != "7" || c.Removed {
		t.Errorf("Expected created file to be delivered, got %+v", c)
	}
	stop(t, cancel, done)
}

func TestWriteIsDelivered(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "result.txt")
	changes, cancel, done := startWatcher(t, path)

	// give the watcher a moment to register the directory
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("7"), 0o600); err != nil {
		t.Fatal(err)
	}

	c := waitChange(t, changes)
	if string(c.Data) != "7" {
		t.Errorf("Expected data 7, got %q", c.Data)
	}
	if c.Path != path {
		t.Errorf("Expected path %s, got %s", path, c.Path)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	c = waitChange(t, changes)
	if !c.Removed {
		t.Errorf("Expected removal, got %+v", c)
	}

	stop(t, cancel, done)
}

func TestNewValidation(t *testing.T) {
	dir := t.TempDir()
	noop := func(Change) {}

	tests := []struct {
		name    string
		path    string
		handler Handler
		wantErr bool
	}{
		{"valid", filepath.Join(dir, "a.txt"), noop, false},
		{"empty", "  ", noop, true},
		{"leading parent", "../a.txt", noop, false},
		{"dots in name", filepath.Join(dir, "a..b.txt"), noop, false},
		{"traversal", dir + "/sub/../../a.txt", noop, true},
		{"directory", dir, noop, true},
		{"missing parent", filepath.Join(dir, "nope", "a.txt"), noop, true},
		{"nil handler", filepath.Join(dir, "a.txt"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.path, tt.handler)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
