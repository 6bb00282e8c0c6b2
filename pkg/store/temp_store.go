package store

import (
	"path/filepath"
	"testing"
)

// MustTempStore returns a DB backed by a file in a temporary directory. The
// DB is closed when the test finishes.
func MustTempStore(t testing.TB) *DB {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("open temp store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}
