package store

import (
	"path/filepath"
	"testing"

	"github.com/styledstring/styledstring/pkg/styled"
	bolt "go.etcd.io/bbolt"
)

func blobCount(t *testing.T, s *DB) int {
	t.Helper()
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketBlobs)).Stats().KeyN
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestBlobsAreShared(t *testing.T) {
	s := MustTempStore(t)
	text := styled.Plain("shared")

	s.Put("a", text)
	s.Put("b", text)
	if n := blobCount(t, s); n != 1 {
		t.Errorf("%d blobs after storing one text twice, want 1", n)
	}

	s.Delete("a")
	if n := blobCount(t, s); n != 1 {
		t.Errorf("%d blobs after deleting one of two names, want 1", n)
	}
	s.Put("b", styled.Plain("replaced"))
	if n := blobCount(t, s); n != 1 {
		t.Errorf("%d blobs after replacing the last reference, want 1", n)
	}
	s.Delete("b")
	if n := blobCount(t, s); n != 0 {
		t.Errorf("%d blobs after deleting all names, want 0", n)
	}
}

func TestBlobRoundTrip(t *testing.T) {
	var b styled.Builder
	b.AppendWithAttrs("x\U0001F600y", styled.FontFamily("Noto Sans\nMono"), styled.FontSize(12))
	text := b.Build()

	digest, blob, err := encodeBlob(text)
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeBlob(digest, blob)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(text) {
		t.Errorf("decodeBlob -> %#v, want %#v", got, text)
	}

	if _, err := decodeBlob(digest, []byte("not xz")); err == nil {
		t.Errorf("decodeBlob accepted corrupt data")
	}
	_, other, _ := encodeBlob(styled.Plain("other"))
	if _, err := decodeBlob(digest, other); err == nil {
		t.Errorf("decodeBlob accepted a blob with the wrong digest")
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Put("kept", styled.Plain("value"))
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, err := s.Get("kept")
	if err != nil || got.String() != "value" {
		t.Errorf("Get after reopen -> (%q, %v), want (%q, nil)", got, err, "value")
	}
}
