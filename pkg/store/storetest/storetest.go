// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/styledstring/styledstring/pkg/store/storedefs"
	"github.com/styledstring/styledstring/pkg/styled"
)

func sample() styled.Text {
	var b styled.Builder
	b.AppendWithAttrs("Hello", styled.Bold, styled.Fg(styled.Blue))
	b.Append(", ")
	b.AppendWithAttrs("world \U0001F30D", styled.Italic)
	if err := b.AddLink(7, 12, "https://example.org"); err != nil {
		panic(err)
	}
	return b.Build()
}

// TestStore tests the text operations of a Store, which must be empty.
func TestStore(t *testing.T, store storedefs.Store) {
	t.Helper()

	names, err := store.Names()
	if len(names) != 0 || err != nil {
		t.Errorf("Names() on empty store -> (%v, %v), want (empty, nil)", names, err)
	}

	text := sample()
	digest, err := store.Put("greeting", text)
	if err != nil {
		t.Fatalf("Put -> error %v", err)
	}
	if len(digest) != 64 {
		t.Errorf("Put -> digest %q, want 64 hex digits", digest)
	}
	got, err := store.Get("greeting")
	if err != nil {
		t.Errorf("Get -> error %v", err)
	} else if !cmp.Equal(got, text) {
		t.Errorf("Get (-want +got):\n%s", cmp.Diff(text, got))
	}
	if d, err := store.Digest("greeting"); d != digest || err != nil {
		t.Errorf("Digest -> (%q, %v), want (%q, nil)", d, err, digest)
	}

	// Identical content has the same digest; different content does not.
	if d, _ := store.Put("copy", text); d != digest {
		t.Errorf("Put of identical text -> digest %q, want %q", d, digest)
	}
	if d, _ := store.Put("plain", styled.Plain(text.String())); d == digest {
		t.Errorf("Put of plain text -> same digest as styled text")
	}
	if d, _ := store.Put("empty", styled.Text{}); d == "" {
		t.Errorf("Put of empty text -> empty digest")
	}

	names, err = store.Names()
	wantNames := []string{"copy", "empty", "greeting", "plain"}
	if !cmp.Equal(names, wantNames) || err != nil {
		t.Errorf("Names() -> (%v, %v), want (%v, nil)", names, err, wantNames)
	}

	// Overwriting.
	store.Put("copy", styled.Plain("other"))
	if got, _ := store.Get("copy"); got.String() != "other" {
		t.Errorf("Get after overwrite -> %q, want %q", got, "other")
	}

	if err := store.Delete("greeting"); err != nil {
		t.Errorf("Delete -> error %v", err)
	}
	if _, err := store.Get("greeting"); !errors.Is(err, storedefs.ErrNotFound) {
		t.Errorf("Get after Delete -> error %v, want ErrNotFound", err)
	}
	if err := store.Delete("greeting"); !errors.Is(err, storedefs.ErrNotFound) {
		t.Errorf("second Delete -> error %v, want ErrNotFound", err)
	}
	if _, err := store.Digest("greeting"); !errors.Is(err, storedefs.ErrNotFound) {
		t.Errorf("Digest after Delete -> error %v, want ErrNotFound", err)
	}
}
