package store

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/styledstring/styledstring/pkg/styled"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	bolt "go.etcd.io/bbolt"
)

// Returns the digest of t and its compressed encoding.
func encodeBlob(t styled.Text) (string, []byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", nil, err
	}
	sum := blake3.Sum256(data)

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return "", nil, err
	}
	if _, err := w.Write(data); err != nil {
		return "", nil, err
	}
	if err := w.Close(); err != nil {
		return "", nil, err
	}
	return hex.EncodeToString(sum[:]), buf.Bytes(), nil
}

func decodeBlob(digest string, blob []byte) (styled.Text, error) {
	r, err := xz.NewReader(bytes.NewReader(blob))
	if err != nil {
		return styled.Text{}, fmt.Errorf("blob %s: %w", digest, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return styled.Text{}, fmt.Errorf("blob %s: %w", digest, err)
	}
	if sum := blake3.Sum256(data); hex.EncodeToString(sum[:]) != digest {
		return styled.Text{}, fmt.Errorf("blob %s: digest mismatch", digest)
	}
	var t styled.Text
	if err := json.Unmarshal(data, &t); err != nil {
		return styled.Text{}, fmt.Errorf("blob %s: %w", digest, err)
	}
	return t, nil
}

// Deletes the blob with the given digest if no name refers to it.
func collectBlob(tx *bolt.Tx, digest []byte) error {
	used := false
	err := tx.Bucket([]byte(bucketNames)).ForEach(func(_, v []byte) error {
		if bytes.Equal(v, digest) {
			used = true
		}
		return nil
	})
	if err != nil || used {
		return err
	}
	logger.Printf("removing unreferenced blob %s", digest)
	return tx.Bucket([]byte(bucketBlobs)).Delete(digest)
}
