// Package bbolt implements the ports.ResolutionCache interface using bbolt
// (embedded B+ tree). Daemon mode uses it so resolutions survive restarts.
// Writes are transactional — a crash mid-write cannot corrupt previously
// committed entries.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

var bucketResolutions = []byte("resolutions")

// resolutionJSON is the stored form of a pyast.Resolution.
type resolutionJSON struct {
	Status  int    `json:"status"`
	Path    string `json:"path,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// Cache is a persistent resolution cache backed by bbolt.
type Cache struct {
	db *bolt.DB
}

// NewCache opens (or creates) a bbolt database at the given path.
func NewCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached outcome and true on a hit. Read failures and
// undecodable entries degrade to a miss.
func (c *Cache) Get(name string) (pyast.Resolution, bool) {
	var res pyast.Resolution
	hit := false
	_ = c.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketResolutions)
		if bucket == nil {
			return nil
		}
		raw := bucket.Get([]byte(name))
		if raw == nil {
			return nil
		}
		var stored resolutionJSON
		if err := json.Unmarshal(raw, &stored); err != nil {
			return nil
		}
		res = pyast.Resolution{
			Status:  pyast.ResolutionStatus(stored.Status),
			Path:    stored.Path,
			Kind:    stored.Kind,
			Message: stored.Message,
		}
		hit = true
		return nil
	})
	return res, hit
}

// Put records an outcome. Write failures degrade to a future miss.
func (c *Cache) Put(name string, res pyast.Resolution) {
	raw, err := json.Marshal(resolutionJSON{
		Status:  int(res.Status),
		Path:    res.Path,
		Kind:    res.Kind,
		Message: res.Message,
	})
	if err != nil {
		return
	}
	_ = c.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketResolutions)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(name), raw)
	})
}

// Purge drops every cached entry. Idempotent.
func (c *Cache) Purge() {
	_ = c.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketResolutions) == nil {
			return nil
		}
		return tx.DeleteBucket(bucketResolutions)
	})
}
