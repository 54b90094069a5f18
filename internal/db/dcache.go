package db

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/xyproto/env/v2"

	"ember/internal/astid"
	"ember/internal/source"
	"ember/internal/syntax"
)

// Current schema version - increment when ItemMapPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит арены локаторов по content digest на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// ItemMapPayload stores one file's assigned locators for fast warm starts.
// Spans are stored as plain offsets: FileIDs are per-process and get
// rehydrated on restore.
type ItemMapPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Kinds  []uint8
	Starts []uint32
	Ends   []uint32
}

func newItemMapPayload(m *astid.Map) *ItemMapPayload {
	ptrs := m.Locators()
	p := &ItemMapPayload{
		Schema: diskCacheSchemaVersion,
		Kinds:  make([]uint8, len(ptrs)),
		Starts: make([]uint32, len(ptrs)),
		Ends:   make([]uint32, len(ptrs)),
	}
	for i, ptr := range ptrs {
		p.Kinds[i] = uint8(ptr.Kind)
		p.Starts[i] = ptr.Span.Start
		p.Ends[i] = ptr.Span.End
	}
	return p
}

// restore rebuilds the identity map for the current process's file ID.
// Returns nil if the payload is from an incompatible schema or malformed.
func (p *ItemMapPayload) restore(file source.FileID) *astid.Map {
	if p.Schema != diskCacheSchemaVersion {
		return nil
	}
	if len(p.Kinds) != len(p.Starts) || len(p.Kinds) != len(p.Ends) {
		return nil
	}
	ptrs := make([]syntax.NodePtr, len(p.Kinds))
	for i := range p.Kinds {
		ptrs[i] = syntax.NodePtr{
			Kind: syntax.NodeKind(p.Kinds[i]),
			Span: source.Span{File: file, Start: p.Starts[i], End: p.Ends[i]},
		}
	}
	return astid.Restore(ptrs)
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location. EMBER_CACHE_DIR overrides the whole path.
func OpenDiskCache(app string) (*DiskCache, error) {
	dir := env.Str("EMBER_CACHE_DIR")
	if dir == "" {
		base := env.Str("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory (tests).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key source.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "items".
	return filepath.Join(c.dir, "items", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key source.Digest, payload *ItemMapPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key source.Digest, out *ItemMapPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Printf("failed to close cache file: %v", closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "items"))
}
