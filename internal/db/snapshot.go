// Package db provides the per-process snapshot database: memoized access
// from a file to its parsed tree and its item identity map. It is the layer
// through which stable handles are resolved back to live nodes.
//
// The database is a snapshot cache, not a dependency-tracking engine: a file
// edit produces a new FileID in the FileSet, so memoized artifacts of old
// snapshots simply stop being requested. An optional disk cache rehydrates
// item maps across runs for unchanged content.
package db

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"ember/internal/astid"
	"ember/internal/diag"
	"ember/internal/parser"
	"ember/internal/source"
	"ember/internal/syntax"
)

// Snapshot memoizes per-file parse and item-map queries.
// Thread-safe for concurrent access.
type Snapshot struct {
	mu     sync.RWMutex
	fs     *source.FileSet
	parses map[source.FileID]*syntax.Node
	maps   map[source.FileID]*astid.Map
	cache  *DiskCache // nil — без тёплого старта
}

// NewSnapshot creates a database over fs. cache may be nil.
func NewSnapshot(fs *source.FileSet, cache *DiskCache) *Snapshot {
	return &Snapshot{
		fs:     fs,
		parses: make(map[source.FileID]*syntax.Node),
		maps:   make(map[source.FileID]*astid.Map),
		cache:  cache,
	}
}

// FileSet returns the underlying file set.
func (s *Snapshot) FileSet() *source.FileSet { return s.fs }

// LoadDir загружает все *.em файлы из dir в FileSet в отсортированном порядке.
func (s *Snapshot) LoadDir(dir string) ([]source.FileID, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".em") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	ids := make([]source.FileID, 0, len(paths))
	for _, p := range paths {
		id, err := s.fs.Load(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Parse returns the current syntax tree for file, parsing at most once.
// Diagnostics are not collected here: the batch driver owns user-facing
// parses, the database owns handle resolution.
func (s *Snapshot) Parse(file source.FileID) *syntax.Node {
	s.mu.RLock()
	root, ok := s.parses[file]
	s.mu.RUnlock()
	if ok {
		return root
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if root, ok := s.parses[file]; ok {
		return root
	}
	root = parser.ParseFile(s.fs.Get(file), parser.Options{Reporter: diag.NopReporter{}})
	s.parses[file] = root
	return root
}

// ItemMap returns the identity map for file, assigning at most once.
// With a disk cache attached, unchanged content skips reassignment.
func (s *Snapshot) ItemMap(file source.FileID) *astid.Map {
	s.mu.RLock()
	m, ok := s.maps[file]
	s.mu.RUnlock()
	if ok {
		return m
	}

	f := s.fs.Get(file)
	if s.cache != nil {
		var payload ItemMapPayload
		if hit, err := s.cache.Get(f.Hash, &payload); err == nil && hit {
			if restored := payload.restore(file); restored != nil {
				s.mu.Lock()
				s.maps[file] = restored
				s.mu.Unlock()
				return restored
			}
		}
	}

	m = astid.FromSource(s.Parse(file))

	s.mu.Lock()
	s.maps[file] = m
	s.mu.Unlock()

	if s.cache != nil {
		// Ошибка записи кэша не мешает компиляции.
		_ = s.cache.Put(f.Hash, newItemMapPayload(m))
	}
	return m
}

var _ astid.Database = (*Snapshot)(nil)
