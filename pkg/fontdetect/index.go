package fontdetect

import (
	"sort"
	"strings"
	"sync"
)

// index is the case-insensitive set of known font families. Names are
// stored lower-cased; callers never see the stored form.
type index struct {
	mu         sync.Mutex
	families   map[string]struct{}
	built      bool
	generation uint64
}

// build replaces the index contents with one snapshot and bumps the
// generation.
func (ix *index) build(names []string) {
	families := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		families[name] = struct{}{}
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.families = families
	ix.built = true
	ix.generation++
}

func (ix *index) lookup(name string) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	_, ok := ix.families[strings.ToLower(name)]
	return ok
}

// invalidate clears the index; the next query forces a rebuild.
func (ix *index) invalidate() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.families = nil
	ix.built = false
}

func (ix *index) isBuilt() bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.built
}

// snapshot returns the stored (lower-cased) family names, sorted.
func (ix *index) snapshot() []string {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	names := make([]string, 0, len(ix.families))
	for name := range ix.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
