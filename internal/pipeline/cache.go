package pipeline

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/graphlang/codeindex/internal/identity"
	"github.com/graphlang/codeindex/internal/model"
)

// cacheKey identifies one parsed-file cache entry by path and content
// checksum, so an edit to a file invalidates its entry without needing to
// evict by path alone (a rename-then-revert would otherwise hit a stale
// checksum under the old key).
type cacheKey struct {
	path     string
	checksum string
}

// parseCache is a bounded LRU of parsed files. Run builds a new one on every
// call, so entries do not carry over from one run to the next.
type parseCache struct {
	lru *lru.Cache[cacheKey, *model.ParsedFile]
}

func newParseCache(capacity int) *parseCache {
	if capacity <= 0 {
		return &parseCache{}
	}
	c, err := lru.New[cacheKey, *model.ParsedFile](capacity)
	if err != nil {
		return &parseCache{}
	}
	return &parseCache{lru: c}
}

func (c *parseCache) get(path string, content []byte) (*model.ParsedFile, bool) {
	if c.lru == nil {
		return nil, false
	}
	return c.lru.Get(cacheKey{path: path, checksum: identity.ChecksumOf(content)})
}

func (c *parseCache) put(path string, content []byte, pf *model.ParsedFile) {
	if c.lru == nil {
		return
	}
	c.lru.Add(cacheKey{path: path, checksum: identity.ChecksumOf(content)}, pf)
}
