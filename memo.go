package rounded

import (
	"image"

	"github.com/gogpu/rounded/cache"
)

// Memo caches the bitmaps produced by transformations, keyed by the
// caller's source key and the transformation key. It is safe for use from
// several goroutines, such as the workers of an image pipeline.
type Memo struct {
	c *cache.Sharded[string, *image.RGBA]
}

// NewMemo returns a memo holding at most budget bytes of pixels. If
// budget <= 0, cache.DefaultBudget is used.
func NewMemo(budget int64) *Memo {
	return &Memo{c: cache.NewSharded[string, *image.RGBA](budget, cache.StringHasher, cache.RGBASize)}
}

// MemoKey returns the cache key for sourceKey transformed by t.
func MemoKey(sourceKey string, t *Transformation) string {
	return sourceKey + "|" + t.Key()
}

// Transform returns the cached result of t applied to the image known as
// sourceKey, transforming img on a miss. Errors are not cached.
//
// The returned bitmap is shared between callers and must not be modified.
func (m *Memo) Transform(sourceKey string, img image.Image, t *Transformation) (*image.RGBA, error) {
	key := MemoKey(sourceKey, t)
	return m.c.GetOrCreate(key, func() (*image.RGBA, error) {
		Logger().Debug("rounded: memo miss", "key", key)
		return t.Transform(img)
	})
}

// Len returns the number of cached bitmaps.
func (m *Memo) Len() int { return m.c.Len() }

// Stats returns the underlying cache statistics.
func (m *Memo) Stats() cache.Stats { return m.c.Stats() }

// Clear drops every cached bitmap.
func (m *Memo) Clear() { m.c.Clear() }
