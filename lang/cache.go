package lang

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/spiral/lang/token"
	"github.com/ardnew/spiral/log"
)

// scanCache maps the xxh3 hash of a source text to its *entry.
var (
	scanCache sync.Map
	cacheSize atomic.Int64
)

// entry is the scan result for one source text. The first caller scans;
// concurrent callers for the same text wait on once.
type entry struct {
	once   sync.Once
	source string
	tokens []token.Token
	err    error
}

// cached returns the tokens of source, calling scan at most once per source
// text. Callers receive their own copy of the token slice.
func cached(
	ctx context.Context,
	logger log.Logger,
	source string,
	scan func() ([]token.Token, error),
) ([]token.Token, error) {
	hash := xxh3.HashString(source)
	key := strconv.FormatUint(hash, 36)

	value, hit := scanCache.LoadOrStore(key, &entry{source: source})

	e, ok := value.(*entry)
	if !ok || e.source != source {
		// Hash collision or foreign value; do not share.
		logger.TraceContext(ctx, "cache collision", slog.String("key", key))

		return scan()
	}

	if !hit {
		cacheSize.Add(1)
	}

	logger.TraceContext(ctx, "cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit))

	e.once.Do(func() { e.tokens, e.err = scan() })

	if e.err != nil {
		return nil, e.err
	}

	return slices.Clone(e.tokens), nil
}

// CacheLen returns the number of source texts in the cache.
func CacheLen() int { return int(cacheSize.Load()) }

// ClearCache removes every cached scan result.
func ClearCache() {
	scanCache.Range(func(key, _ any) bool {
		if _, loaded := scanCache.LoadAndDelete(key); loaded {
			cacheSize.Add(-1)
		}

		return true
	})
}
