package rules

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/rbleattler/RegExRules/pattern"
)

// globalCache stores decoded sources keyed by their content hash.
var globalCache sync.Map

// state tracks the one-time decoding of a source.
type state struct {
	once     sync.Once
	patterns []*pattern.Pattern
	err      error
}

// decodeCached decodes source once per distinct content and returns the
// cached nodes on later calls.
func decodeCached(
	ctx context.Context,
	rule *Rule,
	source string,
) ([]*pattern.Pattern, error) {
	sum := xxh3.HashString(source)
	key := strconv.FormatUint(sum, 36)

	value, cacheHit := globalCache.LoadOrStore(key, new(state))

	entry, ok := value.(*state)
	if !ok {
		return nil, pattern.ErrInvalidArgument.
			With(slog.String("issue", "invalid entry type in cache"))
	}

	rule.logger.TraceContext(ctx, "cache lookup",
		slog.String("source", rule.name),
		slog.String("source_hash", strconv.FormatUint(sum, 16)),
		slog.Bool("cache_hit", cacheHit),
	)

	entry.once.Do(func() {
		entry.patterns, entry.err = decode(source)
		if entry.err != nil {
			entry.err = pattern.WrapError(entry.err).
				With(slog.Int("source_length", len(source)))
		}
	})

	if entry.err != nil {
		return nil, entry.err
	}

	return slices.Clone(entry.patterns), nil
}

// ClearCache removes all cached sources.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	globalCache.Clear()
}
