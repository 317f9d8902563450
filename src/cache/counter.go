package cache

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ironsmile/lyricount/src/music"
)

// WordCounter counts the words in the lyrics of a single song.
type WordCounter interface {
	CountWords(ctx context.Context, artist, title string) music.WordCount
}

// Counter is a WordCounter which remembers present counts in a Cache. Absent
// counts are never stored so that songs which get lyrics later are retried.
type Counter struct {
	cache *Cache
	next  WordCounter
}

// Wrap returns a Counter which asks `next` for counts not found in the cache.
func (c *Cache) Wrap(next WordCounter) *Counter {
	return &Counter{
		cache: c,
		next:  next,
	}
}

// CountWords implements WordCounter. Problems with the cache are logged and
// otherwise ignored.
func (cc *Counter) CountWords(ctx context.Context, artist, title string) music.WordCount {
	words, found, err := cc.cache.Get(ctx, artist, title)
	if err != nil {
		cc.logFailure("reading cache", err)
	} else if found {
		return music.Found(title, words)
	}

	count := cc.next.CountWords(ctx, artist, title)
	if !count.Present {
		return count
	}

	if err := cc.cache.Put(ctx, artist, title, count.Words); err != nil {
		cc.logFailure("writing cache", err)
	}

	return count
}

func (cc *Counter) logFailure(msg string, err error) {
	if errors.Is(err, context.Canceled) {
		cc.cache.logger.Debug(msg, zap.Error(err))
		return
	}
	cc.cache.logger.Warn(msg, zap.Error(err))
}
