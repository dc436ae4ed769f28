// Package counter batches news view counts in Redis and flushes them to
// the database periodically, keeping the hot read path free of writes.
package counter

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/notepress/notepress/app/repository"
	"github.com/notepress/notepress/internal/pkg/cache"
)

const newsViewsKey = "news:counters:views"

// AddNewsView increments the pending view counter for an article in Redis
func AddNewsView(newsID uint) error {
	ctx := context.Background()
	field := strconv.FormatUint(uint64(newsID), 10)
	return cache.GetClient().HIncrBy(ctx, newsViewsKey, field, 1).Err()
}

// FlushNewsViews drains the Redis hash atomically and applies the
// batched increments through the news repository. RENAME to a temporary
// key keeps in-flight increments from being lost during the drain.
func FlushNewsViews(news repository.NewsRepository) error {
	ctx := context.Background()
	rdb := cache.GetClient()

	tmpKey := fmt.Sprintf("%s:tmp:%d", newsViewsKey, time.Now().UnixNano())
	if err := rdb.Do(ctx, "RENAME", newsViewsKey, tmpKey).Err(); err != nil {
		// If the key does not exist, nothing to flush
		if strings.Contains(strings.ToLower(err.Error()), "no such key") {
			return nil
		}
		return err
	}

	pending, err := rdb.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return err
	}

	for field, value := range pending {
		id, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			continue
		}
		delta, err := strconv.ParseInt(value, 10, 64)
		if err != nil || delta == 0 {
			continue
		}
		if err := news.AddViews(uint(id), delta); err != nil {
			return err
		}
	}

	return rdb.Del(ctx, tmpKey).Err()
}

// StartFlusher flushes view counters on the given interval until the
// context is cancelled.
func StartFlusher(ctx context.Context, news repository.NewsRepository, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := FlushNewsViews(news); err != nil {
					log.Printf("view counter flush failed: %v", err)
				}
			}
		}
	}()
}
