package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/emrgen/wikt/internal/compress"
	"github.com/emrgen/wikt/internal/entry"
	redis "github.com/redis/go-redis/v9"
)

func pageTitleKey(title string) string {
	return "wikt:page:title:" + title
}

func pageIDKey(id int64) string {
	return "wikt:page:id:" + strconv.FormatInt(id, 10)
}

var _ entry.PageCache = (*RedisPageCache)(nil)

// RedisPageCache stores assembled pages as compressed json under their title.
// The id key holds the title only.
type RedisPageCache struct {
	client  *redis.Client
	encoder compress.Compress
	ttl     time.Duration
}

// NewRedisClient connects to a redis server.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		Protocol: 2, // Connection protocol
	})
}

func NewRedisPageCache(client *redis.Client, encoder compress.Compress, ttl time.Duration) *RedisPageCache {
	if encoder == nil {
		encoder = compress.NewNop()
	}

	return &RedisPageCache{client: client, encoder: encoder, ttl: ttl}
}

func (r *RedisPageCache) GetByTitle(ctx context.Context, title string) (*entry.Page, bool, error) {
	res := r.client.Get(ctx, pageTitleKey(title))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return nil, false, nil
		}
		return nil, false, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return nil, false, err
	}

	data, err := r.encoder.Decode(buf)
	if err != nil {
		return nil, false, err
	}

	page := &entry.Page{}
	if err := json.Unmarshal(data, page); err != nil {
		return nil, false, err
	}

	return page, true, nil
}

func (r *RedisPageCache) GetByID(ctx context.Context, id int64) (*entry.Page, bool, error) {
	res := r.client.Get(ctx, pageIDKey(id))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return nil, false, nil
		}
		return nil, false, res.Err()
	}

	page, ok, err := r.GetByTitle(ctx, res.Val())
	if err != nil || !ok {
		return nil, false, err
	}
	// the title key may have been replaced by a different page
	if page.ID != id {
		return nil, false, nil
	}

	return page, true, nil
}

func (r *RedisPageCache) Set(ctx context.Context, page *entry.Page) error {
	marshal, err := json.Marshal(page)
	if err != nil {
		return err
	}

	data, err := r.encoder.Encode(marshal)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if err := p.Set(ctx, pageTitleKey(page.Title), data, r.ttl).Err(); err != nil {
			return err
		}

		if err := p.Set(ctx, pageIDKey(page.ID), page.Title, r.ttl).Err(); err != nil {
			return err
		}

		return nil
	})

	return err
}

func (r *RedisPageCache) Delete(ctx context.Context, id int64, title string) error {
	keys := []string{pageTitleKey(title)}
	if id > 0 {
		keys = append(keys, pageIDKey(id))
	}

	return r.client.Del(ctx, keys...).Err()
}
