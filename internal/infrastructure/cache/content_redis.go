package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/waste3d/course-admin/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ContentCache keeps reconstructed course content per project slug.
//
// Entries are stored under the slug's current generation. Invalidate
// bumps the generation, so a load that read the store before a write can
// only fill a key no reader looks at anymore. A write to any content row
// of the project must call Invalidate.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewContentCache(client *redis.Client, ttl time.Duration) *ContentCache {
	return &ContentCache{client: client, ttl: ttl}
}

func generationKey(slug string) string {
	return "course:content:gen:" + slug
}

func contentKey(slug string, gen int64) string {
	return fmt.Sprintf("course:content:%s:%d", slug, gen)
}

// Generation returns the slug's current generation, 0 if never invalidated.
func (c *ContentCache) Generation(ctx context.Context, slug string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(slug)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get reports a miss for absent, expired or undecodable entries; only
// transport failures come back as errors.
func (c *ContentCache) Get(ctx context.Context, slug string, gen int64) (*domain.CourseContent, bool, error) {
	val, err := c.client.Get(ctx, contentKey(slug, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var content domain.CourseContent
	if json.Unmarshal(val, &content) != nil {
		return nil, false, nil
	}
	return &content, true, nil
}

// Set stores content built from a store read made at generation gen.
func (c *ContentCache) Set(ctx context.Context, slug string, gen int64, content *domain.CourseContent) error {
	data, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, contentKey(slug, gen), data, c.ttl).Err()
}

// Invalidate moves the slug to a new generation and drops the entry of
// the one it replaces. Entries of older generations expire with their TTL.
func (c *ContentCache) Invalidate(ctx context.Context, slug string) error {
	gen, err := c.client.Incr(ctx, generationKey(slug)).Result()
	if err != nil {
		return err
	}
	return c.client.Del(ctx, contentKey(slug, gen-1)).Err()
}
