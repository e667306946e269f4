// ABOUTME: Read-through cache for the post-production overview
// ABOUTME: Composite version key, 5-minute TTL, single-flight fetches
package postprod

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/studiokit/studioctl/models"
)

// DefaultOverviewTTL bounds how long a cached overview stays fresh even
// when version keys still match.
const DefaultOverviewTTL = 5 * time.Minute

// VersionUnknown marks a version key the caller does not have; it
// matches any cached version.
const VersionUnknown = -1

// FetchFunc loads a fresh overview from the backend.
type FetchFunc func(ctx context.Context) (*models.PostProdJob, error)

// OverviewCache avoids redundant overview fetches. The validation key is
// the (photo version, video version) 2-tuple, not two separate caches: a
// bump on either stream invalidates the whole overview.
type OverviewCache struct {
	fetch FetchFunc
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	job       *models.PostProdJob
	photoVer  int
	videoVer  int
	fetchedAt time.Time

	group singleflight.Group
}

// NewOverviewCache builds a cache around fetch with the default TTL.
func NewOverviewCache(fetch FetchFunc) *OverviewCache {
	return &OverviewCache{fetch: fetch, ttl: DefaultOverviewTTL, now: time.Now}
}

// WithTTL overrides the freshness window. Zero or negative disables
// caching entirely.
func (c *OverviewCache) WithTTL(ttl time.Duration) *OverviewCache {
	c.ttl = ttl
	return c
}

// withClock substitutes the time source for tests.
func (c *OverviewCache) withClock(now func() time.Time) *OverviewCache {
	c.now = now
	return c
}

// FetchIfNeeded returns the cached overview when it is present,
// unexpired, and its stored versions match the supplied pair. Pass
// VersionUnknown for a version the caller has not observed; it matches
// whatever is cached. Concurrent callers that miss share one backend
// fetch.
func (c *OverviewCache) FetchIfNeeded(ctx context.Context, photoVer, videoVer int) (*models.PostProdJob, error) {
	c.mu.Lock()
	if c.job != nil && c.now().Sub(c.fetchedAt) < c.ttl &&
		versionMatch(photoVer, c.photoVer) && versionMatch(videoVer, c.videoVer) {
		job := c.job
		c.mu.Unlock()
		return job, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("overview", func() (interface{}, error) {
		job, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(job)
		return job, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.PostProdJob), nil
}

// ForceRefresh discards any cached overview and fetches a fresh one.
func (c *OverviewCache) ForceRefresh(ctx context.Context) (*models.PostProdJob, error) {
	c.mu.Lock()
	c.job = nil
	c.mu.Unlock()

	job, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.store(job)
	return job, nil
}

func (c *OverviewCache) store(job *models.PostProdJob) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.job = job
	c.photoVer, c.videoVer = 0, 0
	if job.Photo != nil {
		c.photoVer = job.Photo.Version
	}
	if job.Video != nil {
		c.videoVer = job.Video.Version
	}
	c.fetchedAt = c.now()
}

func versionMatch(supplied, cached int) bool {
	return supplied == VersionUnknown || supplied == cached
}
