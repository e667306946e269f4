// ABOUTME: Live stream-state subscription over server-sent events
// ABOUTME: De-duplicates snapshot versions and reconnects with backoff
package live

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/oauth2"

	"github.com/studiokit/studioctl/models"
	"github.com/studiokit/studioctl/postprod"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Options configures one stream subscription.
type Options struct {
	BaseURL string
	OrgID   string
	EventID string
	Stream  models.StreamKind

	// Creds is optional; when set a bearer token is attached to the
	// subscription request.
	Creds oauth2.TokenSource

	// OnSnapshot receives every decoded snapshot, duplicates included.
	OnSnapshot func(models.StreamSnapshot)

	// OnVersion fires exactly once per strictly increasing positive
	// version observed across the subscription's lifetime, including
	// across reconnects.
	OnVersion func(version int)

	// Logf defaults to log.Printf.
	Logf func(format string, args ...interface{})
}

// Path returns the live-channel document path for the subscription.
func (o *Options) Path() string {
	return fmt.Sprintf("/organizations/%s/postprod-live/%s/streams/%s", o.OrgID, o.EventID, o.Stream)
}

// Subscription is a running listener on one stream's live document.
type Subscription struct {
	opts      Options
	client    *http.Client
	tracker   *postprod.VersionTracker
	delivered atomic.Bool
	done      chan struct{}
}

// Subscribe opens the listener and keeps it open until ctx is canceled,
// reconnecting with exponential backoff and jitter on any failure.
func Subscribe(ctx context.Context, opts Options) *Subscription {
	if opts.Logf == nil {
		opts.Logf = log.Printf
	}
	s := &Subscription{
		opts: opts,
		// No overall timeout: the event stream is long-lived.
		client:  &http.Client{},
		tracker: postprod.NewVersionTracker(),
		done:    make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

// Done is closed once the subscription has fully stopped.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// LastVersion returns the highest version observed so far.
func (s *Subscription) LastVersion() int {
	return s.tracker.Last()
}

func (s *Subscription) run(ctx context.Context) {
	defer close(s.done)

	backoff := initialBackoff
	for {
		s.delivered.Store(false)
		err := s.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		if s.delivered.Load() {
			// The connection worked before breaking; start the backoff
			// window over instead of compounding across healthy sessions.
			backoff = initialBackoff
		}
		if err != nil {
			s.opts.Logf("live: %s listener error: %v (reconnecting in %s)", s.opts.Stream, err, backoff)
		}

		// Jittered sleep before reconnecting.
		delay := backoff + time.Duration(rand.Int63n(int64(backoff/2)+1))
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// listen opens one SSE connection and consumes it until it breaks.
func (s *Subscription) listen(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(s.opts.BaseURL, "/")+s.opts.Path(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if s.opts.Creds != nil {
		token, err := s.opts.Creds.Token()
		if err != nil {
			return fmt.Errorf("failed to obtain access token: %w", err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("live channel returned %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var data strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "data:"):
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		case line == "":
			if data.Len() > 0 {
				s.dispatch(data.String())
				data.Reset()
			}
		}
		// Comment and event-name lines are ignored.
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return fmt.Errorf("live channel closed")
}

func (s *Subscription) dispatch(payload string) {
	s.delivered.Store(true)
	var snap models.StreamSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		s.opts.Logf("live: %s snapshot decode failed: %v", s.opts.Stream, err)
		return
	}
	if s.opts.OnSnapshot != nil {
		s.opts.OnSnapshot(snap)
	}
	if s.tracker.Observe(snap.Version) && s.opts.OnVersion != nil {
		s.opts.OnVersion(snap.Version)
	}
}
