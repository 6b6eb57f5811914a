package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hbv501g/forumapp/internal/streamx"
)

// MembershipCache is the in-memory set of communities the user has marked as
// joined on this device. It is purely client-local: nothing here is persisted
// or reconciled with server-side membership. Names compare case-insensitively
// but keep their first-seen casing. Cleared on logout.
type MembershipCache struct {
	mu sync.Mutex
	// canonical (trimmed, lowercased) name -> first-seen casing
	names map[string]string
	hub   *streamx.Hub[[]string]
}

func NewMembershipCache() *MembershipCache {
	return &MembershipCache{
		names: make(map[string]string),
		hub:   streamx.NewHub([]string{}),
	}
}

// SetJoined inserts or removes name. A blank name is a no-op. Joining a
// community already present under a different casing changes nothing.
func (c *MembershipCache) SetJoined(name string, joined bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	key := strings.ToLower(trimmed)

	c.mu.Lock()
	if joined {
		if _, ok := c.names[key]; !ok {
			c.names[key] = trimmed
		}
	} else {
		delete(c.names, key)
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.hub.Publish(snapshot)
}

// Toggle flips membership of name, matching case-insensitively.
func (c *MembershipCache) Toggle(name string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	c.SetJoined(trimmed, !c.IsJoined(trimmed))
}

// IsJoined reports whether name is in the set, matching case-insensitively.
func (c *MembershipCache) IsJoined(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))

	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.names[key]
	return ok
}

// Snapshot returns the joined communities in their first-seen casing,
// ordered case-insensitively.
func (c *MembershipCache) Snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Clear empties the set; invoked on logout.
func (c *MembershipCache) Clear() {
	c.mu.Lock()
	c.names = make(map[string]string)
	c.mu.Unlock()

	c.hub.Publish([]string{})
}

// Watch returns a live stream of membership snapshots. The current set is
// replayed on subscription; the channel closes when ctx is done.
func (c *MembershipCache) Watch(ctx context.Context) <-chan []string {
	return c.hub.Subscribe(ctx)
}

func (c *MembershipCache) snapshotLocked() []string {
	out := make([]string, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
