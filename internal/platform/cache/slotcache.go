// Package cache holds a small LRU for computed day schedules. Slot
// computation walks availability windows and booked appointments, so repeat
// lookups for the same doctor, date and duration are served from memory until
// a write invalidates them.
package cache

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/medibook/medibook/internal/platform/civil"
)

type SlotCache struct {
	lru *lru.Cache[string, []civil.TimeRange]
}

// NewSlotCache builds a cache holding at most size day schedules.
func NewSlotCache(size int) (*SlotCache, error) {
	c, err := lru.New[string, []civil.TimeRange](size)
	if err != nil {
		return nil, fmt.Errorf("slot cache: %w", err)
	}
	return &SlotCache{lru: c}, nil
}

// key includes the slot duration: the same day computed on a 15 minute grid
// and a 30 minute grid are different schedules.
func key(doctorID int64, date civil.Date, durationMinutes int) string {
	return fmt.Sprintf("%d/%s/%d", doctorID, date, durationMinutes)
}

func (c *SlotCache) Get(doctorID int64, date civil.Date, durationMinutes int) ([]civil.TimeRange, bool) {
	return c.lru.Get(key(doctorID, date, durationMinutes))
}

func (c *SlotCache) Put(doctorID int64, date civil.Date, durationMinutes int, slots []civil.TimeRange) {
	c.lru.Add(key(doctorID, date, durationMinutes), slots)
}

// Invalidate drops the cached schedules for one doctor and date, at every
// duration. Called after any appointment write touching that day.
func (c *SlotCache) Invalidate(doctorID int64, date civil.Date) {
	c.removePrefix(fmt.Sprintf("%d/%s/", doctorID, date))
}

// InvalidateDoctor drops every cached day for a doctor. Used when the weekly
// schedule or an absence changes, since those affect an unbounded set of
// dates.
func (c *SlotCache) InvalidateDoctor(doctorID int64) {
	c.removePrefix(fmt.Sprintf("%d/", doctorID))
}

func (c *SlotCache) removePrefix(prefix string) {
	for _, k := range c.lru.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.lru.Remove(k)
		}
	}
}

func (c *SlotCache) Len() int { return c.lru.Len() }
