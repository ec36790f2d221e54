// Package carousel drives the unattended rotation of the TV display:
// a fixed-period advance through a paginated list, wrapping back to the
// first page after the last one.
package carousel

import (
	"context"
	"time"
)

// Rotation constants observed by the TV surface.
const (
	ProductPageSize  = 6
	ProductInterval  = 8 * time.Second
	CategoryPageSize = 1
	CategoryInterval = 5 * time.Second
)

// PageCount returns ceil(length/pageSize). A zero-length list has zero
// pages; callers render an empty state instead of rotating.
func PageCount(length, pageSize int) int {
	if length <= 0 || pageSize <= 0 {
		return 0
	}
	return (length + pageSize - 1) / pageSize
}

// PageBounds returns the [start, end) slice bounds of the given page.
// Page contents are a deterministic slice of the pre-sorted list.
func PageBounds(page, length, pageSize int) (int, int) {
	start := page * pageSize
	if start < 0 || start >= length {
		return 0, 0
	}
	end := start + pageSize
	if end > length {
		end = length
	}
	return start, end
}

// Controller holds the current page index for one rendering session.
// It is single-session state; each TV connection gets its own.
type Controller struct {
	length   int
	pageSize int
	interval time.Duration
	index    int
}

func New(length, pageSize int, interval time.Duration) *Controller {
	return &Controller{
		length:   length,
		pageSize: pageSize,
		interval: interval,
	}
}

func (c *Controller) Pages() int {
	return PageCount(c.length, c.pageSize)
}

func (c *Controller) Index() int {
	return c.index
}

// Bounds returns the slice bounds of the current page.
func (c *Controller) Bounds() (int, int) {
	return PageBounds(c.index, c.length, c.pageSize)
}

// Advance moves to the next page, wrapping to 0 after the last one, and
// returns the new index. With fewer than two pages it stays at 0.
func (c *Controller) Advance() int {
	pages := c.Pages()
	if pages <= 1 {
		c.index = 0
		return 0
	}
	c.index++
	if c.index >= pages {
		c.index = 0
	}
	return c.index
}

// Run advances the carousel on every interval tick until ctx is cancelled,
// calling onPage with the new index after each advance. The ticker is
// always stopped on return, so an abandoned session leaks no timer. Lists
// that fit on a single page (or are empty) never advance; Run still blocks
// until cancellation so the session lifecycle stays uniform.
func (c *Controller) Run(ctx context.Context, onPage func(page int)) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.Pages() <= 1 {
				continue
			}
			onPage(c.Advance())
		}
	}
}
