package carousel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		length, pageSize, want int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{5, 1, 5},
		{10, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.length, tt.pageSize),
			"PageCount(%d, %d)", tt.length, tt.pageSize)
	}
}

func TestPageBoundsSlicesDeterministically(t *testing.T) {
	// 13 products, 6 per page: pages of 6, 6 and 1.
	start, end := PageBounds(0, 13, 6)
	assert.Equal(t, 0, start)
	assert.Equal(t, 6, end)

	start, end = PageBounds(1, 13, 6)
	assert.Equal(t, 6, start)
	assert.Equal(t, 12, end)

	start, end = PageBounds(2, 13, 6)
	assert.Equal(t, 12, start)
	assert.Equal(t, 13, end)

	// Out of range pages collapse to an empty slice.
	start, end = PageBounds(3, 13, 6)
	assert.Equal(t, start, end)
}

func TestAdvanceWrapsAroundAfterLastPage(t *testing.T) {
	c := New(13, 6, time.Second)
	assert.Equal(t, 3, c.Pages())
	assert.Equal(t, 0, c.Index())

	assert.Equal(t, 1, c.Advance())
	assert.Equal(t, 2, c.Advance())
	assert.Equal(t, 0, c.Advance()) // back to the first page
}

func TestAdvanceSinglePageStaysPut(t *testing.T) {
	c := New(4, 6, time.Second)
	assert.Equal(t, 1, c.Pages())
	assert.Equal(t, 0, c.Advance())
	assert.Equal(t, 0, c.Advance())
}

func TestEmptyListNeverAdvances(t *testing.T) {
	c := New(0, 6, time.Millisecond)
	assert.Equal(t, 0, c.Pages())

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	calls := 0
	c.Run(ctx, func(int) { calls++ })
	assert.Equal(t, 0, calls)
}

func TestRunAdvancesAndStopsOnCancel(t *testing.T) {
	c := New(13, 6, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	pages := make(chan int, 16)

	done := make(chan struct{})
	go func() {
		c.Run(ctx, func(page int) { pages <- page })
		close(done)
	}()

	// First tick advances 0 -> 1.
	select {
	case page := <-pages:
		assert.Equal(t, 1, page)
	case <-time.After(time.Second):
		t.Fatal("carousel never advanced")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
