package calendar

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_MarkAndRollback(t *testing.T) {
	overlay := NewOverlay()
	slot := slotAt(3, 10, 0)

	rollback := overlay.MarkBlocked(slot)
	assert.True(t, overlay.IsBlocked(slot))
	assert.Equal(t, 1, overlay.Len())

	rollback()
	assert.False(t, overlay.IsBlocked(slot))
	assert.Zero(t, overlay.Len())
}

func TestOverlay_OppositeMarksAreExclusive(t *testing.T) {
	overlay := NewOverlay()
	slot := slotAt(3, 10, 0)

	overlay.MarkBlocked(slot)
	rollback := overlay.MarkUnblocked(slot)

	assert.True(t, overlay.IsUnblocked(slot))
	assert.False(t, overlay.IsBlocked(slot))

	rollback()
	assert.True(t, overlay.IsBlocked(slot))
	assert.False(t, overlay.IsUnblocked(slot))
}

func TestOverlay_Reset(t *testing.T) {
	overlay := NewOverlay()
	overlay.MarkBlocked(slotAt(3, 10, 0))
	overlay.MarkUnblocked(slotAt(3, 11, 0))

	overlay.Reset()
	assert.Zero(t, overlay.Len())
}

func TestOverlay_NilIsEmpty(t *testing.T) {
	var overlay *Overlay

	assert.False(t, overlay.IsBlocked(slotAt(3, 10, 0)))
	assert.False(t, overlay.IsUnblocked(slotAt(3, 10, 0)))
	assert.Zero(t, overlay.Len())
}

func TestOverlay_Concurrent(t *testing.T) {
	overlay := NewOverlay()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slot := slotAt(3, 8+i/2, (i%2)*30)
			rollback := overlay.MarkBlocked(slot)
			_ = overlay.IsBlocked(slot)
			if i%2 == 0 {
				rollback()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, overlay.Len())
}
