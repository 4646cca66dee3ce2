package monitor

import (
	"sync"

	"github.com/smartparking/parkwatch/internal/render"
)

// DefaultHistorySize is the default number of samples retained per lot.
// At the default 3s interval that is five minutes.
const DefaultHistorySize = 100

// History keeps the free-space percentage of each lot across successful
// fetches, for the trend sparklines on lot cards.
type History struct {
	mu   sync.RWMutex
	size int
	lots map[string]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a new history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size: size,
		lots: make(map[string]*ringBuffer),
	}
}

// Push records one sample for every lot card. Lots without an id or with
// no capacity are skipped.
func (h *History) Push(cards []render.LotCard) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range cards {
		if c.LotID == "" || c.TotalSpaces <= 0 {
			continue
		}
		buf, ok := h.lots[c.LotID]
		if !ok {
			buf = newRingBuffer(h.size)
			h.lots[c.LotID] = buf
		}
		buf.push(FreePercent(c.Free, c.TotalSpaces))
	}
}

// Get returns up to count of the most recent samples for a lot, oldest first.
func (h *History) Get(lotID string, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.lots[lotID]
	if !ok {
		return nil
	}
	return buf.getLast(count)
}

// Count returns the number of samples stored for a lot.
func (h *History) Count(lotID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if buf, ok := h.lots[lotID]; ok {
		return buf.count
	}
	return 0
}

// FreePercent returns free/total as a 0-100 percentage, clamped.
func FreePercent(free, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(free) * 100 / float64(total)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// newRingBuffer creates a new ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is at head-1
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}
