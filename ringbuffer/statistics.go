package ringbuffer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks buffer performance metrics.
type Statistics struct {
	// Atomic counters for thread-safe updates
	pushes   int64
	pops     int64
	discards int64
	peeks    int64
	rejects  int64

	// Protected by mutex
	mu        sync.RWMutex
	startTime time.Time
	length    int64
	maxLength int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Push records a buffer insert operation.
func (s *Statistics) Push() {
	atomic.AddInt64(&s.pushes, 1)
}

// Pop records a buffer consume operation.
func (s *Statistics) Pop() {
	atomic.AddInt64(&s.pops, 1)
}

// Discard records n elements dropped by a bulk discard.
func (s *Statistics) Discard(n int64) {
	atomic.AddInt64(&s.discards, n)
}

// Peek records a non-consuming view operation.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Reject records an insert refused because the buffer was full.
func (s *Statistics) Reject() {
	atomic.AddInt64(&s.rejects, 1)
}

// UpdateLength updates the current buffer length.
func (s *Statistics) UpdateLength(length int64) {
	s.mu.Lock()
	s.length = length
	if length > s.maxLength {
		s.maxLength = length
	}
	s.mu.Unlock()
}

// Pushes returns the total number of insert operations.
func (s *Statistics) Pushes() int64 {
	return atomic.LoadInt64(&s.pushes)
}

// Pops returns the total number of consume operations.
func (s *Statistics) Pops() int64 {
	return atomic.LoadInt64(&s.pops)
}

// Discards returns the total number of elements dropped by bulk discards.
func (s *Statistics) Discards() int64 {
	return atomic.LoadInt64(&s.discards)
}

// Peeks returns the total number of non-consuming views.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Rejects returns the total number of refused inserts.
func (s *Statistics) Rejects() int64 {
	return atomic.LoadInt64(&s.rejects)
}

// Length returns the current number of elements in the buffer.
func (s *Statistics) Length() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.length
}

// MaxLength returns the maximum number of elements the buffer has held.
func (s *Statistics) MaxLength() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxLength
}

// Throughput returns the average number of inserts per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	totalPushes := s.Pushes()
	return float64(totalPushes) / elapsed.Seconds()
}

// DrainThroughput returns the average number of consumed elements per second,
// counting both individual pops and bulk discards.
func (s *Statistics) DrainThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	drained := s.Pops() + s.Discards()
	return float64(drained) / elapsed.Seconds()
}

// RejectRate returns the fraction of insert attempts that were refused (0.0 to 1.0).
func (s *Statistics) RejectRate() float64 {
	pushes := s.Pushes()
	rejects := s.Rejects()

	attempts := pushes + rejects
	if attempts == 0 {
		return 0.0
	}

	return float64(rejects) / float64(attempts)
}

// Utilization returns the current buffer utilization as a percentage (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	length := s.Length()
	return float64(length) / float64(capacity)
}

// Uptime returns how long the buffer has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.pushes, 0)
	atomic.StoreInt64(&s.pops, 0)
	atomic.StoreInt64(&s.discards, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.rejects, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.length = 0
	s.maxLength = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Pushes          int64         `json:"pushes"`
	Pops            int64         `json:"pops"`
	Discards        int64         `json:"discards"`
	Peeks           int64         `json:"peeks"`
	Rejects         int64         `json:"rejects"`
	Length          int64         `json:"length"`
	MaxLength       int64         `json:"max_length"`
	Throughput      float64       `json:"throughput"`
	DrainThroughput float64       `json:"drain_throughput"`
	RejectRate      float64       `json:"reject_rate"`
	Uptime          time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Pushes:          s.Pushes(),
		Pops:            s.Pops(),
		Discards:        s.Discards(),
		Peeks:           s.Peeks(),
		Rejects:         s.Rejects(),
		Length:          s.Length(),
		MaxLength:       s.MaxLength(),
		Throughput:      s.Throughput(),
		DrainThroughput: s.DrainThroughput(),
		RejectRate:      s.RejectRate(),
		Uptime:          s.Uptime(),
	}
}
