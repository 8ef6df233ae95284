package stream

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks per-stream counters. Always initialized; metrics
// export is optional but accounting is not.
type Statistics struct {
	// Atomic counters for thread-safe updates
	writes      int64
	reads       int64
	overflows   int64
	rejects     int64
	asyncWrites int64
	timeouts    int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Write records one admitted element.
func (s *Statistics) Write() {
	atomic.AddInt64(&s.writes, 1)
}

// Read records one consumed element.
func (s *Statistics) Read() {
	atomic.AddInt64(&s.reads, 1)
}

// Overflow records a write rejected for lack of free buffer space.
func (s *Statistics) Overflow() {
	atomic.AddInt64(&s.overflows, 1)
}

// Reject records a write rejected by element validation or the
// lifecycle state machine.
func (s *Statistics) Reject() {
	atomic.AddInt64(&s.rejects, 1)
}

// AsyncWrite records the start of an asynchronous write.
func (s *Statistics) AsyncWrite() {
	atomic.AddInt64(&s.asyncWrites, 1)
}

// Timeout records an asynchronous write that missed its deadline.
func (s *Statistics) Timeout() {
	atomic.AddInt64(&s.timeouts, 1)
}

// UpdateSize updates the current buffer size.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Writes returns the total number of admitted elements.
func (s *Statistics) Writes() int64 {
	return atomic.LoadInt64(&s.writes)
}

// Reads returns the total number of consumed elements.
func (s *Statistics) Reads() int64 {
	return atomic.LoadInt64(&s.reads)
}

// Overflows returns the total number of overflow rejections.
func (s *Statistics) Overflows() int64 {
	return atomic.LoadInt64(&s.overflows)
}

// Rejects returns the total number of validation/state rejections.
func (s *Statistics) Rejects() int64 {
	return atomic.LoadInt64(&s.rejects)
}

// AsyncWrites returns the total number of asynchronous writes started.
func (s *Statistics) AsyncWrites() int64 {
	return atomic.LoadInt64(&s.asyncWrites)
}

// Timeouts returns the total number of asynchronous write timeouts.
func (s *Statistics) Timeouts() int64 {
	return atomic.LoadInt64(&s.timeouts)
}

// CurrentSize returns the current number of buffered elements.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the high-water mark of the buffer.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Throughput returns the average number of admitted elements per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}
	return float64(s.Writes()) / elapsed.Seconds()
}

// ReadThroughput returns the average number of consumed elements per second.
func (s *Statistics) ReadThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}
	return float64(s.Reads()) / elapsed.Seconds()
}

// OverflowRate returns the fraction of write attempts that overflowed
// (0.0 to 1.0).
func (s *Statistics) OverflowRate() float64 {
	writes := s.Writes()
	overflows := s.Overflows()

	attempts := writes + overflows
	if attempts == 0 {
		return 0.0
	}
	return float64(overflows) / float64(attempts)
}

// Uptime returns how long the stream has existed.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Writes         int64         `json:"writes"`
	Reads          int64         `json:"reads"`
	Overflows      int64         `json:"overflows"`
	Rejects        int64         `json:"rejects"`
	AsyncWrites    int64         `json:"async_writes"`
	Timeouts       int64         `json:"timeouts"`
	CurrentSize    int64         `json:"current_size"`
	MaxSize        int64         `json:"max_size"`
	Throughput     float64       `json:"throughput"`
	ReadThroughput float64       `json:"read_throughput"`
	Uptime         time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Writes:         s.Writes(),
		Reads:          s.Reads(),
		Overflows:      s.Overflows(),
		Rejects:        s.Rejects(),
		AsyncWrites:    s.AsyncWrites(),
		Timeouts:       s.Timeouts(),
		CurrentSize:    s.CurrentSize(),
		MaxSize:        s.MaxSize(),
		Throughput:     s.Throughput(),
		ReadThroughput: s.ReadThroughput(),
		Uptime:         s.Uptime(),
	}
}
