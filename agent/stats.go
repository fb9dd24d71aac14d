// agent/stats.go
package agent

import "sync"

// Stats are the agent's running counters. Owned by one Client instance;
// never reset except at process restart.
type Stats struct {
	mu                 sync.Mutex
	requestsIssued     int
	successfulRequests int
	tokensPurchased    int
	acquireFailures    int
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	RequestsIssued     int
	SuccessfulRequests int
	TokensPurchased    int
	AcquireFailures    int
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) recordRequest(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestsIssued++
	if success {
		s.successfulRequests++
	}
}

func (s *Stats) recordAcquisition(confirmed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if confirmed {
		s.tokensPurchased++
	} else {
		s.acquireFailures++
	}
}

// Snapshot returns a copy of the current counters.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		RequestsIssued:     s.requestsIssued,
		SuccessfulRequests: s.successfulRequests,
		TokensPurchased:    s.tokensPurchased,
		AcquireFailures:    s.acquireFailures,
	}
}

// AcquisitionAttempts is the total number of acquisition attempts,
// confirmed or not.
func (s Snapshot) AcquisitionAttempts() int {
	return s.TokensPurchased + s.AcquireFailures
}

// SuccessRate is the fraction of requests that were granted, in percent.
func (s Snapshot) SuccessRate() float64 {
	if s.RequestsIssued == 0 {
		return 0
	}
	return float64(s.SuccessfulRequests) / float64(s.RequestsIssued) * 100
}
