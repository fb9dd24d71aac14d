// agent/marketplace.go
package agent

import (
	"sync"
	"time"
)

// Marketplace holds the token sale terms and the running sales counter.
// The counter is mutated only by the acquirer that owns this struct, under
// the mutex.
type Marketplace struct {
	mu            sync.Mutex
	priceMicro    uint64
	tokenDuration time.Duration
	sinkAddress   string
	totalSales    uint64
}

func NewMarketplace(priceMicro uint64, tokenDuration time.Duration, sinkAddress string) *Marketplace {
	return &Marketplace{
		priceMicro:    priceMicro,
		tokenDuration: tokenDuration,
		sinkAddress:   sinkAddress,
	}
}

// PriceMicro is the current token price in microunits.
func (m *Marketplace) PriceMicro() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.priceMicro
}

// TokenDuration is the advertised credential validity window.
func (m *Marketplace) TokenDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokenDuration
}

// SinkAddress is the settlement destination for purchases.
func (m *Marketplace) SinkAddress() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sinkAddress
}

// RecordSale increments and returns the sales counter.
func (m *Marketplace) RecordSale() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalSales++
	return m.totalSales
}

// TotalSales returns the number of recorded sales.
func (m *Marketplace) TotalSales() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalSales
}
