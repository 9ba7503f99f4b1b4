package service

import (
	"sync"

	"github.com/okian/pressdetective/internal/domain/model"
)

// statsCounter aggregates successful analysis scores.
type statsCounter struct {
	mu    sync.Mutex
	total int
	sum   float64
	max   float64
}

func (c *statsCounter) record(score float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.total == 0 || score > c.max {
		c.max = score
	}
	c.total++
	c.sum += score
}

func (c *statsCounter) snapshot() model.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.total == 0 {
		return model.Stats{}
	}
	return model.Stats{
		Total:   c.total,
		Average: c.sum / float64(c.total),
		Max:     c.max,
	}
}
