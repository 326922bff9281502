package utils

import (
	"sync"
	"time"
)

// Stats for performance monitoring. Safe to read from a reporter goroutine
// while the game loop updates it.
type Stats struct {
	mu sync.Mutex

	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Restarts             int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// RecordRestart counts an automatic restart
func (s *Stats) RecordRestart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Restarts++
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Restarts             int
	Runtime              time.Duration
}

// Snapshot copies the current values
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		GenerationsPerSecond: s.GenerationsPerSecond,
		AveragePopulation:    s.AveragePopulation,
		TotalGenerations:     s.TotalGenerations,
		Restarts:             s.Restarts,
		Runtime:              time.Since(s.StartTime),
	}
}
