package utils

import (
	"sync"
	"time"
)

type Watch struct {
	mu        sync.RWMutex
	startTime time.Time
}

func (w *Watch) Start() {
	w.mu.Lock()
	w.startTime = time.Now()
	w.mu.Unlock()
}

func (w *Watch) Elapsed() time.Duration {
	w.mu.RLock()
	mStart := w.startTime
	w.mu.RUnlock()
	return time.Since(mStart)
}
