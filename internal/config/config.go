package config

import (
	"sync"
)

// RuntimeSettings holds settings that can change while the client runs
type RuntimeSettings struct {
	mu         sync.RWMutex
	fpsLimit   int // 0 means unlimited
	frameStats bool
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 144, // default value
}

// GetFPSLimit returns the frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values mean uncapped.
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetFrameStats reports whether per-second frame stats are logged
func GetFrameStats() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.frameStats
}

// ToggleFrameStats flips frame stats logging and returns the new value
func ToggleFrameStats() bool {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.frameStats = !globalRuntimeSettings.frameStats
	return globalRuntimeSettings.frameStats
}
