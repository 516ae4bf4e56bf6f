package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"

	"github.com/Distortions81/brush-displace/internal/logging"
)

// startDefaultPGORecording begins writing a CPU profile to path. The returned
// stop func is idempotent.
func startDefaultPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	logging.Info("recording CPU profile to %s", path)
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				logging.Error("closing profile %s: %v", path, err)
				return
			}
			logging.Info("wrote %s", path)
		})
	}
	return stop, nil
}
