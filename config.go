package main

import "time"

// Window, overlay and scripted-input constants for the brush displacement
// effect. Wave decay and spawn constants live in internal/wave and
// internal/pointer.
const (
	defaultWindowW     = 1280
	defaultWindowH     = 800
	maxPixelRatio      = 2.0
	brushFallbackSize  = 128
	textureFallbackPx  = 512
	panelFastSteps     = 10
	autopilotSpeed     = 9.0
	autopilotMinFrames = 20
	autopilotMaxFrames = 70
	pgoRecordDuration  = 15 * time.Second
	pgoProfilePath     = "default.pgo"
	windowTitle        = "Brush Displacement"
)
