package main

import "flag"

// Command-line flags for assets, runtime settings, overlays and profiling.
var (
	// settingsFlag names the TOML file holding progress and distortion_amount.
	// The file is watched and reloaded while the effect runs.
	settingsFlag = flag.String("settings", "settings.toml", "path to the live settings file (TOML)")

	// writeSettingsFlag prints a starter settings file and exits.
	writeSettingsFlag = flag.Bool("write-settings", false, "print default settings as TOML and exit")

	// brushFlag and textureFlag select image assets; empty uses generated images.
	brushFlag   = flag.String("brush", "", "brush stroke sprite image (png, jpeg, gif, bmp, webp)")
	textureFlag = flag.String("texture", "", "base texture image distorted by the strokes")

	// debugFlag enables the FPS and wave pool overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and wave pool overlay")

	logLevelFlag = flag.String("log-level", "info", "log level: debug, info, warn, error")

	// logFileFlag appends log output to a file instead of stderr.
	logFileFlag = flag.String("log-file", "", "append logs to this file instead of stderr")

	// gpuDecayFlag runs the per-frame wave decay through OpenCL.
	gpuDecayFlag = flag.Bool("gpu-decay", false, "run wave decay on an OpenCL device (build with -tags opencl)")

	// autopilotFlag drives the pointer along a scripted path for the given time.
	autopilotFlag = flag.Duration("autopilot", 0, "move the pointer automatically for this long (e.g. 30s)")

	// recordDefaultPGO triggers a scripted run to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "run the autopilot for 15s while capturing default.pgo, then exit")

	fullscreenFlag = flag.Bool("fullscreen", false, "start in fullscreen mode")
)
