package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Distortions81/brush-displace/internal/logging"
	"github.com/Distortions81/brush-displace/internal/settings"
)

func main() {
	flag.Parse()
	if err := logging.SetLevel(*logLevelFlag); err != nil {
		logging.Warn("invalid -log-level %q: %v", *logLevelFlag, err)
	}
	if *logFileFlag != "" {
		f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logging.Fatal("opening log file: %v", err)
		}
		defer f.Close()
		logging.SetOutput(f)
	}

	if *writeSettingsFlag {
		data, err := settings.Encode(settings.Defaults())
		if err != nil {
			logging.Fatal("encoding settings: %v", err)
		}
		fmt.Fprint(os.Stdout, string(data))
		return
	}

	values, err := settings.Load(*settingsFlag)
	if err != nil {
		logging.Warn("using default settings: %v", err)
	}
	panel := settings.NewPanel(values)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, statErr := os.Stat(*settingsFlag); statErr == nil {
		if err := settings.Watch(ctx, *settingsFlag, panel); err != nil {
			logging.Warn("live settings reload disabled: %v", err)
		}
	}

	g, err := newGame(panel)
	if err != nil {
		logging.Fatal("initializing renderer: %v", err)
	}
	defer g.close()

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording(pgoProfilePath)
		if err != nil {
			logging.Fatal("PGO recording: %v", err)
		}
		g.stopProfile = stop
		g.enableAutopilot(pgoRecordDuration)
	} else if *autopilotFlag > 0 {
		g.enableAutopilot(*autopilotFlag)
	}

	logging.Info("starting run %s", logging.RunID())
	ebiten.SetWindowSize(defaultWindowW, defaultWindowH)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreenFlag)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if err := ebiten.RunGame(g); err != nil {
		g.close()
		logging.Fatal("rendering surface unavailable: %v", err)
	}
}
