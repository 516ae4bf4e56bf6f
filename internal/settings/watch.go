package settings

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/Distortions81/brush-displace/internal/logging"
)

// Watch reloads path whenever it is written and submits the result to p. The
// parent directory is watched so editors that replace the file still trigger
// a reload. Watch returns once the watcher is running; it stops with ctx.
func Watch(ctx context.Context, path string, p *Panel) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating settings watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("watching %q: %w", filepath.Dir(abs), err)
	}
	go watchLoop(ctx, w, abs, p)
	return nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, p *Panel) {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			v, err := Load(path)
			if err != nil {
				logging.Warn("settings reload ignored: %v", err)
				continue
			}
			logging.Debug("settings reloaded: progress=%.2f distortion=%.3f", v.Progress, v.DistortionAmount)
			p.Submit(v)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logging.Error("settings watcher: %v", err)
		}
	}
}
