package commands

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/barukai/CppSharp/internal/dev"
)

// debounceDelay coalesces editor save bursts into one regeneration.
const debounceDelay = 300 * time.Millisecond

// Watch runs an initial generation pass and regenerates whenever a watched
// project input changes.
func (c *Controller) Watch(ctx context.Context) error {
	cfg, root, err := c.loadConfig()
	if err != nil {
		return err
	}

	if err := c.runGeneration(); err != nil {
		// Keep watching: the next edit may fix the input.
		c.Logger.Error().Err(err).Msg("initial generation failed")
	}

	var mu sync.Mutex
	var pending *time.Timer

	watcher, err := dev.NewFileWatcher(cfg.Watch.Patterns, cfg.Watch.Exclude, c.Logger, func(path string, op fsnotify.Op) {
		c.Logger.Debug().Str("path", path).Stringer("op", op).Msg("input changed")

		mu.Lock()
		defer mu.Unlock()
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(debounceDelay, func() {
			if err := c.runGeneration(); err != nil {
				c.Logger.Error().Err(err).Msg("regeneration failed")
			}
		})
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.AddDirectory(root); err != nil {
		return err
	}

	c.Logger.Info().Str("root", root).Msg("watching for changes")
	return watcher.Start(ctx)
}
