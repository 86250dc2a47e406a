// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Update is a settings reload result delivered by [Watch].
type Update struct {
	Settings *Settings
	Err      error
}

// Watch watches the settings file at path and sends the reloaded
// settings on the returned channel whenever it is written or
// recreated. The toolkit core is single-threaded, so the receiver
// must apply updates on its event thread. The channel is closed when
// ctx is done.
func Watch(ctx context.Context, path string) (<-chan Update, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors often replace the file, so watch the directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	target := filepath.Clean(path)
	ch := make(chan Update, 1)
	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				s, err := Open(path)
				select {
				case ch <- Update{Settings: s, Err: err}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("config.Watch", "path", path, "err", err)
			}
		}
	}()
	return ch, nil
}
