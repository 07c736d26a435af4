package batch

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"

	"github.com/videolab/framekit/pkg/config"
	"github.com/videolab/framekit/pkg/logger"
	"github.com/videolab/framekit/pkg/os"
)

// Watcher converts every matching frame file that appears in a
// directory. A lock file keeps concurrent watchers off the same
// directory.
type Watcher struct {
	conf    config.Convert
	dir     string
	out     string
	job     *Job
	log     *logger.Logger
	lock    *os.Flock
	watcher *fsnotify.Watcher

	// to restrict parallel execution or throttling
	mu                sync.Mutex
	isScanning        bool
	isScanningDelayed bool
}

func NewWatcher(conf config.Convert, log *logger.Logger) (*Watcher, error) {
	dir, err := filepath.Abs(conf.Watch.Dir)
	if err != nil {
		return nil, err
	}
	out := conf.Watch.OutDir
	if out == "" {
		out = dir
	} else if out, err = filepath.Abs(out); err != nil {
		return nil, err
	}
	if err := os.CheckCreateDir(out); err != nil {
		return nil, err
	}

	job, err := NewJob(conf, log)
	if err != nil {
		return nil, err
	}

	lock, err := os.NewFileLock(conf.Watch.Lock)
	if err != nil {
		return nil, err
	}
	locked, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, errors.New("the directory is already being watched")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	return &Watcher{conf: conf, dir: dir, out: out, job: job, log: log, lock: lock, watcher: w}, nil
}

// Run scans the directory once and then follows filesystem events.
func (w *Watcher) Run() error {
	w.Scan()
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
					w.Scan()
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Error().Err(err).Msg("watch")
			}
		}
	}()
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.log.Info().Msgf("watching %v", w.dir)
	return nil
}

// Scan converts every matching file in the directory that has no
// output yet. An in-flight scan delays the next one instead of
// running them in parallel.
func (w *Watcher) Scan() {
	// scan throttling
	w.mu.Lock()
	if w.isScanning {
		defer w.mu.Unlock()
		w.isScanningDelayed = true
		w.log.Debug().Msg("scan... delayed")
		return
	}
	w.isScanning = true
	w.mu.Unlock()

	w.log.Debug().Msg("scan... started")
	matches, err := filepath.Glob(filepath.Join(w.dir, w.conf.Watch.Pattern))
	if err != nil {
		w.log.Error().Err(err).Msg("scan... failed")
	}
	for _, in := range matches {
		out := w.outPath(in)
		if os.Exists(out) {
			continue
		}
		if err := w.job.File(in, out); err != nil {
			w.log.Error().Err(err).Msgf("skipped %v", in)
		}
	}

	// run scan again if delayed
	w.mu.Lock()
	defer w.mu.Unlock()
	w.isScanning = false
	if w.isScanningDelayed {
		w.isScanningDelayed = false
		go w.Scan()
	}
}

// outPath maps an input frame path to its output file name.
func (w *Watcher) outPath(in string) string {
	name := filepath.Base(in)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ".rgb"
	return filepath.Join(w.out, name)
}

// Stop ends the directory watch and releases the lock file.
func (w *Watcher) Stop() error {
	var result *multierror.Error
	result = multierror.Append(result, w.watcher.Close())
	result = multierror.Append(result, w.lock.Unlock())
	w.log.Info().Msg("the watch has ended")
	return result.ErrorOrNil()
}
