package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gota/gota/dataframe"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/storage"
)

// Pipeline runs the full load-clean-derive chain. The dashboard store and
// the poster generator both consume the table this produces.
func Pipeline(flightsPath, airlinesPath, airportsPath string, rowLimit int) (dataframe.DataFrame, error) {
	tables, err := Load(flightsPath, airlinesPath, airportsPath, rowLimit)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	clean, err := Clean(tables)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	return Derive(clean), nil
}

// Store holds the derived table for the dashboard. It is loaded once at
// startup and refreshed when the input files change on disk, which replaces
// the hosting framework's cache-and-rerender model with an explicit reload.
type Store struct {
	flightsPath  string
	airlinesPath string
	airportsPath string
	rowLimit     int
	logger       *storage.Logger

	mu         sync.RWMutex
	df         dataframe.DataFrame
	loadedAt   time.Time
	flightsMod time.Time

	watcher *fsnotify.Watcher
}

// NewStore prepares a store; call Reload before serving.
func NewStore(flightsPath, airlinesPath, airportsPath string, rowLimit int, logger *storage.Logger) *Store {
	return &Store{
		flightsPath:  flightsPath,
		airlinesPath: airlinesPath,
		airportsPath: airportsPath,
		rowLimit:     rowLimit,
		logger:       logger,
	}
}

// Reload runs the pipeline and swaps in the fresh table.
func (s *Store) Reload() error {
	df, err := Pipeline(s.flightsPath, s.airlinesPath, s.airportsPath, s.rowLimit)
	if err != nil {
		return err
	}

	mod := time.Time{}
	if info, statErr := os.Stat(s.flightsPath); statErr == nil {
		mod = info.ModTime()
	}

	s.mu.Lock()
	s.df = df
	s.loadedAt = time.Now()
	s.flightsMod = mod
	s.mu.Unlock()

	s.logf("dataset loaded: %d rows, %d columns", df.Nrow(), df.Ncol())
	return nil
}

// Frame returns the current derived table. gota frames are copied on every
// transformation, so handing out the value is safe for concurrent readers.
func (s *Store) Frame() dataframe.DataFrame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.df
}

// LoadedAt reports when the table was last refreshed.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Rows reports the current row count.
func (s *Store) Rows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.df.Nrow()
}

// Watch reloads the table whenever one of the input files is rewritten.
func (s *Store) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs := map[string]bool{}
	for _, p := range []string{s.flightsPath, s.airlinesPath, s.airportsPath} {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	s.watcher = watcher

	go s.watchLoop()
	return nil
}

func (s *Store) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !s.isInput(event.Name) {
				continue
			}
			s.logf("input file changed: %s, reloading", event.Name)
			if err := s.Reload(); err != nil {
				s.errf("reload after file change failed: %v", err)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.errf("file watcher error: %v", err)
		}
	}
}

// Close stops the file watcher.
func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// CheckStale is the poll fallback for editors and network mounts that do
// not emit fsnotify events: reload when the flights file is newer than the
// copy in memory.
func (s *Store) CheckStale() {
	info, err := os.Stat(s.flightsPath)
	if err != nil {
		return
	}

	s.mu.RLock()
	stale := info.ModTime().After(s.flightsMod)
	s.mu.RUnlock()

	if !stale {
		return
	}
	s.logf("flights file is newer than loaded table, reloading")
	if err := s.Reload(); err != nil {
		s.errf("stale reload failed: %v", err)
	}
}

func (s *Store) isInput(name string) bool {
	for _, p := range []string{s.flightsPath, s.airlinesPath, s.airportsPath} {
		if filepath.Clean(name) == filepath.Clean(p) {
			return true
		}
	}
	return false
}

func (s *Store) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Info(fmt.Sprintf(format, args...))
	}
}

func (s *Store) errf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Error(fmt.Sprintf(format, args...))
	}
}
