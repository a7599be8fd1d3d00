package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DynamicConfig represents the runtime-changeable limits loaded from a YAML
// overlay file. Everything here has a working default, so running without an
// overlay file is the normal case.
type DynamicConfig struct {
	Limits   Limits   `yaml:"limits"`
	Metadata Metadata `yaml:"metadata"`
}

// Limits holds application limits
type Limits struct {
	MaxProjectNameLength int `yaml:"maxProjectNameLength"`
	MaxContentBytes      int `yaml:"maxContentBytes"`
	MaxListPageSize      int `yaml:"maxListPageSize"`
}

// Metadata holds metadata about the overlay file
type Metadata struct {
	Version   string    `yaml:"version"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

// DefaultDynamicConfig returns the limits used when no overlay file is set
func DefaultDynamicConfig() *DynamicConfig {
	return &DynamicConfig{
		Limits: Limits{
			MaxProjectNameLength: 255,
			MaxContentBytes:      1 << 20,
			MaxListPageSize:      100,
		},
		Metadata: Metadata{Version: "defaults"},
	}
}

func (c *DynamicConfig) validate() error {
	if c.Limits.MaxProjectNameLength <= 0 {
		return fmt.Errorf("maxProjectNameLength must be positive")
	}
	if c.Limits.MaxContentBytes <= 0 {
		return fmt.Errorf("maxContentBytes must be positive")
	}
	if c.Limits.MaxListPageSize <= 0 {
		return fmt.Errorf("maxListPageSize must be positive")
	}
	return nil
}

// Static serves fixed limits behind the same accessor the watcher provides,
// for deployments that run without an overlay file.
type Static struct {
	limits Limits
}

// NewStatic wraps the given limits
func NewStatic(limits Limits) *Static {
	return &Static{limits: limits}
}

// Limits returns the wrapped limits
func (s *Static) Limits() Limits {
	return s.limits
}

// Watcher watches the overlay file and hot-reloads validated limits. An
// invalid or unparsable overlay keeps the current limits.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	current  *DynamicConfig
	mu       sync.RWMutex
	onChange []func(*DynamicConfig)
	logger   *zap.Logger
	stopCh   chan struct{}
}

// NewWatcher loads the overlay file and starts tracking it for changes
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	current, err := loadDynamicConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config file: %w", err)
	}

	// watch the directory too, editors save atomically via rename
	if err := fw.Add(filepath.Dir(path)); err != nil {
		logger.Warn("failed to watch config directory", zap.Error(err))
	}

	return &Watcher{
		path:    path,
		watcher: fw,
		current: current,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}, nil
}

// Start begins watching for configuration changes
func (w *Watcher) Start() {
	go w.watchLoop()
	w.logger.Info("configuration watcher started", zap.String("path", w.path))
}

// Stop stops watching for configuration changes
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	var debounce *time.Timer
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, w.reload)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	next, err := loadDynamicConfig(w.path)
	if err != nil {
		w.logger.Error("failed to reload configuration, keeping current", zap.Error(err))
		return
	}

	w.mu.Lock()
	w.current = next
	handlers := make([]func(*DynamicConfig), len(w.onChange))
	copy(handlers, w.onChange)
	w.mu.Unlock()

	w.logger.Info("configuration reloaded",
		zap.String("version", next.Metadata.Version),
		zap.Int("maxContentBytes", next.Limits.MaxContentBytes),
	)

	for _, handler := range handlers {
		go handler(next)
	}
}

// OnChange registers a callback for configuration changes
func (w *Watcher) OnChange(handler func(*DynamicConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, handler)
}

// Limits returns the current limits
func (w *Watcher) Limits() Limits {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current.Limits
}

func loadDynamicConfig(path string) (*DynamicConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultDynamicConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Metadata.Version == "defaults" {
		cfg.Metadata.Version = "1.0.0"
	}

	return cfg, nil
}
