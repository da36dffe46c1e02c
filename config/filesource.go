package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jvcoutinho/eureka/logger"
)

// DefaultPropertiesFile is the property file loaded when no path is
// configured.
const DefaultPropertiesFile = "eureka-client.properties"

// FileSourceConfig configures a FileSource.
type FileSourceConfig struct {
	// Path is the base property file. Java-style .properties files and
	// YAML/JSON/TOML files are supported, selected by extension.
	Path string `mapstructure:"path"`

	// Environment selects an overlay file loaded on top of Path, named
	// <base>-<environment><ext> (e.g. eureka-client-test.properties).
	// Overlay values win over base values.
	Environment string `mapstructure:"environment"`

	// EnvFile is an optional .env file loaded into the process
	// environment before binding.
	EnvFile string `mapstructure:"env_file"`

	// BindEnv overlays OS environment variables on top of file values,
	// mapping dots to underscores (eureka.region -> EUREKA_REGION).
	BindEnv bool `mapstructure:"bind_env"`
}

// ApplyDefaults fills zero-valued fields with sensible defaults.
func (c *FileSourceConfig) ApplyDefaults() {
	if c.Path == "" {
		c.Path = DefaultPropertiesFile
	}
}

// FileSource is a Source backed by property files loaded through Viper.
// Reloads build a fresh store and swap it in whole, so readers never
// observe a partially reloaded view.
type FileSource struct {
	cfg FileSourceConfig
	log *logger.Logger

	mu        sync.RWMutex
	v         *viper.Viper
	callbacks []func()
	watcher   *fsnotify.Watcher
}

// NewFileSource creates a FileSource and performs the initial load.
// A missing property file is not an error: the original client treats
// it as "configuration installed with a different mechanism" and the
// source simply resolves every key to its default.
func NewFileSource(cfg FileSourceConfig, log *logger.Logger) (*FileSource, error) {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.NewDefault("eureka")
	}

	s := &FileSource{
		cfg: cfg,
		log: log.WithComponent("config"),
	}

	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			s.log.Warn("failed to load env file", map[string]interface{}{
				"path": cfg.EnvFile, "error": err.Error(),
			})
		}
	}

	s.v = s.load()
	return s, nil
}

// load builds a fresh viper store from the configured files.
func (s *FileSource) load() *viper.Viper {
	v := viper.New()
	if s.cfg.BindEnv {
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	if err := mergeFile(v, s.cfg.Path); err != nil {
		s.log.Warn("cannot find the properties specified; this may be okay if the configuration is installed with a different mechanism", map[string]interface{}{
			"path": s.cfg.Path, "error": err.Error(),
		})
	}

	if overlay := s.overlayPath(); overlay != "" {
		if err := mergeFile(v, overlay); err != nil {
			s.log.Debug("no environment overlay file", map[string]interface{}{
				"path": overlay,
			})
		}
	}

	return v
}

// overlayPath returns the environment-specific overlay file path, or
// "" when no environment is configured.
func (s *FileSource) overlayPath() string {
	if s.cfg.Environment == "" {
		return ""
	}
	ext := filepath.Ext(s.cfg.Path)
	base := strings.TrimSuffix(s.cfg.Path, ext)
	return fmt.Sprintf("%s-%s%s", base, s.cfg.Environment, ext)
}

// mergeFile merges one property file into v. Files with a .properties
// (or unknown) extension are parsed as key=value lines; structured
// formats are delegated to viper.
func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json", ".toml":
		v.SetConfigFile(path)
		return v.MergeInConfig()
	default:
		props, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("parse properties %s: %w", path, err)
		}
		settings := make(map[string]interface{}, len(props))
		for k, val := range props {
			settings[k] = val
		}
		return v.MergeConfigMap(settings)
	}
}

// Watch starts watching the configured files and hot-reloads the store
// when one changes. The watches are placed on the containing
// directories and filtered by file name, so rename-based updates
// (atomic-save editors, configmap-style updaters) keep being observed
// after the original inode is replaced. Close stops the watcher.
func (s *FileSource) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, path := range []string{s.cfg.Path, s.overlayPath()} {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	watched := 0
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			s.log.Warn("cannot watch property directory", map[string]interface{}{
				"dir": dir, "error": err.Error(),
			})
			continue
		}
		watched++
	}
	if watched == 0 {
		watcher.Close()
		return fmt.Errorf("config watcher: no property directories to watch")
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !files[filepath.Clean(event.Name)] {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				s.reload()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("config watch error", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}()

	return nil
}

// Reload rebuilds the store from the configured files immediately.
func (s *FileSource) Reload() {
	s.reload()
}

// OnReload registers a callback invoked after every successful reload.
func (s *FileSource) OnReload(fn func()) {
	s.mu.Lock()
	s.callbacks = append(s.callbacks, fn)
	s.mu.Unlock()
}

func (s *FileSource) reload() {
	fresh := s.load()

	s.mu.Lock()
	s.v = fresh
	callbacks := make([]func(), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	s.log.Info("property source reloaded", map[string]interface{}{
		"path": s.cfg.Path,
	})
	for _, fn := range callbacks {
		fn()
	}
}

// Close stops the file watcher, if one was started.
func (s *FileSource) Close() error {
	s.mu.Lock()
	watcher := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if watcher != nil {
		return watcher.Close()
	}
	return nil
}

func (s *FileSource) store() *viper.Viper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// GetString returns the value for key, or def when absent.
func (s *FileSource) GetString(key, def string) string {
	v := s.store()
	if !v.IsSet(key) {
		return def
	}
	return v.GetString(key)
}

// GetInt returns the value for key as an integer, or def.
func (s *FileSource) GetInt(key string, def int) int {
	v := s.store()
	if !v.IsSet(key) {
		return def
	}
	return parseInt(v.GetString(key), def)
}

// GetBool returns the value for key as a boolean, or def.
func (s *FileSource) GetBool(key string, def bool) bool {
	v := s.store()
	if !v.IsSet(key) {
		return def
	}
	return parseBool(v.GetString(key), def)
}

// Has reports whether key is present.
func (s *FileSource) Has(key string) bool {
	return s.store().IsSet(key)
}

// Compile-time check.
var _ Source = (*FileSource)(nil)
