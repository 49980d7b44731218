// Package config loads tagfield configuration through viper with the
// precedence: defaults < user config < project config < environment
// variables < explicit overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	tferrors "tagfield/internal/errors"
	"tagfield/internal/tags"
)

const (
	KeyMaxTags         = "limits.max-tags"
	KeyMinTags         = "limits.min-tags"
	KeyAllowDuplicates = "duplicates.allow"
	KeyCaseSensitive   = "duplicates.case-sensitive"
	KeyDelimiters      = "input.delimiters"
	KeyNumericParsing  = "input.numeric-parsing"
	KeyTheme           = "theme"
	KeyHistoryPath     = "history.path"
	KeyHistoryLimit    = "history.limit"
	KeyDebug           = "debug"
)

const (
	// DefaultHistoryLimit caps how many recently used tags are retained.
	DefaultHistoryLimit = 50

	envPrefix         = "TF"
	userConfigDir     = ".tagfield"
	userConfigFile    = "config.yaml"
	projectConfigFile = ".tagfield.yaml"
	historyFile       = "history.db"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error
)

// Initialize loads configuration. Safe to call repeatedly; only the first
// call does work.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	for k, v := range overrides {
		configInst.Set(k, v)
	}
	return nil
}

// MaxTags returns the collection ceiling; zero means unset.
func MaxTags() int {
	return getInt(KeyMaxTags)
}

// MinTags returns the collection floor; zero means unset.
func MinTags() int {
	return getInt(KeyMinTags)
}

// AllowDuplicates reports whether duplicate tags are permitted.
func AllowDuplicates() bool {
	return getBool(KeyAllowDuplicates)
}

// CaseSensitiveDuplicates reports the duplicate comparison policy.
func CaseSensitiveDuplicates() bool {
	return getBool(KeyCaseSensitive)
}

// NumericParsing reports whether numeric-looking candidates are coerced.
func NumericParsing() bool {
	return getBool(KeyNumericParsing)
}

// Theme returns the configured theme name.
func Theme() string {
	return getString(KeyTheme)
}

// Debug reports whether debug logging is enabled.
func Debug() bool {
	return getBool(KeyDebug)
}

// HistoryLimit returns the recent-tag retention cap.
func HistoryLimit() int {
	return getInt(KeyHistoryLimit)
}

// HistoryPath returns the recent-tag database path, defaulting to
// ~/.tagfield/history.db when unset.
func HistoryPath() (string, error) {
	if path := strings.TrimSpace(getString(KeyHistoryPath)); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, userConfigDir, historyFile), nil
}

// Delimiters maps the configured delimiter names to their patterns.
func Delimiters() ([]tags.Delimiter, error) {
	names := getStringSlice(KeyDelimiters)
	out := make([]tags.Delimiter, 0, len(names))
	for _, name := range names {
		d, err := tags.ParseDelimiter(name)
		if err != nil {
			return nil, tferrors.New(tferrors.CodeInvalidDelimiter,
				fmt.Sprintf("config key %s: %v", KeyDelimiters, err), err)
		}
		out = append(out, d)
	}
	return out, nil
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		projectConfigPath = filepath.Join(workingDir, projectConfigFile)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return fmt.Errorf("load user config: %w", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	configMu.Lock()
	configInst = v
	configMu.Unlock()
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxTags, 0)
	v.SetDefault(KeyMinTags, 0)
	v.SetDefault(KeyAllowDuplicates, false)
	v.SetDefault(KeyCaseSensitive, false)
	v.SetDefault(KeyDelimiters, []string{"comma"})
	v.SetDefault(KeyNumericParsing, false)
	v.SetDefault(KeyTheme, "charm")
	v.SetDefault(KeyHistoryLimit, DefaultHistoryLimit)
	v.SetDefault(KeyDebug, false)
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()
	return v.MergeConfig(f)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, userConfigDir, userConfigFile), nil
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

func getString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

func getBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

func getInt(key string) int {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetInt(key)
}

func getStringSlice(key string) []string {
	v, err := getViper()
	if err != nil {
		return nil
	}
	return v.GetStringSlice(key)
}

func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
}

// ResetForTesting clears package state for tests in other packages.
// Returns a cleanup function that should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, userConfigFile)))
	return reset
}
