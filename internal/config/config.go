package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lemodoescoding/te/internal/config/loader"
	"github.com/lemodoescoding/te/internal/renderer/highlight"
)

// Limits enforced by Validate.
const (
	MinTabStop = 1
	MaxTabStop = 16
)

// Config holds every editor setting.
type Config struct {
	Editor EditorConfig   `toml:"editor"`
	Log    LogConfig      `toml:"log"`
	Theme  map[string]int `toml:"theme"`
	Syntax []SyntaxConfig `toml:"syntax"`
	Plugin PluginConfig   `toml:"plugin"`

	// Source is the file the settings were read from, if any.
	Source string `toml:"-"`
}

// EditorConfig contains the editing settings.
type EditorConfig struct {
	TabStop        int      `toml:"tab_stop"`
	QuitTimes      int      `toml:"quit_times"`
	MessageTimeout Duration `toml:"message_timeout"`
	WatchFile      bool     `toml:"watch_file"`
}

// LogConfig controls the session log. An empty File discards log output.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// PluginConfig locates the init script. An empty InitScript means the
// default path next to the config file.
type PluginConfig struct {
	InitScript string `toml:"init_script"`
	Disabled   bool   `toml:"disabled"`
}

// SyntaxConfig is a user-defined highlight profile.
type SyntaxConfig struct {
	FileType          string   `toml:"filetype"`
	FileMatch         []string `toml:"filematch"`
	Keywords          []string `toml:"keywords"`
	Types             []string `toml:"types"`
	LineComment       string   `toml:"line_comment"`
	BlockCommentStart string   `toml:"block_comment_start"`
	BlockCommentEnd   string   `toml:"block_comment_end"`
	Numbers           bool     `toml:"numbers"`
	Strings           bool     `toml:"strings"`
}

// Profile converts the table into a highlight profile.
func (s SyntaxConfig) Profile() *highlight.Profile {
	p := &highlight.Profile{
		FileType:          s.FileType,
		FileMatch:         append([]string(nil), s.FileMatch...),
		Keywords:          append([]string(nil), s.Keywords...),
		Types:             append([]string(nil), s.Types...),
		LineComment:       s.LineComment,
		BlockCommentStart: s.BlockCommentStart,
		BlockCommentEnd:   s.BlockCommentEnd,
	}
	if s.Numbers {
		p.Flags |= highlight.HighlightNumbers
	}
	if s.Strings {
		p.Flags |= highlight.HighlightStrings
	}
	return p
}

// Duration is a time.Duration written as a string such as "5s".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabStop:        8,
			QuitTimes:      3,
			MessageTimeout: Duration(5 * time.Second),
			WatchFile:      true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns the user config file path, or "" when the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "te", "config.toml")
}

// InitScriptPath returns the init script to run: the configured one, or
// init.lua next to the config file.
func (c *Config) InitScriptPath() string {
	if c.Plugin.Disabled {
		return ""
	}
	if c.Plugin.InitScript != "" {
		return c.Plugin.InitScript
	}
	if c.Source != "" {
		return filepath.Join(filepath.Dir(c.Source), "init.lua")
	}
	if p := DefaultPath(); p != "" {
		return filepath.Join(filepath.Dir(p), "init.lua")
	}
	return ""
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs        loader.FileSystem
	env       bool
	envPrefix string
	required  bool
}

// WithFileSystem reads the config file from fsys.
func WithFileSystem(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithoutEnv skips environment overrides.
func WithoutEnv() LoadOption {
	return func(o *loadOptions) {
		o.env = false
	}
}

// WithEnvPrefix reads overrides from variables starting with prefix.
func WithEnvPrefix(prefix string) LoadOption {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// Required makes a missing config file an error.
func Required() LoadOption {
	return func(o *loadOptions) {
		o.required = true
	}
}

// Load builds the configuration from defaults, the TOML file at path
// (DefaultPath when empty) and the environment, then validates it.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{
		fs:        loader.DefaultFS(),
		env:       true,
		envPrefix: loader.DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	merged := make(map[string]any)

	if path != "" {
		fileMap, err := loader.NewTOMLLoaderWithFS(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
		if fileMap == nil && o.required {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if fileMap != nil {
			cfg.Source = path
			merged = loader.DeepMerge(merged, fileMap)
		}
	}

	if o.env {
		envMap, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, envMap)
	}

	if err := cfg.decode(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode applies the settings in m over c. Keys not present in m keep
// their current value.
func (c *Config) decode(m map[string]any) error {
	if len(m) == 0 {
		return nil
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) && len(serr.Errors) > 0 {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, strings.Join(serr.Errors[0].Key(), "."))
		}
		return fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return nil
}

// Set changes the setting at a dot-separated path such as
// "editor.tab_stop". The change is rejected, leaving c untouched, if the
// result doesn't validate.
func (c *Config) Set(path string, value any) error {
	parts := strings.Split(path, ".")
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	m := make(map[string]any)
	cur := m
	for _, p := range parts[:len(parts)-1] {
		next := make(map[string]any)
		cur[p] = next
		cur = next
	}
	cur[parts[len(parts)-1]] = value

	next := c.Clone()
	if err := next.decode(m); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = *next
	return nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	if c.Theme != nil {
		out.Theme = make(map[string]int, len(c.Theme))
		for k, v := range c.Theme {
			out.Theme[k] = v
		}
	}
	out.Syntax = make([]SyntaxConfig, len(c.Syntax))
	copy(out.Syntax, c.Syntax)
	return &out
}

// Validate checks every setting and returns the first failure.
func (c *Config) Validate() error {
	if c.Editor.TabStop < MinTabStop || c.Editor.TabStop > MaxTabStop {
		return &ValidationError{
			Path:    "editor.tab_stop",
			Message: fmt.Sprintf("must be between %d and %d", MinTabStop, MaxTabStop),
			Value:   c.Editor.TabStop,
			Code:    ErrCodeOutOfRange,
		}
	}
	if c.Editor.QuitTimes < 0 {
		return &ValidationError{
			Path:    "editor.quit_times",
			Message: "must not be negative",
			Value:   c.Editor.QuitTimes,
			Code:    ErrCodeOutOfRange,
		}
	}
	if c.Editor.MessageTimeout <= 0 {
		return &ValidationError{
			Path:    "editor.message_timeout",
			Message: "must be positive",
			Value:   c.Editor.MessageTimeout.Std(),
			Code:    ErrCodeOutOfRange,
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{
			Path:    "log.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Log.Level,
			Code:    ErrCodeInvalidEnum,
		}
	}

	if err := highlight.DefaultTheme().Apply(c.Theme); err != nil {
		return &ValidationError{
			Path:    "theme",
			Message: err.Error(),
			Value:   c.Theme,
			Code:    ErrCodeInvalidEnum,
		}
	}

	for i, s := range c.Syntax {
		if s.FileType == "" {
			return &ValidationError{
				Path:    fmt.Sprintf("syntax[%d].filetype", i),
				Message: "is required",
				Value:   s.FileType,
				Code:    ErrCodeRequiredMissing,
			}
		}
		if (s.BlockCommentStart == "") != (s.BlockCommentEnd == "") {
			return &ValidationError{
				Path:    fmt.Sprintf("syntax[%d].block_comment_end", i),
				Message: "block comment start and end must be set together",
				Value:   s.BlockCommentEnd,
				Code:    ErrCodeRequiredMissing,
			}
		}
	}
	return nil
}

// HighlightTheme returns the default theme with the configured overrides.
func (c *Config) HighlightTheme() (*highlight.Theme, error) {
	t := highlight.DefaultTheme()
	if err := t.Apply(c.Theme); err != nil {
		return nil, err
	}
	return t, nil
}

// RegisterSyntax adds the configured profiles to db. A profile with the
// file type of a built-in replaces it.
func (c *Config) RegisterSyntax(db *highlight.Database) {
	for _, s := range c.Syntax {
		db.Register(s.Profile())
	}
}
