// internal/config/config.go
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"liftprep/internal/diag"
	"liftprep/internal/gff3"
	"liftprep/internal/jobscript"
)

// Environment variables read by EnvOverlay.
const (
	EnvConfigFile = "LIFTPREP_CONFIG_FILE"
	EnvQueue      = "LIFTPREP_QUEUE"
	EnvWalltime   = "LIFTPREP_WALLTIME"
	EnvCores      = "LIFTPREP_CORES"
	EnvScriptDir  = "LIFTPREP_SCRIPT_DIR"
	EnvLogLevel   = "LIFTPREP_LOG_LEVEL"
)

// Config is read once per process. JSON keys are snake_case and unknown
// keys are rejected.
type Config struct {
	Scheduler jobscript.Profile `json:"scheduler"`
	ScriptDir string            `json:"script_dir"`
	// Executable selects mode 0755 for scripts; nil means not set.
	Executable *bool `json:"executable,omitempty"`
	// MaxOpen caps chunk-gff3 handles; nil means not set.
	MaxOpen  *int   `json:"max_open,omitempty"`
	LogLevel string `json:"log_level"`
}

// Defaults reproduce the historical scripts: header values from
// jobscript.DefaultProfile, scripts in the working directory, mode 0644.
func Defaults() Config {
	maxOpen := gff3.DefaultMaxOpen
	return Config{
		Scheduler: jobscript.DefaultProfile(),
		ScriptDir: ".",
		MaxOpen:   &maxOpen,
		LogLevel:  "info",
	}
}

// LoadJSON parses a profile file.
func LoadJSON(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, diag.WrapIO(err)
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, diag.Configf("%s: %v", path, err)
	}
	return cfg, nil
}

// EnvOverlay builds an overlay from KEY=VALUE pairs (os.Environ form).
func EnvOverlay(environ []string) (Config, error) {
	var over Config
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		v = strings.TrimSpace(v)
		switch k {
		case EnvQueue:
			over.Scheduler.Queue = v
		case EnvWalltime:
			over.Scheduler.Walltime = v
		case EnvCores:
			n, err := strconv.Atoi(v)
			if err != nil {
				return over, diag.Configf("%s=%q: not an integer", EnvCores, v)
			}
			over.Scheduler.Cores = n
		case EnvScriptDir:
			over.ScriptDir = v
		case EnvLogLevel:
			over.LogLevel = v
		}
	}
	return over, nil
}

// Merge overlays over onto base. Zero values in over do not override.
func Merge(base, over Config) Config {
	out := base
	s, o := &out.Scheduler, over.Scheduler
	if o.Interpreter != "" {
		s.Interpreter = o.Interpreter
	}
	if o.Walltime != "" {
		s.Walltime = o.Walltime
	}
	if o.Cores != 0 {
		s.Cores = o.Cores
	}
	if o.Queue != "" {
		s.Queue = o.Queue
	}
	if o.ErrorLog != "" {
		s.ErrorLog = o.ErrorLog
	}
	if o.OutputLog != "" {
		s.OutputLog = o.OutputLog
	}
	if o.SyntenySetup != nil {
		s.SyntenySetup = append([]string(nil), o.SyntenySetup...)
	}
	if over.ScriptDir != "" {
		out.ScriptDir = over.ScriptDir
	}
	if over.Executable != nil {
		v := *over.Executable
		out.Executable = &v
	}
	if over.MaxOpen != nil {
		n := *over.MaxOpen
		out.MaxOpen = &n
	}
	if over.LogLevel != "" {
		out.LogLevel = over.LogLevel
	}
	return out
}

// Validate checks the merged result.
func Validate(c Config) error {
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.ScriptDir) == "" {
		return diag.Configf("script_dir must not be empty")
	}
	if c.MaxOpen != nil && *c.MaxOpen < 0 {
		return diag.Configf("max_open must be >= 0, got %d", *c.MaxOpen)
	}
	if _, err := diag.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Resolve applies defaults, the optional profile file (path, or
// LIFTPREP_CONFIG_FILE when path is empty), environ, then cli, and validates.
func Resolve(path string, environ []string, cli Config) (Config, error) {
	cfg := Defaults()
	if path == "" {
		path = lookup(environ, EnvConfigFile)
	}
	if path != "" {
		file, err := LoadJSON(path)
		if err != nil {
			return cfg, err
		}
		cfg = Merge(cfg, file)
	}
	env, err := EnvOverlay(environ)
	if err != nil {
		return cfg, err
	}
	cfg = Merge(Merge(cfg, env), cli)
	return cfg, Validate(cfg)
}

// ScriptExecutable reports whether scripts get mode 0755.
func (c Config) ScriptExecutable() bool {
	return c.Executable != nil && *c.Executable
}

// EffectiveMaxOpen returns MaxOpen or the chunker default.
func (c Config) EffectiveMaxOpen() int {
	if c.MaxOpen == nil {
		return gff3.DefaultMaxOpen
	}
	return *c.MaxOpen
}

func lookup(environ []string, key string) string {
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
