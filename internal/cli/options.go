// internal/cli/options.go
package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"liftprep/internal/config"
	"liftprep/internal/diag"
	"liftprep/internal/gff3"
	"liftprep/internal/writers"
)

// Global flags are persistent on the root command.
type Global struct {
	ConfigPath string
	LogLevel   string
	Quiet      bool
	Output     string
}

// Register adds the global flags to fs.
func (g *Global) Register(fs *pflag.FlagSet) {
	fs.StringVar(&g.ConfigPath, "config", "", "JSON scheduler profile (default $"+config.EnvConfigFile+")")
	fs.StringVar(&g.LogLevel, "log-level", "", "log level: debug | info | warn | error [info]")
	fs.BoolVarP(&g.Quiet, "quiet", "q", false, "only log errors, no warnings [false]")
	fs.StringVarP(&g.Output, "output", "o", writers.FormatText, "output format: "+strings.Join(writers.Formats(), " | ")+" ["+writers.FormatText+"]")
}

// Validate checks values pflag cannot.
func (g Global) Validate() error {
	for _, f := range writers.Formats() {
		if g.Output == f {
			return nil
		}
	}
	return diag.Configf("invalid --output %q", g.Output)
}

// Overlay copies the set global flags into c.
func (g Global) Overlay(c *config.Config) {
	c.LogLevel = g.LogLevel
}

// Script flags are registered on the *-bsub commands.
type Script struct {
	Queue      string
	Walltime   string
	Cores      int
	ScriptDir  string
	Executable bool
}

// Register adds the job script flags to fs. Empty defaults defer to the
// profile and environment.
func (s *Script) Register(fs *pflag.FlagSet) {
	fs.StringVar(&s.Queue, "queue", "", "LSF queue [standard]")
	fs.StringVar(&s.Walltime, "walltime", "", "LSF run limit, [hours:]minutes [5:00]")
	fs.IntVar(&s.Cores, "cores", 0, "LSF slots (-n) [1]")
	fs.StringVar(&s.ScriptDir, "script-dir", "", "directory the run-*.sh script is written to [.]")
	fs.BoolVar(&s.Executable, "executable", false, "write the script with mode 0755; --executable=false overrides a profile [false]")
}

// Overlay copies the flags the user set into c.
func (s Script) Overlay(fs *pflag.FlagSet, c *config.Config) error {
	if fs.Changed("cores") && s.Cores < 1 {
		return diag.Configf("--cores must be >= 1, got %d", s.Cores)
	}
	if fs.Changed("script-dir") && strings.TrimSpace(s.ScriptDir) == "" {
		return diag.Configf("--script-dir must not be empty")
	}
	c.Scheduler.Queue = s.Queue
	c.Scheduler.Walltime = s.Walltime
	c.Scheduler.Cores = s.Cores
	c.ScriptDir = s.ScriptDir
	if fs.Changed("executable") {
		v := s.Executable
		c.Executable = &v
	}
	return nil
}

// Chunk flags are registered on chunk-gff3.
type Chunk struct {
	MaxOpen int
}

func (k *Chunk) Register(fs *pflag.FlagSet) {
	fs.IntVar(&k.MaxOpen, "max-open", gff3.DefaultMaxOpen, "chunk files held open at once (0 = reopen per line)")
}

// Overlay sets c.MaxOpen only when --max-open was given.
func (k Chunk) Overlay(fs *pflag.FlagSet, c *config.Config) error {
	if !fs.Changed("max-open") {
		return nil
	}
	if k.MaxOpen < 0 {
		return diag.Configf("--max-open must be >= 0, got %d", k.MaxOpen)
	}
	n := k.MaxOpen
	c.MaxOpen = &n
	return nil
}
