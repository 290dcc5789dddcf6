// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"liftprep/internal/cli"
	"liftprep/internal/config"
	"liftprep/internal/diag"
	"liftprep/internal/version"
	"liftprep/internal/writers"
)

// runner carries the per-invocation state shared by every command.
type runner struct {
	ctx     context.Context
	out     io.Writer
	stderr  io.Writer
	environ []string
	global  cli.Global
	cfg     config.Config
	log     *slog.Logger
}

// RunContext executes one liftprep invocation and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(parent, argv, os.Environ(), stdout, stderr)
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(parent context.Context, argv, environ []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	r := &runner{ctx: parent, out: outw, stderr: stderr, environ: environ, log: diag.Discard()}

	root := newRoot(r)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)
	err := root.ExecuteContext(parent)

	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) && err == nil {
		err = diag.WrapIO(e)
	}
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return diag.ExitOK
	case parent.Err() != nil:
		return diag.ExitCancel
	}
	diag.PrintError(stderr, err)
	return diag.ExitCode(err)
}

func newRoot(r *runner) *cobra.Command {
	root := &cobra.Command{
		Use:   "liftprep",
		Short: "Prepare inputs and LSF job scripts for liftoff and liftofftools",
		Long: `liftprep splits FASTA, GFF3 and chromosome mapping files into
per-sequence chunks and generates liftoff / liftofftools synteny commands
and bsub job scripts for them.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return diag.Configf("unknown command %q for \"liftprep\"", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("liftprep version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return diag.Configf("%v", err)
	})
	r.global.Register(root.PersistentFlags())

	for _, c := range commandTable() {
		root.AddCommand(r.build(c))
	}
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  exactArgs(nil),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "liftprep version "+version.Version+"\n")
			return err
		},
	})
	return root
}

// build turns a table entry into a cobra command whose RunE resolves the
// configuration, runs the handler, then renders its manifest.
func (r *runner) build(c cmdSpec) *cobra.Command {
	var script cli.Script
	var chunk cli.Chunk
	cmd := &cobra.Command{
		Use:     c.use(),
		Short:   c.short,
		Long:    c.long,
		Example: c.example,
		Args:    rangeArgs(c.args, c.optional),
	}
	if c.script {
		script.Register(cmd.Flags())
	}
	if c.chunk {
		chunk.Register(cmd.Flags())
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := r.global.Validate(); err != nil {
			return err
		}
		var over config.Config
		r.global.Overlay(&over)
		if c.script {
			if err := script.Overlay(cmd.Flags(), &over); err != nil {
				return err
			}
		}
		if c.chunk {
			if err := chunk.Overlay(cmd.Flags(), &over); err != nil {
				return err
			}
		}
		if err := r.configure(over); err != nil {
			return err
		}
		r.ctx = cmd.Context()
		r.log = r.log.With("cmd", cmd.Name())

		m, err := c.run(r, args)
		if err != nil {
			return err
		}
		m.Command = cmd.Name()
		return writers.WriteManifest(r.global.Output, r.out, m)
	}
	return cmd
}

// configure resolves defaults, profile file, environment and flags, then
// builds the logger.
func (r *runner) configure(over config.Config) error {
	cfg, err := config.Resolve(r.global.ConfigPath, r.environ, over)
	if err != nil {
		return err
	}
	level, err := diag.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if r.global.Quiet && level < slog.LevelError {
		level = slog.LevelError
	}
	r.cfg = cfg
	r.log = diag.NewLogger(r.stderr, level)
	return nil
}
