// internal/jobscript/profile.go
package jobscript

import (
	"regexp"
	"strings"

	"liftprep/internal/diag"
)

// Profile holds the LSF settings written into every script header.
type Profile struct {
	Interpreter string `json:"interpreter"`
	Walltime    string `json:"walltime"`
	Cores       int    `json:"cores"`
	Queue       string `json:"queue"`
	ErrorLog    string `json:"error_log"`
	OutputLog   string `json:"output_log"`
	// SyntenySetup runs before liftofftools to activate its environment.
	SyntenySetup []string `json:"synteny_setup"`
}

// DefaultProfile matches the scripts the existing pipelines consume.
func DefaultProfile() Profile {
	return Profile{
		Interpreter: "/usr/bin/env bash",
		Walltime:    "5:00",
		Cores:       1,
		Queue:       "standard",
		ErrorLog:    "error.%J",
		OutputLog:   "output.%J",
		SyntenySetup: []string{
			"source /hps/software/users/ensembl/ensw/swenv/spack/share/spack/setup-env.sh",
			"spacktivate experimental-liftoff",
		},
	}
}

// LSF -W takes [hours:]minutes.
var walltimeRE = regexp.MustCompile(`^([0-9]+:)?[0-9]+$`)

// Validate rejects values bsub would refuse.
func (p Profile) Validate() error {
	switch {
	case strings.TrimSpace(p.Interpreter) == "":
		return diag.Configf("interpreter must not be empty")
	case !walltimeRE.MatchString(p.Walltime):
		return diag.Configf("invalid walltime %q (want [hours:]minutes)", p.Walltime)
	case p.Cores < 1:
		return diag.Configf("cores must be >= 1, got %d", p.Cores)
	case strings.TrimSpace(p.Queue) == "" || strings.ContainsAny(p.Queue, " \t\n"):
		return diag.Configf("invalid queue %q", p.Queue)
	case p.ErrorLog == "" || p.OutputLog == "":
		return diag.Configf("error_log and output_log must not be empty")
	}
	return nil
}
