// internal/jobscript/jobscript.go
package jobscript

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"liftprep/internal/diag"
	"liftprep/internal/fileio"
)

// Kind selects the script layout and names the LSF job.
type Kind string

const (
	Liftoff Kind = "liftoff"
	Synteny Kind = "synteny"
)

// Job is one script to render.
type Job struct {
	Kind    Kind
	RefID   string
	Command string
	WorkDir string // liftoff only
}

// header is shared by every kind; only {{.Kind}} differs between them.
var header = []string{
	"#!{{.Interpreter}}",
	"#BSUB -J {{.Kind}}",
	"#BSUB -W {{.Walltime}}",
	"#BSUB -n {{.Cores}}",
	"#BSUB -q {{.Queue}}",
	"#BSUB -e {{.ErrorLog}}",
	"#BSUB -o {{.OutputLog}}",
}

type layout struct {
	lines   []string // templates following the header
	setup   bool     // then Profile.SyntenySetup
	require []string // Job fields that must be non-empty
}

// Layouts by kind. Synteny gets no WORKDIR: its command carries full paths.
var layouts = map[Kind]layout{
	Liftoff: {
		lines:   []string{"WORKDIR={{.WorkDir}}", "cd $WORKDIR"},
		require: []string{"WorkDir"},
	},
	Synteny: {
		lines: []string{""},
		setup: true,
	},
}

// Kinds lists the known layouts.
func Kinds() []Kind { return []Kind{Liftoff, Synteny} }

// ScriptName is run-{kind}.{ref}.sh.
func ScriptName(k Kind, refID string) string {
	return "run-" + string(k) + "." + refID + ".sh"
}

// Render builds the script text: header, kind-specific lines, then the
// command verbatim (no newline is added after it).
func Render(p Profile, j Job) ([]byte, error) {
	lay, ok := layouts[j.Kind]
	if !ok {
		return nil, diag.Configf("unknown job kind %q", j.Kind)
	}
	if j.RefID == "" {
		return nil, diag.Configf("%s job: empty reference id", j.Kind)
	}
	vars := map[string]any{
		"Kind":        string(j.Kind),
		"RefID":       j.RefID,
		"WorkDir":     j.WorkDir,
		"Interpreter": p.Interpreter,
		"Walltime":    p.Walltime,
		"Cores":       strconv.Itoa(p.Cores),
		"Queue":       p.Queue,
		"ErrorLog":    p.ErrorLog,
		"OutputLog":   p.OutputLog,
	}
	for _, k := range lay.require {
		if vars[k] == "" {
			return nil, diag.Configf("%s job: %s is required", j.Kind, k)
		}
	}

	lines := make([]string, 0, len(header)+len(lay.lines)+len(p.SyntenySetup))
	lines = append(lines, header...)
	lines = append(lines, lay.lines...)
	if lay.setup {
		lines = append(lines, p.SyntenySetup...)
	}

	var buf bytes.Buffer
	for i, l := range lines {
		tpl, err := template.New(fmt.Sprintf("%s:%d", j.Kind, i+1)).Option("missingkey=error").Parse(l)
		if err != nil {
			return nil, diag.Configf("script line %d: %v", i+1, err)
		}
		if err := tpl.Execute(&buf, vars); err != nil {
			return nil, diag.Configf("script line %d: %v", i+1, err)
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(j.Command)
	return buf.Bytes(), nil
}

// Write renders j into dir/ScriptName and returns the path. The file is
// truncated if it exists and gets perm.
func Write(dir string, p Profile, j Job, perm os.FileMode) (string, error) {
	b, err := Render(p, j)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ScriptName(j.Kind, j.RefID))
	if err := fileio.WriteFile(path, b, perm); err != nil {
		return "", err
	}
	return path, nil
}
