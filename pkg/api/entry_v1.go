package api

// Entry kinds emitted by --output jsonl.
const (
	EntryFile    = "file"
	EntryScript  = "script"
	EntryDir     = "dir"
	EntryCommand = "command"
)

// EntryV1 is one line of --output jsonl: a single artefact of a run.
type EntryV1 struct {
	Command      string `json:"command"`
	Kind         string `json:"kind"`
	Path         string `json:"path,omitempty"`
	ShellCommand string `json:"shell_command,omitempty"`
	RefID        string `json:"ref_id,omitempty"`
}

// Entries flattens m in the order a text listing would show it: created
// directories, the shell command, written files, then the script.
func (m ManifestV1) Entries() []EntryV1 {
	var out []EntryV1
	for _, d := range m.Created {
		out = append(out, EntryV1{Command: m.Command, Kind: EntryDir, Path: d})
	}
	if m.ShellCommand != "" {
		out = append(out, EntryV1{Command: m.Command, Kind: EntryCommand, ShellCommand: m.ShellCommand, RefID: m.RefID})
	}
	for _, f := range m.Files {
		out = append(out, EntryV1{Command: m.Command, Kind: EntryFile, Path: f})
	}
	if m.Script != "" {
		out = append(out, EntryV1{Command: m.Command, Kind: EntryScript, Path: m.Script, RefID: m.RefID})
	}
	return out
}
