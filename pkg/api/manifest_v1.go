// pkg/api/manifest_v1.go
package api

// ManifestV1 is the stable JSON schema printed by --output json.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ManifestV1 struct {
	Command      string   `json:"command"`
	Files        []string `json:"files,omitempty"`
	Script       string   `json:"script,omitempty"`
	ShellCommand string   `json:"shell_command,omitempty"`
	RefID        string   `json:"ref_id,omitempty"`
	Created      []string `json:"created_dirs,omitempty"`
}
