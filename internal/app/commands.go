// internal/app/commands.go
package app

import (
	"strings"

	"github.com/spf13/cobra"

	"liftprep/internal/diag"
	"liftprep/pkg/api"
)

// cmdSpec is one row of the command table.
type cmdSpec struct {
	name     string
	short    string
	long     string
	example  string
	args     []string // required positionals
	optional []string // trailing optional positionals
	script   bool     // registers the job script flags
	chunk    bool     // registers --max-open
	run      func(r *runner, args []string) (api.ManifestV1, error)
}

func (c cmdSpec) use() string {
	parts := []string{c.name}
	for _, a := range c.args {
		parts = append(parts, "<"+a+">")
	}
	for _, a := range c.optional {
		parts = append(parts, "["+a+"]")
	}
	return strings.Join(parts, " ")
}

var (
	liftoffArgs = []string{"work_dir", "ref_fasta", "target_fasta", "ref_gff3"}
	liftoffOpt  = []string{"mapping_file"}
	syntenyArgs = []string{"ref_fasta", "target_fasta", "ref_gff3", "target_gff3", "output_dir"}
)

func commandTable() []cmdSpec {
	return []cmdSpec{
		{
			name:  "chunk-fasta",
			short: "Write each FASTA record to <output_dir>/<id>.fa",
			long: `Split a (optionally gzipped) FASTA file into one file per record, named
after the record id and wrapped at 60 columns. Existing chunks are overwritten.`,
			example: "  liftprep chunk-fasta GRCh38.fa.gz chunks/",
			args:    []string{"fasta_file", "output_dir"},
			run:     runChunkFasta,
		},
		{
			name:  "chunk-gff3",
			short: "Append each GFF3 line to <output_dir>/<seqid>.gff3",
			long: `Partition a GFF3 file by its first column. Comment lines are dropped and
data lines are appended unchanged, so running twice into the same
directory duplicates them.`,
			example: "  liftprep chunk-gff3 --max-open 0 GRCh38.gff3 chunks/",
			args:    []string{"gff3_file", "output_dir"},
			chunk:   true,
			run:     runChunkGFF3,
		},
		{
			name:  "chunk-mapping-file",
			short: "Write each source,target pair to <output_dir>/mapping_files/<source>.mapping",
			args:  []string{"mapping_file", "output_dir"},
			run:   runChunkMapping,
		},
		{
			name:     "build-liftoff-command",
			short:    "Print the liftoff command for a reference/target pair",
			args:     liftoffArgs,
			optional: liftoffOpt,
			run:      runLiftoffCommand,
		},
		{
			name:     "build-liftoff-bsub",
			short:    "Write run-liftoff.<ref_id>.sh for a reference/target pair",
			example: `  liftprep build-liftoff-bsub --queue long --script-dir jobs/ \
    /scratch/lift chunks/1.fa target.fa chunks/1.gff3 mapping_files/1.mapping
  bsub < jobs/run-liftoff.1.sh`,
			args:     liftoffArgs,
			optional: liftoffOpt,
			script:   true,
			run:      runLiftoffBsub,
		},
		{
			name:  "build-synteny-command",
			short: "Print the liftofftools synteny command",
			args:  syntenyArgs,
			run:   runSyntenyCommand,
		},
		{
			name:   "build-synteny-bsub",
			short:  "Write run-synteny.<ref_id>.sh, output under <output_dir>/<ref_id>",
			args:   syntenyArgs,
			script: true,
			run:    runSyntenyBsub,
		},
	}
}

// rangeArgs accepts len(req) to len(req)+len(opt) positionals.
func rangeArgs(req, opt []string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		lo, hi := len(req), len(req)+len(opt)
		if len(args) >= lo && len(args) <= hi {
			return nil
		}
		want := strings.Join(req, " ")
		if len(opt) > 0 {
			want += " [" + strings.Join(opt, " ") + "]"
		}
		if want == "" {
			return diag.Configf("%s takes no arguments, got %d", cmd.Name(), len(args))
		}
		return diag.Configf("%s: want %s, got %d argument(s)", cmd.Name(), want, len(args))
	}
}

func exactArgs(names []string) cobra.PositionalArgs { return rangeArgs(names, nil) }
