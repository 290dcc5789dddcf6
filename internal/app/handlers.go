// internal/app/handlers.go
package app

import (
	"liftprep/internal/cmdutil"
	"liftprep/internal/command"
	"liftprep/internal/fasta"
	"liftprep/internal/fileio"
	"liftprep/internal/gff3"
	"liftprep/internal/jobscript"
	"liftprep/internal/mapping"
	"liftprep/pkg/api"
)

func runChunkFasta(r *runner, args []string) (api.ManifestV1, error) {
	in, out := args[0], args[1]
	r.log.Info("splitting sequence file into chunks", "input", in, "output_dir", out)
	files, err := fasta.ChunkSequences(r.ctx, in, out)
	if err != nil {
		return api.ManifestV1{}, err
	}
	r.log.Info("finished", "records", len(files))
	return api.ManifestV1{Files: files}, nil
}

func runChunkGFF3(r *runner, args []string) (api.ManifestV1, error) {
	in, out := args[0], args[1]
	if existing, err := gff3.ExistingChunks(out); err == nil && len(existing) > 0 {
		cmdutil.Warnf(r.stderr, r.global.Quiet,
			"%s already holds %d %s file(s); new lines will be appended to them", out, len(existing), gff3.ChunkExt)
	}
	maxOpen := r.cfg.EffectiveMaxOpen()
	r.log.Info("splitting annotation file into chunks", "input", in, "output_dir", out, "max_open", maxOpen)
	st, err := gff3.ChunkAnnotations(r.ctx, in, out, gff3.Options{MaxOpen: maxOpen})
	if err != nil {
		return api.ManifestV1{}, err
	}
	r.log.Info("finished", "lines", st.Lines, "comments", st.Comments, "records", st.Records, "chunks", len(st.Files))
	return api.ManifestV1{Files: st.Files}, nil
}

func runChunkMapping(r *runner, args []string) (api.ManifestV1, error) {
	t, err := mapping.ParseTable(args[0])
	if err != nil {
		return api.ManifestV1{}, err
	}
	for _, e := range t.Entries() {
		r.log.Debug("mapping", "source", e.Source, "target", e.Target)
	}
	res, err := mapping.WriteChunks(r.ctx, t, args[1])
	if err != nil {
		return api.ManifestV1{}, err
	}
	m := api.ManifestV1{Files: res.Files}
	if res.Created {
		r.log.Info("created output directory", "dir", res.Dir)
		m.Created = []string{res.Dir}
	} else {
		r.log.Info("output directory exists", "dir", res.Dir)
	}
	r.log.Info("finished", "pairs", len(res.Files))
	return m, nil
}

func liftoffSpec(args []string) command.LiftoffSpec {
	s := command.LiftoffSpec{
		WorkDir:     args[0],
		RefFasta:    args[1],
		TargetFasta: args[2],
		RefGFF3:     args[3],
	}
	if len(args) > 4 {
		s.MappingFile = args[4]
	}
	return s
}

func syntenySpec(args []string) command.SyntenySpec {
	return command.SyntenySpec{
		RefFasta:    args[0],
		TargetFasta: args[1],
		RefGFF3:     args[2],
		TargetGFF3:  args[3],
		OutputDir:   args[4],
	}
}

func runLiftoffCommand(r *runner, args []string) (api.ManifestV1, error) {
	cmd, ref := command.Liftoff(liftoffSpec(args))
	r.log.Debug("built liftoff command", "ref_id", ref)
	return api.ManifestV1{ShellCommand: cmd, RefID: ref}, nil
}

func runLiftoffBsub(r *runner, args []string) (api.ManifestV1, error) {
	s := liftoffSpec(args)
	cmd, ref := command.Liftoff(s)
	return r.writeScript(jobscript.Job{Kind: jobscript.Liftoff, RefID: ref, WorkDir: s.WorkDir, Command: cmd})
}

func runSyntenyCommand(r *runner, args []string) (api.ManifestV1, error) {
	s := syntenySpec(args)
	return api.ManifestV1{ShellCommand: command.Synteny(s), RefID: command.Stem(s.RefFasta)}, nil
}

// runSyntenyBsub places the liftofftools output under a per-reference
// directory so several references can share output_dir.
func runSyntenyBsub(r *runner, args []string) (api.ManifestV1, error) {
	s := syntenySpec(args)
	ref := command.Stem(s.RefFasta)
	s.OutputDir = s.OutputDir + "/" + ref
	return r.writeScript(jobscript.Job{Kind: jobscript.Synteny, RefID: ref, Command: command.Synteny(s)})
}

func (r *runner) writeScript(j jobscript.Job) (api.ManifestV1, error) {
	if err := fileio.RequireDir(r.cfg.ScriptDir); err != nil {
		return api.ManifestV1{}, err
	}
	perm := fileio.PermFile
	if r.cfg.ScriptExecutable() {
		perm = fileio.PermExec
	}
	path, err := jobscript.Write(r.cfg.ScriptDir, r.cfg.Scheduler, j, perm)
	if err != nil {
		return api.ManifestV1{}, err
	}
	r.log.Info("wrote job script", "kind", string(j.Kind), "ref_id", j.RefID, "path", path)
	return api.ManifestV1{Script: path, RefID: j.RefID}, nil
}
