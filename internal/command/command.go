// internal/command/command.go
package command

import "strings"

// LiftoffSpec holds the inputs of one liftoff run. MappingFile is optional.
type LiftoffSpec struct {
	WorkDir     string
	RefFasta    string
	TargetFasta string
	RefGFF3     string
	MappingFile string
}

// SyntenySpec holds the inputs of one liftofftools synteny run.
type SyntenySpec struct {
	RefFasta    string
	TargetFasta string
	RefGFF3     string
	TargetGFF3  string
	OutputDir   string
}

// Liftoff returns the liftoff invocation for s and the reference id.
//
//	liftoff -g REF_GFF3 -o WORK/REF_TGT.mapping.gff3 [-chroms MAP] -u WORK/REF.unmapped TGT_FA REF_FA
//
// Paths are joined with a literal "/" and not cleaned.
func Liftoff(s LiftoffSpec) (cmd, refID string) {
	refID = Stem(s.RefFasta)
	targetID := Stem(s.TargetFasta)

	args := []string{
		"liftoff",
		"-g", s.RefGFF3,
		"-o", s.WorkDir + "/" + refID + "_" + targetID + ".mapping.gff3",
	}
	if s.MappingFile != "" {
		args = append(args, "-chroms", s.MappingFile)
	}
	args = append(args,
		"-u", s.WorkDir+"/"+refID+".unmapped",
		s.TargetFasta,
		s.RefFasta,
	)
	return strings.Join(args, " "), refID
}

// Synteny returns the liftofftools synteny invocation for s. The result ends
// with a newline; it is written into job scripts verbatim.
func Synteny(s SyntenySpec) string {
	args := []string{
		"liftofftools",
		"-r", s.RefFasta,
		"-t", s.TargetFasta,
		"-rg", s.RefGFF3,
		"-tg", s.TargetGFF3,
		"-dir", s.OutputDir,
		"-edit-distance",
		"-force",
		"synteny",
	}
	return strings.Join(args, " ") + "\n"
}

// Stem returns the base name of p without its last extension. Leading dots
// do not start an extension: Stem("x/.hidden") is ".hidden".
func Stem(p string) string {
	base := p[strings.LastIndexByte(p, '/')+1:]
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || strings.Trim(base[:i], ".") == "" {
		return base
	}
	return base[:i]
}
