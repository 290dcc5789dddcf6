package command

import "testing"

func TestLiftoffWithoutMapping(t *testing.T) {
	cmd, ref := Liftoff(LiftoffSpec{WorkDir: "wd", RefFasta: "ref.fa", TargetFasta: "tgt.fa", RefGFF3: "ref.gff3"})
	want := "liftoff -g ref.gff3 -o wd/ref_tgt.mapping.gff3 -u wd/ref.unmapped tgt.fa ref.fa"
	if cmd != want {
		t.Fatalf("cmd:\n%s\nwant\n%s", cmd, want)
	}
	if ref != "ref" {
		t.Fatalf("ref id %q", ref)
	}
}

func TestLiftoffWithMapping(t *testing.T) {
	cmd, _ := Liftoff(LiftoffSpec{WorkDir: "wd", RefFasta: "ref.fa", TargetFasta: "tgt.fa", RefGFF3: "ref.gff3", MappingFile: "chr.map"})
	want := "liftoff -g ref.gff3 -o wd/ref_tgt.mapping.gff3 -chroms chr.map -u wd/ref.unmapped tgt.fa ref.fa"
	if cmd != want {
		t.Fatalf("cmd:\n%s\nwant\n%s", cmd, want)
	}
}

func TestLiftoffUsesStemsOfFullPaths(t *testing.T) {
	cmd, ref := Liftoff(LiftoffSpec{
		WorkDir:     "/scratch/pike",
		RefFasta:    "/data/reference_fasta/LG01.fa",
		TargetFasta: "/data/target_fasta/1.fa",
		RefGFF3:     "/data/reference_gff3/LG01.gff3",
	})
	want := "liftoff -g /data/reference_gff3/LG01.gff3 -o /scratch/pike/LG01_1.mapping.gff3 -u /scratch/pike/LG01.unmapped /data/target_fasta/1.fa /data/reference_fasta/LG01.fa"
	if cmd != want || ref != "LG01" {
		t.Fatalf("cmd=%q ref=%q", cmd, ref)
	}
}

func TestSynteny(t *testing.T) {
	got := Synteny(SyntenySpec{RefFasta: "r.fa", TargetFasta: "t.fa", RefGFF3: "r.gff3", TargetGFF3: "t.gff3", OutputDir: "out"})
	want := "liftofftools -r r.fa -t t.fa -rg r.gff3 -tg t.gff3 -dir out -edit-distance -force synteny\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"ref.fa":            "ref",
		"dir/ref.fa":        "ref",
		"/a/b/genome.fa.gz": "genome.fa",
		"noext":             "noext",
		"dir/.hidden":       ".hidden",
		"..a.b":             "..a",
		"trailing.":         "trailing",
		"":                  "",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q)=%q want %q", in, got, want)
		}
	}
}
