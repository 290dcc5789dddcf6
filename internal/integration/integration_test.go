// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"liftprep/internal/app"
	"liftprep/internal/version"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = app.RunContext(context.Background(), argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func readFile(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read %s: %v", p, err)
	}
	return string(b)
}

func TestChunkFastaEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "genome.fa"), ">chr1 first\nACGT\nAC\n>chr2\nGGGG\n")
	out := filepath.Join(dir, "chunks")
	if err := os.Mkdir(out, 0o755); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := run(t, "chunk-fasta", fa, out)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	want := filepath.Join(out, "chr1.fa") + "\n" + filepath.Join(out, "chr2.fa") + "\n"
	if stdout != want {
		t.Fatalf("stdout %q want %q", stdout, want)
	}
	if got := readFile(t, filepath.Join(out, "chr2.fa")); got != ">chr2\nGGGG\n" {
		t.Fatalf("chr2.fa = %q", got)
	}
	if !strings.Contains(stderr, "splitting sequence file into chunks") {
		t.Fatalf("missing progress log: %q", stderr)
	}
}

func TestChunkGFF3EndToEnd(t *testing.T) {
	dir := t.TempDir()
	gff := write(t, filepath.Join(t.TempDir(), "ann.gff3"),
		"##gff-version 3\nchr1\tsrc\tgene\t1\t9\t.\t+\t.\tID=g1\nchr2\tsrc\tgene\t1\t9\t.\t+\t.\tID=g2\nchr1\tsrc\tmRNA\t1\t9\t.\t+\t.\tID=m1\n")

	code, stdout, stderr := run(t, "chunk-gff3", "--max-open", "1", gff, dir)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if want := filepath.Join(dir, "chr1.gff3") + "\n" + filepath.Join(dir, "chr2.gff3") + "\n"; stdout != want {
		t.Fatalf("stdout %q want %q", stdout, want)
	}
	chr1 := readFile(t, filepath.Join(dir, "chr1.gff3"))
	if chr1 != "chr1\tsrc\tgene\t1\t9\t.\t+\t.\tID=g1\nchr1\tsrc\tmRNA\t1\t9\t.\t+\t.\tID=m1\n" {
		t.Fatalf("chr1.gff3 = %q", chr1)
	}

	// A second run appends and warns about it.
	code, _, stderr = run(t, "chunk-gff3", gff, dir)
	if code != 0 {
		t.Fatalf("second run exit %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "appended") {
		t.Fatalf("expected append warning, got %q", stderr)
	}
	if got := readFile(t, filepath.Join(dir, "chr1.gff3")); got != chr1+chr1 {
		t.Fatalf("second run should append, got %q", got)
	}
}

func TestChunkGFF3QuietSuppressesWarning(t *testing.T) {
	dir := t.TempDir()
	gff := write(t, filepath.Join(t.TempDir(), "ann.gff3"), "chr1\tsrc\tgene\t1\t9\t.\t+\t.\tID=g1\n")
	if code, _, stderr := run(t, "chunk-gff3", gff, dir); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	code, _, stderr := run(t, "--quiet", "chunk-gff3", gff, dir)
	if code != 0 || stderr != "" {
		t.Fatalf("quiet run: exit %d stderr %q", code, stderr)
	}
}

func TestChunkMappingEndToEnd(t *testing.T) {
	dir := t.TempDir()
	m := write(t, filepath.Join(dir, "map.csv"), "1,chr1\r\n2,chr2\r\n")

	code, stdout, stderr := run(t, "-o", "json", "chunk-mapping-file", m, dir)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	var got struct {
		Command string   `json:"command"`
		Files   []string `json:"files"`
		Created []string `json:"created_dirs"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	sub := filepath.Join(dir, "mapping_files")
	if got.Command != "chunk-mapping-file" || len(got.Files) != 2 || len(got.Created) != 1 || got.Created[0] != sub {
		t.Fatalf("manifest %+v", got)
	}
	if s := readFile(t, filepath.Join(sub, "2.mapping")); s != "2,chr2" {
		t.Fatalf("2.mapping = %q", s)
	}
}

func TestBuildLiftoffCommand(t *testing.T) {
	code, stdout, stderr := run(t, "build-liftoff-command", "work", "ref/GRCh38.fa", "tgt/CHM13.fasta", "ref/GRCh38.gff3")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	want := "liftoff -g ref/GRCh38.gff3 -o work/GRCh38_CHM13.mapping.gff3 -u work/GRCh38.unmapped tgt/CHM13.fasta ref/GRCh38.fa\n"
	if stdout != want {
		t.Fatalf("stdout %q want %q", stdout, want)
	}

	_, stdout, _ = run(t, "build-liftoff-command", "work", "r.fa", "t.fa", "r.gff3", "map.csv")
	if !strings.Contains(stdout, " -o work/r_t.mapping.gff3 -chroms map.csv -u work/r.unmapped ") {
		t.Fatalf("mapping flag misplaced: %q", stdout)
	}
}

func TestBuildLiftoffBsub(t *testing.T) {
	dir := t.TempDir()
	code, stdout, stderr := run(t, "build-liftoff-bsub", "--script-dir", dir, "--queue", "long", "--executable",
		"/w", "ref/r.fa", "t.fa", "r.gff3")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	script := filepath.Join(dir, "run-liftoff.r.sh")
	if stdout != script+"\n" {
		t.Fatalf("stdout %q", stdout)
	}
	want := "#!/usr/bin/env bash\n" +
		"#BSUB -J liftoff\n" +
		"#BSUB -W 5:00\n" +
		"#BSUB -n 1\n" +
		"#BSUB -q long\n" +
		"#BSUB -e error.%J\n" +
		"#BSUB -o output.%J\n" +
		"WORKDIR=/w\n" +
		"cd $WORKDIR\n" +
		"liftoff -g r.gff3 -o /w/r_t.mapping.gff3 -u /w/r.unmapped t.fa ref/r.fa"
	if got := readFile(t, script); got != want {
		t.Fatalf("script:\n%s\nwant:\n%s", got, want)
	}
	st, err := os.Stat(script)
	if err != nil || st.Mode().Perm()&0o100 == 0 {
		t.Fatalf("--executable not applied: %v %v", st, err)
	}
}

func TestBuildSyntenyCommandAndBsub(t *testing.T) {
	code, stdout, _ := run(t, "build-synteny-command", "r.fa", "t.fa", "r.gff3", "t.gff3", "out")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if stdout != "liftofftools -r r.fa -t t.fa -rg r.gff3 -tg t.gff3 -dir out -edit-distance -force synteny\n" {
		t.Fatalf("stdout %q", stdout)
	}

	dir := t.TempDir()
	code, stdout, stderr := run(t, "build-synteny-bsub", "--script-dir", dir, "a/r.fa", "t.fa", "r.gff3", "t.gff3", "out")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	script := filepath.Join(dir, "run-synteny.r.sh")
	if stdout != script+"\n" {
		t.Fatalf("stdout %q", stdout)
	}
	got := readFile(t, script)
	if !strings.HasSuffix(got, "spacktivate experimental-liftoff\nliftofftools -r a/r.fa -t t.fa -rg r.gff3 -tg t.gff3 -dir out/r -edit-distance -force synteny\n") {
		t.Fatalf("script:\n%s", got)
	}
}

func TestProfileFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	prof := write(t, filepath.Join(dir, "lsf.json"), `{"scheduler":{"walltime":"24:00","synteny_setup":["module load liftofftools"]}}`)
	t.Setenv("LIFTPREP_CORES", "4")

	code, _, stderr := run(t, "--config", prof, "build-synteny-bsub", "--script-dir", dir, "r.fa", "t.fa", "r.gff3", "t.gff3", "out")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	got := readFile(t, filepath.Join(dir, "run-synteny.r.sh"))
	for _, want := range []string{"#BSUB -W 24:00\n", "#BSUB -n 4\n", "\nmodule load liftofftools\nliftofftools "} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		argv []string
		code int
	}{
		{"too few args", []string{"chunk-fasta", "only-one"}, 2},
		{"too many args", []string{"build-synteny-command", "a", "b", "c", "d", "e", "f"}, 2},
		{"unknown command", []string{"chunk-bam", "x", "y"}, 2},
		{"unknown flag", []string{"chunk-fasta", "--threads", "4", "a", "b"}, 2},
		{"bad output format", []string{"-o", "tsv", "build-synteny-command", "a", "b", "c", "d", "e"}, 2},
		{"bad cores", []string{"build-liftoff-bsub", "--cores", "0", "w", "r.fa", "t.fa", "r.gff3"}, 2},
		{"missing input", []string{"chunk-fasta", filepath.Join(dir, "nope.fa"), dir}, 3},
		{"missing output dir", []string{"chunk-gff3", write(t, filepath.Join(dir, "a.gff3"), "c\t.\n"), filepath.Join(dir, "nope")}, 3},
		{"bad mapping line", []string{"chunk-mapping-file", write(t, filepath.Join(dir, "m.csv"), "1,chr1,extra\n"), dir}, 3},
		{"missing script dir", []string{"build-liftoff-bsub", "--script-dir", filepath.Join(dir, "nope"), "w", "r.fa", "t.fa", "r.gff3"}, 3},
	}
	for _, tc := range cases {
		code, _, stderr := run(t, tc.argv...)
		if code != tc.code {
			t.Errorf("%s: exit %d want %d (stderr %q)", tc.name, code, tc.code, stderr)
		}
		if !strings.Contains(stderr, "error:") {
			t.Errorf("%s: stderr lacks error message: %q", tc.name, stderr)
		}
	}
}

func TestVersionAndHelp(t *testing.T) {
	code, stdout, _ := run(t, "version")
	if code != 0 || stdout != "liftprep version "+version.Version+"\n" {
		t.Fatalf("version: %d %q", code, stdout)
	}
	code, stdout, _ = run(t, "--help")
	if code != 0 || !strings.Contains(stdout, "chunk-mapping-file") {
		t.Fatalf("help: %d %q", code, stdout)
	}
}

func TestCancelledRunExits130(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "g.fa"), ">a\nAC\n>b\nGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	if code := app.RunContext(ctx, []string{"chunk-fasta", fa, dir}, &out, &errBuf); code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d (%s)", code, errBuf.String())
	}
}
