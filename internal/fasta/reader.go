// internal/fasta/reader.go
package fasta

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// LineWidth is the residue count per sequence line on output.
const LineWidth = 60

// Record is a parsed FASTA entry. ID is the header up to the first blank,
// Desc the remainder.
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// Scanner reads FASTA records one at a time.
type Scanner struct {
	sc *seqio.Scanner
}

// NewScanner wraps r. Residues are kept as-is (no case folding or validation).
func NewScanner(r io.Reader) *Scanner {
	t := linear.NewSeq("", nil, alphabet.DNA)
	return &Scanner{sc: seqio.NewScanner(fasta.NewReader(r, t))}
}

// Next advances to the next record.
func (s *Scanner) Next() bool { return s.sc.Next() }

// Seq returns the current record in biogo form, ready for a fasta.Writer.
func (s *Scanner) Seq() *linear.Seq { return s.sc.Seq().(*linear.Seq) }

// Record returns the current record.
func (s *Scanner) Record() Record { return toRecord(s.Seq()) }

// Err returns the first non-EOF error.
func (s *Scanner) Err() error { return s.sc.Error() }

// ReadAll parses every record in r.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := NewScanner(r)
	var out []Record
	for sc.Next() {
		out = append(out, sc.Record())
	}
	return out, sc.Err()
}

func toRecord(s *linear.Seq) Record {
	b := make([]byte, len(s.Seq))
	for i, l := range s.Seq {
		b[i] = byte(l)
	}
	return Record{ID: s.ID, Desc: s.Desc, Seq: string(b)}
}
