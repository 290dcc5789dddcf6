// internal/mapping/table.go
package mapping

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"liftprep/internal/diag"
	"liftprep/internal/fileio"
)

// Entry is one source→target chromosome pair.
type Entry struct {
	Source string
	Target string
}

// Table is an insertion-ordered source→target map. Setting an existing
// source replaces its target but keeps its position.
type Table struct {
	keys []string
	m    map[string]string
}

func NewTable() *Table { return &Table{m: make(map[string]string)} }

func (t *Table) Set(source, target string) {
	if _, ok := t.m[source]; !ok {
		t.keys = append(t.keys, source)
	}
	t.m[source] = target
}

func (t *Table) Get(source string) (string, bool) {
	v, ok := t.m[source]
	return v, ok
}

func (t *Table) Len() int { return len(t.keys) }

// Entries returns the pairs in first-insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, Entry{Source: k, Target: t.m[k]})
	}
	return out
}

// ParseTable reads a two-column comma-separated file, one pair per line.
func ParseTable(path string) (*Table, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadTable(rc, path)
}

// ReadTable parses r; name is used in error messages. A later duplicate
// source wins.
func ReadTable(r io.Reader, name string) (*Table, error) {
	t := NewTable()
	br := bufio.NewReader(r)
	ln := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, diag.WrapIO(err)
		}
		if len(line) > 0 {
			ln++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			f := strings.Split(line, ",")
			if len(f) != 2 {
				return nil, &diag.FormatError{
					Path: name,
					Line: ln,
					Msg:  fmt.Sprintf("want 2 comma-separated fields, got %d", len(f)),
				}
			}
			t.Set(f[0], f[1])
		}
		if err == io.EOF {
			return t, nil
		}
	}
}
