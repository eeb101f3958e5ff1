// internal/params/params.go
package params

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Scoring holds the tunable scoring parameters.
type Scoring struct {
	Match    float64
	Mismatch float64
	Indel    float64
	GapGap   float64
	Global   bool
}

// Defaults mirrors the classic demo parameters.
var Defaults = Scoring{Match: 5, Mismatch: -2, Indel: -4, GapGap: 0, Global: true}

// Keys lists the recognised parameter names.
var Keys = []string{"match", "mismatch", "indel", "gapgap", "global"}

// Load reads a parameter file on top of base.
func Load(path string, base Scoring) (Scoring, error) {
	fh, err := os.Open(path)
	if err != nil {
		return base, err
	}
	defer func() { _ = fh.Close() }()
	s, err := Parse(fh, base)
	if err != nil {
		return base, errors.Wrap(err, path)
	}
	return s, nil
}

// Parse reads "key value" lines ('=' or ':' may separate them). Blank lines
// and '#' comments are skipped; later keys override earlier ones.
func Parse(r io.Reader, base Scoring) (Scoring, error) {
	s := base
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		f := strings.FieldsFunc(line, func(r rune) bool {
			return r == '=' || r == ':' || r == ' ' || r == '\t'
		})
		if len(f) != 2 {
			return base, errors.Errorf("line %d: want \"key value\", got %q", ln, line)
		}
		key, val := strings.ToLower(f[0]), f[1]
		if err := s.set(key, val); err != nil {
			return base, errors.Wrapf(err, "line %d", ln)
		}
	}
	if err := sc.Err(); err != nil {
		return base, err
	}
	return s, nil
}

func (s *Scoring) set(key, val string) error {
	if key == "global" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return errors.Errorf("bad global %q", val)
		}
		s.Global = b
		return nil
	}
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return errors.Errorf("bad %s %q", key, val)
	}
	switch key {
	case "match":
		s.Match = v
	case "mismatch":
		s.Mismatch = v
	case "indel", "gap":
		s.Indel = v
	case "gapgap", "gap-gap", "gap_gap":
		s.GapGap = v
	default:
		return errors.Errorf("unknown key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}
