package tabular

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/policykeeper/internal/models"
)

// EncodeCSV writes the header line followed by one line per record with
// every cell wrapped in double quotes. Cell contents are not escaped, so a
// value holding a quote or a newline does not survive a round trip.
func EncodeCSV(w io.Writer, customers []models.Customer) error {
	lines := make([]string, 0, len(customers)+1)
	lines = append(lines, strings.Join(Headers, ","))
	for _, c := range customers {
		cells := row(c)
		for i, v := range cells {
			cells[i] = `"` + v + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// DecodeCSV parses text produced by EncodeCSV or typed by hand. The first
// line is treated as a header. Blank lines are ignored; lines yielding fewer
// than 11 fields are dropped and reported in SkippedLines.
func DecodeCSV(r io.Reader, bf Backfill) (DecodeResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return DecodeResult{}, fmt.Errorf("read csv: %w", err)
	}

	var res DecodeResult
	lines := strings.Split(string(data), "\n")
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimFunc(line, isSpace) == "" {
			continue
		}
		fields := splitFields(line)
		if len(fields) < minFields {
			res.SkippedLines = append(res.SkippedLines, i+1)
			continue
		}
		c := fromFields(fields)
		bf.apply(&c)
		res.Records = append(res.Records, c)
	}
	return res, nil
}

// isSpace matches the whitespace class of browser regular expressions:
// Unicode white space plus the byte order mark, without U+0085.
func isSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// fieldEnds reports whether position i of s is followed by optional white
// space and then a comma or the end of s.
func fieldEnds(s string, i int) bool {
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == ',':
			return true
		case isSpace(r):
			i += n
		default:
			return false
		}
	}
	return true
}

// quotedAt returns the end of the shortest quoted span starting at i that is
// followed by a field end, or -1.
func quotedAt(s string, i int) int {
	for j := i + 1; j < len(s); {
		r, n := utf8.DecodeRuneInString(s[j:])
		if isLineTerminator(r) {
			return -1
		}
		if r == '"' && fieldEnds(s, j+1) {
			return j + 1
		}
		j += n
	}
	return -1
}

// bareAt returns the end of the run of characters other than quote, comma
// and white space starting at i, if that run is followed by a field end.
func bareAt(s string, i int) int {
	j := i
	for j < len(s) {
		r, n := utf8.DecodeRuneInString(s[j:])
		if r == '"' || r == ',' || isSpace(r) {
			break
		}
		j += n
	}
	if j == i || !fieldEnds(s, j) {
		return -1
	}
	return j
}

// splitFields extracts the cell values of one line. A value is either a
// quoted span or a run without quotes, commas or spaces, and it must be
// followed by a comma or the end of the line. Text matching neither is
// skipped. Quotes are removed and values trimmed.
func splitFields(line string) []string {
	var out []string
	for i := 0; i < len(line); {
		end := -1
		if line[i] == '"' {
			end = quotedAt(line, i)
		} else {
			end = bareAt(line, i)
		}
		if end < 0 {
			_, n := utf8.DecodeRuneInString(line[i:])
			i += n
			continue
		}
		v := strings.ReplaceAll(line[i:end], `"`, "")
		out = append(out, strings.TrimFunc(v, isSpace))
		i = end
	}
	return out
}
