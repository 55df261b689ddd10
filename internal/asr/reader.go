package asr

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"asrcli/pkg/contracts/domain"
)

// Result holds the outcome of one decode pass over a master file. Details
// and Headers preserve input order within their category.
type Result struct {
	Details   []*domain.Record
	Headers   []*domain.Record
	LinesRead int
}

// DecodeFile decodes every non-blank line of the master file at path. A
// missing input path fails before any decoding starts.
func (d *Decoder) DecodeFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	result, err := d.DecodeReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return result, nil
}

// DecodeReader decodes master file lines from r. Invalid UTF-8 bytes are
// replaced rather than rejected, blank lines are skipped (but still count
// toward LinesRead), and each remaining line is routed to exactly one
// decoder. The pass is strictly sequential and runs to completion.
func (d *Decoder) DecodeReader(r io.Reader) (*Result, error) {
	result := &Result{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		result.LinesRead++
		line := sanitizeLine(strings.TrimSuffix(scanner.Text(), "\r"))
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = d.pad(line)
		switch d.Classify(line) {
		case ClassHeader:
			result.Headers = append(result.Headers, d.DecodeHeader(line))
		default:
			result.Details = append(result.Details, d.DecodeDetail(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	slog.Info("Decode pass complete",
		slog.Int("lines_read", result.LinesRead),
		slog.Int("detail_records", len(result.Details)),
		slog.Int("header_records", len(result.Headers)))

	return result, nil
}

// sanitizeLine replaces each invalid UTF-8 byte with a single '?'. One
// placeholder byte per bad byte keeps every later field at its original
// column; a multi-byte replacement rune would shift the whole record
// layout after the corruption.
func sanitizeLine(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte('?')
			i++
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}
