package uroman

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jusunglee/uroman/internal/textio"
)

// FileOptions configures line-oriented romanization.
type FileOptions struct {
	LCode         string
	Format        RomFormat
	DecodeUnicode bool
}

// maxLine bounds a single input line at 4 MiB.
const maxLine = 4 * 1024 * 1024

// RomanizeFile splits r into lines, romanizes each line independently, and
// writes one output line per input line: the romanized text for FormatStr,
// a JSON edge array otherwise. The engine itself has no notion of lines;
// this is the I/O collaborator around it.
func (u *Uroman) RomanizeFile(r io.Reader, w io.Writer, opts FileOptions) error {
	if !opts.Format.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, opts.Format)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	bw := bufio.NewWriter(w)

	for scanner.Scan() {
		line := scanner.Text()
		if opts.DecodeUnicode {
			line = textio.DecodeEscapes(line)
		}
		res, err := u.RomanizeWithFormat(line, opts.LCode, opts.Format)
		if err != nil {
			return fmt.Errorf("romanizing line: %w", err)
		}
		if _, err := bw.WriteString(res.String()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return bw.Flush()
}
