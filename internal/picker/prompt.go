package picker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned by a Prompter when no more input can be read.
var ErrInputClosed = errors.New("input closed")

// Prompter asks a question and returns the user's reply without its line
// terminator.
type Prompter interface {
	Ask(question string) (string, error)
}

// LinePrompter reads one line of input per question.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a Prompter that writes questions to out and reads
// replies from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and reads the reply. A final line without a newline is
// still returned; ErrInputClosed is returned only when nothing was read.
func (p *LinePrompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading reply: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var _ Prompter = (*LinePrompter)(nil)
