package selection

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const helpText = `y - yes, select this item
n - no, skip this item (default)
a - all, select this item and every remaining one
d - done, stop asking and keep what was selected so far
? - print this help`

// Asker asks one question and returns the answer.
type Asker interface {
	Ask(ctx context.Context, prompt string, index, total int) (Answer, error)
}

// Prompter asks questions on a line-based terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter that reads answers from in and writes
// questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the question and reads lines until one is a valid answer.
// End of input is treated as AnswerDone.
func (p *Prompter) Ask(ctx context.Context, prompt string, index, total int) (Answer, error) {
	for {
		if err := ctx.Err(); err != nil {
			return AnswerDone, err
		}

		fmt.Fprintf(p.out, "(%d/%d) %s [y,n,a,d,?]? ", index, total, prompt)

		line, err := p.ReadLine()
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(p.out)
			return AnswerDone, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return AnswerDone, fmt.Errorf("reading answer: %w", err)
		}

		if answer, ok := ParseAnswer(line); ok {
			return answer, nil
		}
		fmt.Fprintln(p.out, helpText)
	}
}

// ReadLine reads one line of free text, such as a commit message.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

// Line prints a label and reads one line of free text.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.ReadLine()
	if errors.Is(err, io.EOF) {
		return line, nil
	}
	return line, err
}
