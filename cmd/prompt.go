package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/finance"
)

// Prompter asks questions on an output and reads the answers, one per line,
// from an input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints the question and returns the next line of input, without its
// end of line. It returns io.EOF when the input is exhausted.
func (p *Prompter) Line(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask asks the question until validate accepts the answer, explaining each
// rejection. It only gives up when the input is exhausted.
func Ask[T any](p *Prompter, question string, validate func(string) (T, error)) (T, error) {
	for {
		line, err := p.Line(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := validate(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, explain(err))
	}
}

// explain returns the message shown to the user for a rejected answer.
func explain(err error) string {
	switch {
	case errors.Is(err, finance.ErrInvalidDate):
		return "Invalid date format. Please enter the date in dd-mm-yyyy"
	case errors.Is(err, finance.ErrNonPositiveAmount):
		return "Amount must be greater than 0"
	case errors.Is(err, finance.ErrInvalidAmount), errors.Is(err, finance.ErrEmptyInput):
		return "Invalid amount. Please enter a number"
	case errors.Is(err, finance.ErrInvalidCategory):
		return "Invalid category. Please enter I for income or E for expense"
	default:
		return err.Error()
	}
}
