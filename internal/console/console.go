package console

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// ErrClosed is returned once the input has no more tokens.
var ErrClosed = errors.New("input closed")

// Console reads whitespace separated tokens, so several answers may be given
// on one line.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	title *color.Color
	fail  *color.Color
}

func New(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{
		in:    scanner,
		out:   out,
		title: color.New(color.FgCyan, color.Bold),
		fail:  color.New(color.FgRed),
	}
}

func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) Title(text string) {
	c.title.Fprintln(c.out, text)
}

func (c *Console) Error(text string) {
	c.fail.Fprintln(c.out, text)
}

func (c *Console) Token() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "Failed to read input")
		}
		return "", ErrClosed
	}
	return c.in.Text(), nil
}

// Prompt writes prompt and waits for the next token.
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	return c.Token()
}

func (c *Console) PromptUint(prompt string) (uint, bool, error) {
	token, err := c.Prompt(prompt)
	if err != nil {
		return 0, false, err
	}
	value, err := strconv.ParseUint(token, 10, 0)
	if err != nil {
		return 0, false, nil
	}
	return uint(value), true, nil
}

func (c *Console) PromptFloat(prompt string) (float64, bool, error) {
	token, err := c.Prompt(prompt)
	if err != nil {
		return 0, false, err
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, nil
	}
	return value, true, nil
}
