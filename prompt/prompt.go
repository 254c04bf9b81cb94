package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(question string) bool
}

// Accepted reports whether an answer means yes. Only "y" counts, ignoring
// case and surrounding whitespace.
func Accepted(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// StdinConfirmer reads answers line by line from a reader.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinConfirmer creates a confirmer reading from in and printing
// questions to out.
func NewStdinConfirmer(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm implements Confirmer. A read error or end of input is a no.
func (c *StdinConfirmer) Confirm(question string) bool {
	fmt.Fprintf(c.out, "%s (y/N): ", question)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(c.out)
		return false
	}
	return Accepted(line)
}

// AutoConfirmer answers every question with the same value.
type AutoConfirmer struct {
	Answer bool
	Asked  []string // Questions received, in order
}

// Confirm implements Confirmer.
func (a *AutoConfirmer) Confirm(question string) bool {
	a.Asked = append(a.Asked, question)
	return a.Answer
}

// ScriptedConfirmer answers questions from a fixed list, then no.
type ScriptedConfirmer struct {
	Answers []bool
	Asked   []string
}

// Confirm implements Confirmer.
func (s *ScriptedConfirmer) Confirm(question string) bool {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return false
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer
}
