package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrQuit is returned when the user types q or quit at a prompt
var ErrQuit = errors.New("user quit")

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Input prints prompt and returns one line without its newline.
// A last line without a trailing newline is still returned; after that io.EOF.
func (p *Prompter) Input(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// IntInput asks until the answer parses as an integer
func (p *Prompter) IntInput(prompt string) (int, error) {
	for {
		line, err := p.Input(prompt)
		if err != nil {
			return 0, err
		}
		answer := strings.TrimSpace(line)
		if isQuit(answer) {
			return 0, ErrQuit
		}
		value, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintf(p.out, "error: %q is not a number\nTry again...\n", answer)
			continue
		}
		return value, nil
	}
}

// YesNoInput asks until the answer is y, yes, n or no
func (p *Prompter) YesNoInput(prompt string) (bool, error) {
	for {
		line, err := p.Input(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Invalid input!")
		fmt.Fprintln(p.out, "Please only enter either yes or no...")
	}
}

func isQuit(answer string) bool {
	answer = strings.ToLower(answer)
	return answer == "q" || answer == "quit"
}
