package healthcheck

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter decides what happens to a flagged file.
type Prompter interface {
	// Review returns true when the file should be deleted.
	Review(issue Issue) (bool, error)
}

// AutoConfirm deletes every flagged file without asking. Non-interactive
// runs use it so batch cleanups still happen without a terminal.
type AutoConfirm struct{}

func (AutoConfirm) Review(issue Issue) (bool, error) {
	return true, nil
}

// ConsolePrompter reviews issues over a terminal. Open launches the configured
// external viewer so the operator can eyeball a file before deciding.
type ConsolePrompter struct {
	In   io.Reader
	Out  io.Writer
	Open func(path string) error

	scanner *bufio.Scanner
}

// Review prints the issue and reads a decision. Enter keeps the file, d
// deletes it, v opens it in the viewer and asks again.
func (p *ConsolePrompter) Review(issue Issue) (bool, error) {
	fmt.Fprintf(p.Out, "\n%s\n  issue: %s", issue.Path, issue.Kind)
	if issue.Detail != "" {
		fmt.Fprintf(p.Out, " (%s)", issue.Detail)
	}
	fmt.Fprintln(p.Out)

	for {
		fmt.Fprint(p.Out, "[Enter]=keep | d=delete | v=view: ")
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return false, nil
		case "d":
			return true, nil
		case "v":
			if p.Open != nil {
				if err := p.Open(issue.Path); err != nil {
					fmt.Fprintf(p.Out, "viewer failed: %v\n", err)
				}
			}
		default:
			fmt.Fprintln(p.Out, "unrecognized choice")
		}
	}
}

func (p *ConsolePrompter) readLine() (string, error) {
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}
