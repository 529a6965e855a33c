package organize

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ActionKind enumerates the terminal decisions for a source folder.
type ActionKind int

const (
	ActionAccept ActionKind = iota
	ActionRename
	ActionUngroup
	ActionSkip
)

func (a ActionKind) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionRename:
		return "rename"
	case ActionUngroup:
		return "ungroup"
	case ActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Decision is the terminal outcome for one folder. Name carries the folder
// name to file under; it differs from the original only for renames.
type Decision struct {
	Action ActionKind
	Name   string
}

// Review describes a classified folder awaiting an operator decision.
type Review struct {
	Path      string
	Name      string
	Target    Bucket
	FileCount int
}

// Decider produces a terminal decision for a reviewed folder. Implementations
// may interact with an operator; tests inject scripted ones.
type Decider interface {
	Decide(review Review) (Decision, error)
}

// AutoAccept is the non-interactive decider: every folder is accepted under
// its original name.
type AutoAccept struct{}

func (AutoAccept) Decide(review Review) (Decision, error) {
	return Decision{Action: ActionAccept, Name: review.Name}, nil
}

// ConsoleDecider prompts the operator on a line-based channel. The view
// command re-prompts without consuming a decision, so the operator can
// inspect the folder before committing.
type ConsoleDecider struct {
	In   io.Reader
	Out  io.Writer
	Open func(path string) error

	scanner *bufio.Scanner
}

func (d *ConsoleDecider) Decide(review Review) (Decision, error) {
	if d.scanner == nil {
		d.scanner = bufio.NewScanner(d.In)
	}

	fmt.Fprintf(d.Out, "\nFolder: %s\n", review.Name)
	fmt.Fprintf(d.Out, "Target: %s/\n", review.Target)
	fmt.Fprintf(d.Out, "Files: %d\n", review.FileCount)

	for {
		fmt.Fprint(d.Out, "[Enter]=accept | r=rename | u=ungroup | s=skip | v=view: ")
		line, err := d.readLine()
		if err != nil {
			return Decision{}, err
		}
		input := strings.TrimSpace(line)

		switch strings.ToLower(input) {
		case "":
			return Decision{Action: ActionAccept, Name: review.Name}, nil
		case "r":
			fmt.Fprint(d.Out, "New folder name: ")
			name, err := d.readLine()
			if err != nil {
				return Decision{}, err
			}
			name = strings.TrimSpace(name)
			if name == "" {
				name = review.Name
			}
			return Decision{Action: ActionRename, Name: name}, nil
		case "u":
			return Decision{Action: ActionUngroup, Name: review.Name}, nil
		case "s":
			return Decision{Action: ActionSkip, Name: review.Name}, nil
		case "v":
			if d.Open != nil {
				if err := d.Open(review.Path); err != nil {
					fmt.Fprintf(d.Out, "  [!] Could not open folder: %v\n", err)
				}
			}
			continue
		default:
			// Anything else is a direct new-name entry.
			return Decision{Action: ActionRename, Name: input}, nil
		}
	}
}

func (d *ConsoleDecider) readLine() (string, error) {
	if d.scanner.Scan() {
		return d.scanner.Text(), nil
	}
	if err := d.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
