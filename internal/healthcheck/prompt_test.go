package healthcheck

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsolePrompterKeepOnEnter(t *testing.T) {
	p := &ConsolePrompter{In: strings.NewReader("\n"), Out: &bytes.Buffer{}}
	remove, err := p.Review(Issue{Path: "/x/a.jpg", Kind: IssueZeroByte})
	if err != nil {
		t.Fatal(err)
	}
	if remove {
		t.Fatal("enter must keep the file")
	}
}

func TestConsolePrompterDelete(t *testing.T) {
	p := &ConsolePrompter{In: strings.NewReader("d\n"), Out: &bytes.Buffer{}}
	remove, err := p.Review(Issue{Path: "/x/a.jpg", Kind: IssueZeroByte})
	if err != nil {
		t.Fatal(err)
	}
	if !remove {
		t.Fatal("d must delete the file")
	}
}

func TestConsolePrompterViewThenDecide(t *testing.T) {
	var opened []string
	p := &ConsolePrompter{
		In:  strings.NewReader("v\nd\n"),
		Out: &bytes.Buffer{},
		Open: func(path string) error {
			opened = append(opened, path)
			return nil
		},
	}
	remove, err := p.Review(Issue{Path: "/x/a.jpg", Kind: IssueCorrupted})
	if err != nil {
		t.Fatal(err)
	}
	if !remove {
		t.Fatal("decision after view lost")
	}
	if len(opened) != 1 || opened[0] != "/x/a.jpg" {
		t.Fatalf("viewer calls = %v", opened)
	}
}

func TestConsolePrompterUnrecognizedReprompts(t *testing.T) {
	var out bytes.Buffer
	p := &ConsolePrompter{In: strings.NewReader("zzz\n\n"), Out: &out}
	remove, err := p.Review(Issue{Path: "/x/a.jpg", Kind: IssueUndersized})
	if err != nil {
		t.Fatal(err)
	}
	if remove {
		t.Fatal("expected keep after reprompt")
	}
	if !strings.Contains(out.String(), "unrecognized choice") {
		t.Fatalf("missing reprompt notice:\n%s", out.String())
	}
}
