package view

import (
	"strings"
	"testing"
)

func TestHelpTextMatchesLetterBindings(t *testing.T) {
	got := helpText([]keyBindings{{name: "^N", descr: "Next step"}})
	if !strings.Contains(got, "Next step") {
		t.Fatalf("help %q does not list the key bindings", got)
	}
	if want := string(firstLetter) + ".." + string(lastLetter); !strings.Contains(got, want) {
		t.Fatalf("help %q does not list the letter range %q", got, want)
	}
	if strings.Contains(got, "A-Z") {
		t.Fatalf("help %q advertises a narrower range than is bound", got)
	}
}
