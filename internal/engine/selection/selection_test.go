package selection

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func items(n int, kept []bool) []Item {
	out := make([]Item, n)
	for i := range out {
		idx := i
		out[i] = Item{
			Prompt: "Stage this hunk",
			Keep:   func() { kept[idx] = true },
		}
	}
	return out
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  Answer
		ok    bool
	}{
		{"", AnswerNo, true},
		{"n", AnswerNo, true},
		{"No", AnswerNo, true},
		{"y", AnswerYes, true},
		{" YES ", AnswerYes, true},
		{"a", AnswerAll, true},
		{"all", AnswerAll, true},
		{"d", AnswerDone, true},
		{"q", AnswerDone, true},
		{"quit", AnswerDone, true},
		{"?", AnswerNo, false},
		{"maybe", AnswerNo, false},
	}

	for _, tt := range tests {
		got, ok := ParseAnswer(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAnswer(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRun_YesAndNo(t *testing.T) {
	kept := make([]bool, 3)
	asker := &MockAsker{Answers: []Answer{AnswerYes, AnswerNo, AnswerYes}}

	res, err := Run(context.Background(), asker, items(3, kept), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []bool{true, false, true}
	for i := range want {
		if kept[i] != want[i] {
			t.Errorf("item %d: expected kept=%v, got %v", i, want[i], kept[i])
		}
	}
	if res.Kept != 2 || res.Asked != 3 {
		t.Errorf("expected kept=2 asked=3, got %+v", res)
	}
}

// Answering all on item 2 of 5 keeps items 2 to 5 without more questions.
func TestRun_AllIsAbsorbing(t *testing.T) {
	kept := make([]bool, 5)
	asker := &MockAsker{Answers: []Answer{AnswerNo, AnswerAll}}

	res, err := Run(context.Background(), asker, items(5, kept), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(asker.Prompts) != 2 {
		t.Errorf("expected exactly 2 questions, got %d", len(asker.Prompts))
	}
	want := []bool{false, true, true, true, true}
	for i := range want {
		if kept[i] != want[i] {
			t.Errorf("item %d: expected kept=%v, got %v", i, want[i], kept[i])
		}
	}
	if !res.AutoAccepted || res.Kept != 4 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestRun_DoneStops(t *testing.T) {
	kept := make([]bool, 4)
	asker := &MockAsker{Answers: []Answer{AnswerYes, AnswerDone, AnswerYes}}

	res, err := Run(context.Background(), asker, items(4, kept), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Stopped {
		t.Error("expected Stopped")
	}
	if len(asker.Prompts) != 2 {
		t.Errorf("expected 2 questions before stopping, got %d", len(asker.Prompts))
	}
	if !kept[0] || kept[1] || kept[2] || kept[3] {
		t.Errorf("unexpected kept state %v", kept)
	}
}

func TestRun_PrintsPreview(t *testing.T) {
	out := &bytes.Buffer{}
	list := []Item{{Preview: "main.go\n+added", Prompt: "Stage this hunk"}}

	if _, err := Run(context.Background(), &MockAsker{}, list, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "+added") {
		t.Errorf("expected preview in output, got %q", out.String())
	}
}

func TestRun_AskerError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(context.Background(), &MockAsker{Err: boom}, items(2, make([]bool, 2)), &bytes.Buffer{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected asker error, got %v", err)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, &MockAsker{Answers: []Answer{AnswerYes}}, items(1, make([]bool, 1)), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPrompter_Ask(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("maybe\ny\n"), out)

	answer, err := p.Ask(context.Background(), "Stage this hunk", 2, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != AnswerYes {
		t.Errorf("expected yes after re-prompt, got %v", answer)
	}
	if !strings.Contains(out.String(), "(2/7) Stage this hunk [y,n,a,d,?]? ") {
		t.Errorf("expected counter in prompt, got %q", out.String())
	}
	if !strings.Contains(out.String(), "a - all") {
		t.Errorf("expected help after unknown input, got %q", out.String())
	}
}

func TestPrompter_AskEmptyLineDefaultsToNo(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n"), &bytes.Buffer{})

	answer, err := p.Ask(context.Background(), "Stage", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != AnswerNo {
		t.Errorf("expected no, got %v", answer)
	}
}

func TestPrompter_AskEOFIsDone(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	answer, err := p.Ask(context.Background(), "Stage", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != AnswerDone {
		t.Errorf("expected done on EOF, got %v", answer)
	}
}

func TestPrompter_AskLastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("a"), &bytes.Buffer{})

	answer, err := p.Ask(context.Background(), "Stage", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != AnswerAll {
		t.Errorf("expected all, got %v", answer)
	}
}

func TestPrompter_Line(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("fix parser\r\n"), out)

	line, err := p.Line("Commit message: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "fix parser" {
		t.Errorf("expected 'fix parser', got %q", line)
	}
	if out.String() != "Commit message: " {
		t.Errorf("expected label to be printed, got %q", out.String())
	}
}
