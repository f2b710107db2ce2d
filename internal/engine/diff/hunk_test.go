package diff

import (
	"strings"
	"testing"
)

func TestHunkFormat_Textual(t *testing.T) {
	d, err := Parse(utilGoLines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := d.Hunks[0].Format()
	want := "util.go\n" + strings.Join(utilGoLines[4:], "\n")
	if got != want {
		t.Errorf("unexpected preview:\n got %q\nwant %q", got, want)
	}
}

func TestHunkFormat_Deleted(t *testing.T) {
	d, err := Parse(deletedLines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := d.Hunks[0].Format()
	if !strings.HasPrefix(got, "Removed file: gone.txt\n") {
		t.Errorf("expected 'Removed file: ' prefix, got %q", got)
	}
	if !strings.Contains(got, "-line one") {
		t.Errorf("expected hunk lines in preview, got %q", got)
	}
}

func TestHunkFormat_BinaryShowsOnlyTitle(t *testing.T) {
	d, err := Parse(binaryLines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := d.Hunks[0].Format()
	if got != "Binary file changed: logo.png" {
		t.Errorf("expected only the binary title, got %q", got)
	}
}

func TestHunkTitle_DeletedBinary(t *testing.T) {
	h := &Hunk{Binary: true}
	d := &Diff{Header: &Header{Path: "a.bin", Deleted: true}, Hunks: []*Hunk{h}}
	h.diff = d

	if got := h.Title(); got != "Binary file changed: Removed file: a.bin" {
		t.Errorf("unexpected title %q", got)
	}
}

func TestHunkSelect_MarksOwner(t *testing.T) {
	d, err := Parse(mainGoLines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Keep {
		t.Fatal("fresh diff should not be kept")
	}

	d.Hunks[1].Select()

	if !d.Hunks[1].Keep {
		t.Error("expected hunk to be kept")
	}
	if d.Hunks[0].Keep {
		t.Error("sibling hunk must stay unkept")
	}
	if !d.Keep {
		t.Error("expected owning diff to be kept")
	}
}
