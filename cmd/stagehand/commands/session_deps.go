package commands

// LineReader reads one line of free text after printing a label.
type LineReader interface {
	Line(label string) (string, error)
}
