package ui

// ExportedMsg reports the outcome of a PDF export
type ExportedMsg struct {
	Path string
	Err  error
}
