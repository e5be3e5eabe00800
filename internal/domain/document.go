package domain

import "strings"

// PreviewKind how an uploaded document is rendered on the preview pane
type PreviewKind string

const (
	PreviewNone  PreviewKind = "none"
	PreviewPDF   PreviewKind = "pdf"
	PreviewImage PreviewKind = "image"
)

// PreviewKindForFile decides the preview mode from the file name.
// Unknown extensions fall back to the pdf/iframe path, as the UI does.
func PreviewKindForFile(name string) PreviewKind {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return PreviewPDF
	case strings.HasSuffix(lower, ".png"),
		strings.HasSuffix(lower, ".jpg"),
		strings.HasSuffix(lower, ".jpeg"),
		strings.HasSuffix(lower, ".webp"):
		return PreviewImage
	default:
		return PreviewPDF
	}
}

// Document is one upload slot of the document step.
// FileHandle, when non-empty, is an exclusively-owned blob store handle
// that must be released exactly once on replace, removal or teardown.
type Document struct {
	Key        string
	Title      string
	Required   bool
	DocType    string
	RefID      string
	FileName   string
	FileHandle string
}

// HasFile reports whether a file is attached to this document slot
func (d *Document) HasFile() bool {
	return d.FileHandle != ""
}
