package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue is returned when an enum name cannot be parsed.
var ErrUnknownValue = errors.New("unknown value")

// ContentType tags what a column displays.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
)

// TextAlign is the horizontal alignment of a text column.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Column is a content slot within a row. Edits replace it wholesale.
type Column struct {
	ID          string
	ContentType ContentType
	Text        string
	TextAlign   TextAlign
	Image       string
	ImageAlt    string
}

// Row is a horizontal section of the document.
type Row struct {
	ID      string
	Columns []Column
}

// DefaultColumn holds the field values of a freshly created column.
// Its empty ID also stands for "no column" in a Selection.
var DefaultColumn = Column{
	ContentType: ContentText,
	TextAlign:   AlignLeft,
}

func ParseContentType(s string) (ContentType, error) {
	switch ContentType(strings.ToLower(strings.TrimSpace(s))) {
	case ContentText:
		return ContentText, nil
	case ContentImage:
		return ContentImage, nil
	}
	return "", fmt.Errorf("content type %q: %w", s, ErrUnknownValue)
}

func ParseTextAlign(s string) (TextAlign, error) {
	switch TextAlign(strings.ToLower(strings.TrimSpace(s))) {
	case AlignLeft:
		return AlignLeft, nil
	case AlignCenter:
		return AlignCenter, nil
	case AlignRight:
		return AlignRight, nil
	}
	return "", fmt.Errorf("text align %q: %w", s, ErrUnknownValue)
}

// NewRow creates an empty row with a fresh id.
func NewRow(gen IDGenerator) Row {
	return Row{ID: gen.NewID(), Columns: []Column{}}
}

// NewColumn creates a default column with a fresh id.
func NewColumn(gen IDGenerator) Column {
	c := DefaultColumn
	c.ID = gen.NewID()
	return c
}
