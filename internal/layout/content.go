package layout

// Content is the per-type payload of a column: TextContent or ImageContent.
type Content interface {
	Type() ContentType
}

type TextContent struct {
	Text  string
	Align TextAlign
}

func (TextContent) Type() ContentType { return ContentText }

type ImageContent struct {
	URL string
	Alt string
}

func (ImageContent) Type() ContentType { return ContentImage }

// Content returns the payload selected by the column's content type.
// Unknown types are treated as text.
func (c Column) Content() Content {
	if c.ContentType == ContentImage {
		return ImageContent{URL: c.Image, Alt: c.ImageAlt}
	}
	return TextContent{Text: c.Text, Align: c.TextAlign}
}

// WithType switches the tag without touching any payload field, so switching
// back restores the other case.
func (c Column) WithType(t ContentType) Column {
	c.ContentType = t
	return c
}

func (c Column) WithText(text string) Column {
	c.Text = text
	return c
}

func (c Column) WithAlign(a TextAlign) Column {
	c.TextAlign = a
	return c
}

func (c Column) WithImage(url string) Column {
	c.Image = url
	return c
}

func (c Column) WithImageAlt(alt string) Column {
	c.ImageAlt = alt
	return c
}
