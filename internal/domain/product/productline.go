package product

import "fmt"

// Line groups products. Descriptions come as plain text and optional HTML;
// the image is an opaque blob.
type Line struct {
	id              string
	textDescription string
	htmlDescription string
	image           []byte
}

// ReconstructLine rebuilds a product line from persisted state.
func ReconstructLine(id, textDescription, htmlDescription string, image []byte) (*Line, error) {
	if id == "" {
		return nil, fmt.Errorf("product line id is required")
	}
	return &Line{
		id:              id,
		textDescription: textDescription,
		htmlDescription: htmlDescription,
		image:           image,
	}, nil
}

func (l *Line) ID() string              { return l.id }
func (l *Line) TextDescription() string { return l.textDescription }
func (l *Line) HTMLDescription() string { return l.htmlDescription }
func (l *Line) Image() []byte           { return l.image }
func (l *Line) HasImage() bool          { return len(l.image) > 0 }
