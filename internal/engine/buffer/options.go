package buffer

import (
	"github.com/lemodoescoding/te/internal/renderer/highlight"
)

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithTabWidth sets the document's tab width.
func WithTabWidth(width int) Option {
	return func(d *Document) {
		if width > 0 {
			d.tabs.SetTabWidth(width)
		}
	}
}

// WithSyntax sets the initial syntax profile.
func WithSyntax(p *highlight.Profile) Option {
	return func(d *Document) {
		d.syntax = p
	}
}
