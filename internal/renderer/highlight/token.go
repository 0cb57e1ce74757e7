// Package highlight classifies rendered row bytes for colorization.
package highlight

import "strings"

// Class is the semantic category assigned to one rendered byte.
type Class uint8

// Highlight classes.
const (
	Normal Class = iota
	LineComment
	BlockComment
	Keyword1
	Keyword2
	String
	Number
	SearchMatch

	classCount
)

var classNames = [classCount]string{
	Normal:       "normal",
	LineComment:  "comment",
	BlockComment: "block-comment",
	Keyword1:     "keyword1",
	Keyword2:     "keyword2",
	String:       "string",
	Number:       "number",
	SearchMatch:  "match",
}

// String returns the configuration name of the class.
func (c Class) String() string {
	if c < classCount {
		return classNames[c]
	}
	return "unknown"
}

// ParseClass looks up a class by its configuration name. Underscores are
// accepted in place of hyphens.
func ParseClass(name string) (Class, bool) {
	name = strings.ReplaceAll(name, "_", "-")
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return Normal, false
}

// Fill sets every entry of hl to c.
func Fill(hl []Class, c Class) {
	for i := range hl {
		hl[i] = c
	}
}
