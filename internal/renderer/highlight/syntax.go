package highlight

import (
	"path/filepath"
	"sort"
	"strings"
)

// Flags toggles optional scanner rules for a profile.
type Flags uint8

const (
	// HighlightNumbers enables numeric literal classification.
	HighlightNumbers Flags = 1 << iota
	// HighlightStrings enables quoted string classification.
	HighlightStrings
)

// Type2Marker is the trailing marker that moves a keyword into Keyword2.
const Type2Marker = "|"

// Profile describes how one file type is highlighted. A profile is treated
// as read-only once registered.
type Profile struct {
	// FileType is the display name shown in the status bar.
	FileType string

	// FileMatch patterns: ".ext" matches the extension exactly, anything
	// else matches as a substring of the file name.
	FileMatch []string

	// Keywords are Keyword1 words. An entry ending in Type2Marker is
	// treated as a Keyword2 word.
	Keywords []string

	// Types are Keyword2 words.
	Types []string

	LineComment       string
	BlockCommentStart string
	BlockCommentEnd   string

	Flags Flags

	table []keyword
}

type keyword struct {
	text  []byte
	class Class
}

// compile builds the keyword table, longest words first so that the first
// hit during a scan is the longest match.
func (p *Profile) compile() {
	p.table = p.table[:0]
	add := func(word string, class Class) {
		if word == "" {
			return
		}
		p.table = append(p.table, keyword{text: []byte(word), class: class})
	}
	for _, kw := range p.Keywords {
		if strings.HasSuffix(kw, Type2Marker) {
			add(strings.TrimSuffix(kw, Type2Marker), Keyword2)
			continue
		}
		add(kw, Keyword1)
	}
	for _, kw := range p.Types {
		add(kw, Keyword2)
	}
	sort.SliceStable(p.table, func(i, j int) bool {
		return len(p.table[i].text) > len(p.table[j].text)
	})
}

// hasBlockComments reports whether both block comment tokens are set.
func (p *Profile) hasBlockComments() bool {
	return p.BlockCommentStart != "" && p.BlockCommentEnd != ""
}

// Matches reports whether filename selects this profile.
func (p *Profile) Matches(filename string) bool {
	if filename == "" {
		return false
	}
	ext := filepath.Ext(filename)
	for _, pattern := range p.FileMatch {
		if pattern == "" {
			continue
		}
		if strings.HasPrefix(pattern, ".") {
			if ext == pattern {
				return true
			}
			continue
		}
		if strings.Contains(filename, pattern) {
			return true
		}
	}
	return false
}

// Database is an ordered collection of profiles. Selection is first match
// wins, in registration order.
type Database struct {
	profiles []*Profile
}

// NewDatabase creates a database seeded with the built-in profiles.
func NewDatabase() *Database {
	db := &Database{}
	for _, p := range Builtins() {
		db.Register(p)
	}
	return db
}

// Register adds p, replacing any profile with the same FileType in place.
// Profiles with no FileType are ignored.
func (db *Database) Register(p *Profile) {
	if p == nil || p.FileType == "" {
		return
	}
	p.compile()
	for i, existing := range db.profiles {
		if existing.FileType == p.FileType {
			db.profiles[i] = p
			return
		}
	}
	db.profiles = append(db.profiles, p)
}

// Select returns the first profile matching filename, or nil.
func (db *Database) Select(filename string) *Profile {
	for _, p := range db.profiles {
		if p.Matches(filename) {
			return p
		}
	}
	return nil
}

// Lookup returns the profile registered under fileType, or nil.
func (db *Database) Lookup(fileType string) *Profile {
	for _, p := range db.profiles {
		if p.FileType == fileType {
			return p
		}
	}
	return nil
}

// Len returns the number of registered profiles.
func (db *Database) Len() int {
	return len(db.profiles)
}

// Builtins returns fresh copies of the built-in profiles.
func Builtins() []*Profile {
	return []*Profile{
		{
			FileType:  "c",
			FileMatch: []string{".c", ".h", ".cpp", ".hpp", ".cc"},
			Keywords: []string{
				"switch", "if", "while", "for", "break", "continue", "return", "else",
				"struct", "union", "typedef", "static", "enum", "class", "case",
				"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
				"void|",
			},
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Flags:             HighlightNumbers | HighlightStrings,
		},
		{
			FileType:  "go",
			FileMatch: []string{".go"},
			Keywords: []string{
				"break", "case", "chan", "const", "continue", "default", "defer", "else",
				"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
				"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
			},
			Types: []string{
				"bool", "byte", "complex64", "complex128", "error", "float32", "float64",
				"int", "int8", "int16", "int32", "int64", "rune", "string", "uint",
				"uint8", "uint16", "uint32", "uint64", "uintptr", "any",
			},
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Flags:             HighlightNumbers | HighlightStrings,
		},
	}
}
