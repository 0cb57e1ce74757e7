package highlight

import "testing"

func TestProfileMatches(t *testing.T) {
	p := &Profile{FileType: "x", FileMatch: []string{".c", "Makefile"}}

	tests := []struct {
		name string
		want bool
	}{
		{"main.c", true},
		{"dir/main.c", true},
		{"main.cc", false},
		{"main.c.bak", false},
		{"Makefile", true},
		{"GNUMakefile.am", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := p.Matches(tt.name); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDatabaseSelect(t *testing.T) {
	db := NewDatabase()

	if p := db.Select("prog.go"); p == nil || p.FileType != "go" {
		t.Errorf("Select(prog.go) = %v, want go profile", p)
	}
	if p := db.Select("hdr.h"); p == nil || p.FileType != "c" {
		t.Errorf("Select(hdr.h) = %v, want c profile", p)
	}
	if p := db.Select("notes.txt"); p != nil {
		t.Errorf("Select(notes.txt) = %v, want nil", p.FileType)
	}
}

func TestDatabaseFirstMatchWins(t *testing.T) {
	db := &Database{}
	db.Register(&Profile{FileType: "first", FileMatch: []string{"mk"}})
	db.Register(&Profile{FileType: "second", FileMatch: []string{".mk"}})

	if p := db.Select("rules.mk"); p.FileType != "first" {
		t.Errorf("Select = %s, want first", p.FileType)
	}
}

func TestDatabaseRegisterReplaces(t *testing.T) {
	db := NewDatabase()
	n := db.Len()

	db.Register(&Profile{FileType: "go", FileMatch: []string{".golang"}})
	if db.Len() != n {
		t.Errorf("Len() = %d after replace, want %d", db.Len(), n)
	}
	if p := db.Select("x.go"); p != nil {
		t.Error("replaced profile still matches old pattern")
	}
	if p := db.Select("x.golang"); p == nil {
		t.Error("replacement profile does not match")
	}

	db.Register(&Profile{})
	db.Register(nil)
	if db.Len() != n {
		t.Errorf("invalid profiles were registered")
	}
}
