package key

import "testing"

func TestModifier(t *testing.T) {
	if ModNone.HasCtrl() {
		t.Error("ModNone should not have Ctrl")
	}
	if !ModCtrl.HasCtrl() {
		t.Error("ModCtrl should have Ctrl")
	}
	if ModCtrl.HasAlt() || !ModAlt.HasAlt() {
		t.Error("HasAlt wrong")
	}

	tests := []struct {
		m    Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModAlt, "Alt"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
