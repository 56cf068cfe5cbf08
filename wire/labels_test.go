package wire

import "testing"

func TestErrorLabel(t *testing.T) {
	tests := []struct {
		code uint8
		want string
	}{
		{0, "Success"},
		{3, "BadWindow"},
		{17, "BadImplementation"},
		{18, "18"},   // first code past the table
		{200, "200"}, // extension error
		{255, "255"},
	}
	for _, tt := range tests {
		if got := ErrorLabel(tt.code); got != tt.want {
			t.Errorf("ErrorLabel(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestRequestLabel(t *testing.T) {
	tests := []struct {
		code uint8
		want string
	}{
		{0, "None"},
		{1, "CreateWindow"},
		{16, "InternAtom"},
		{20, "GetProperty"},
		{74, "PolyText"},
		{75, "PolyText"},
		{76, "ImageText"},
		{77, "ImageText"},
		{119, "GetModifierMapping"},
		{120, "major 120"},
		{126, "major 126"},
		{127, "NoOperation"},
		{128, "128"}, // first extension opcode
		{200, "200"},
	}
	for _, tt := range tests {
		if got := RequestLabel(tt.code); got != tt.want {
			t.Errorf("RequestLabel(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestLabelTableSizes(t *testing.T) {
	if len(errorLabels) != 18 {
		t.Errorf("error table has %d entries, want 18", len(errorLabels))
	}
	if len(requestLabels) != 128 {
		t.Errorf("request table has %d entries, want 128", len(requestLabels))
	}
}
