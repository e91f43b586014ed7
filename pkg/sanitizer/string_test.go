package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "Alice Smith", "Alice Smith"},
		{"surrounding whitespace", "  Alice Smith  ", "Alice Smith"},
		{"internal runs", "Alice \t \n Smith", "Alice Smith"},
		{"control characters", "Alice\x00Smith", "AliceSmith"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"unicode preserved", "José Álvarez", "José Álvarez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	if got := NormalizeLabel("  Electric "); got != "electric" {
		t.Errorf("NormalizeLabel = %q, want %q", got, "electric")
	}
}
