package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Seno", 10, "Seno"},
		{"exact", "Seno", 4, "Seno"},
		{"ascii", "Logaritmo", 5, "Loga…"},
		{"accented runes count as one column", "Potência de base", 9, "Potência…"},
		{"wide runes", "三角関数", 5, "三角…"},
		{"zero width", "Seno", 0, ""},
		{"room for ellipsis only", "Seno", 1, "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if tt.width > 0 && VisualWidth(got) > tt.width {
				t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.width, VisualWidth(got))
			}
		})
	}
}
