package app

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "marksheet.pdf", "marksheet.pdf"},
		{"path traversal stripped", "../../etc/passwd.pdf", "passwd.pdf"},
		{"spaces and unicode replaced", "my file ₹.pdf", "my_file__.pdf"},
		{"empty falls back", "", "upload.pdf"},
		{"dot only", ".", "upload.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.in); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
