package coerce

import "testing"

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  float64
		want float64
	}{
		{"float", 12.5, 0, 12.5},
		{"int", 200, 0, 200},
		{"numeric string", "10001", 0, 10001},
		{"numeric string with spaces", " 454 ", 0, 454},
		{"decimal string", "2500.75", 0, 2500.75},
		{"garbage string", "ten", 3, 3},
		{"empty string", "", 7, 7},
		{"nil", nil, 9, 9},
		{"bool true", true, 0, 1},
		{"unsupported type", []string{"x"}, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float(tt.in, tt.def); got != tt.want {
				t.Errorf("Float(%v, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	if got := Int("3", 0); got != 3 {
		t.Errorf("Int(\"3\", 0) = %d, want 3", got)
	}
	if got := Int("bad", 4); got != 4 {
		t.Errorf("Int(\"bad\", 4) = %d, want 4", got)
	}
	if got := Int(2.9, 0); got != 2 {
		t.Errorf("Int(2.9, 0) = %d, want 2 (truncated)", got)
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  bool
		want bool
	}{
		{"bool true", true, false, true},
		{"bool false", false, true, false},
		{"Yes", "Yes", false, true},
		{"uppercase TRUE", "TRUE", false, true},
		{"one string", "1", false, true},
		{"y", "y", false, true},
		{"no", "no", true, false},
		{"zero string", "0", true, false},
		{"empty string", "", true, false},
		{"absent defaults true", nil, true, true},
		{"absent defaults false", nil, false, false},
		{"nonzero number", 2.0, false, true},
		{"zero number", 0.0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bool(tt.in, tt.def); got != tt.want {
				t.Errorf("Bool(%v, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
			}
		})
	}
}
