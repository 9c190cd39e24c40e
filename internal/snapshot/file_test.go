package snapshot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	if doc := ReadFile(path); doc != nil {
		t.Errorf("got %+v, want nil for a missing file", doc)
	}
}

// A half-written or hand-mangled snapshot must read as absent, never as an
// error: seeding falls back to defaults instead.
func TestReadFileCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated json", `{"fees": [{"category": "OPEN",`},
		{"not json at all", "hello there"},
		{"empty file", ""},
		{"wrong top-level type", `[1, 2, 3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snap.json")
			if err := os.WriteFile(path, []byte(tt.raw), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}
			if doc := ReadFile(path); doc != nil {
				t.Errorf("got %+v, want nil for corrupt content", doc)
			}
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "snap.json")
	doc := Document{
		Fees: []FeeRecord{{Category: "OPEN", TuitionFees: 10001}},
		Documents: []DocumentRecord{{
			AdmissionType: "12th",
			DocumentName:  "10th Marksheet",
			IsRequired:    NewFlag(true),
			DisplayOrder:  NewIndex(1),
		}},
		HostelFees: &HostelFeeRecord{HostelFeesPerSemester: 10000, MessFeesPerMonth: 2500},
	}

	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := ReadFile(path)
	if got == nil {
		t.Fatal("read back nil")
	}
	if len(got.Fees) != 1 || got.Fees[0].TuitionFees.Float() != 10001 {
		t.Errorf("fees after round trip = %+v", got.Fees)
	}
	if len(got.Documents) != 1 || got.Documents[0].DisplayOrder.Or(0) != 1 {
		t.Errorf("documents after round trip = %+v", got.Documents)
	}
	if got.HostelFees == nil || got.HostelFees.MessFeesPerMonth.Float() != 2500 {
		t.Errorf("hostel fees after round trip = %+v", got.HostelFees)
	}
	if got.Principal != nil {
		t.Errorf("absent singleton came back as %+v, want nil", got.Principal)
	}
}
