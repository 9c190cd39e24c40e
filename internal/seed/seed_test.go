package seed

import (
	"encoding/json"
	"testing"
	"time"

	"college-assist/internal/model"
	"college-assist/internal/snapshot"
)

func TestFeesFromRecords(t *testing.T) {
	tests := []struct {
		name         string
		record       snapshot.FeeRecord
		wantCategory string
		wantTotal    float64
	}{
		{
			name: "total derived from components",
			record: snapshot.FeeRecord{
				Category:              "open",
				ProspectusFees:        200,
				TuitionFees:           10001,
				DevelopmentFees:       5045,
				TrainingPlacementFees: 2000,
				ISTEFees:              300,
				LibraryLabFees:        2000,
				StudentInsurance:      454,
			},
			wantCategory: "OPEN",
			wantTotal:    20000,
		},
		{
			name: "explicit total wins over the component sum",
			record: snapshot.FeeRecord{
				Category:    "OBC",
				TuitionFees: 5000,
				TotalFees:   snapshot.NumberPtr(4500),
			},
			wantCategory: "OBC",
			wantTotal:    4500,
		},
		{
			name:         "blank category defaults to OPEN",
			record:       snapshot.FeeRecord{Category: "  "},
			wantCategory: "OPEN",
			wantTotal:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fees := feesFromRecords([]snapshot.FeeRecord{tt.record})
			if len(fees) != 1 {
				t.Fatalf("got %d rows, want 1", len(fees))
			}
			if fees[0].Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", fees[0].Category, tt.wantCategory)
			}
			if fees[0].TotalFees != tt.wantTotal {
				t.Errorf("total = %v, want %v", fees[0].TotalFees, tt.wantTotal)
			}
		})
	}
}

func TestDocumentsFromRecords(t *testing.T) {
	records := []snapshot.DocumentRecord{
		{DocumentName: "10th Marksheet"},
		{DocumentName: "Aadhar Card", DisplayOrder: snapshot.NewIndex(7)},
		{
			AdmissionType: "10th",
			DocumentName:  "Migration Certificate",
			IsRequired:    newFlag(t, `"no"`),
		},
	}
	docs := documentsFromRecords(records)
	if len(docs) != 3 {
		t.Fatalf("got %d rows, want 3", len(docs))
	}
	if docs[0].AdmissionType != "12th" {
		t.Errorf("admission type = %q, want default 12th", docs[0].AdmissionType)
	}
	if docs[0].DisplayOrder != 1 {
		t.Errorf("fallback order = %d, want 1-based position 1", docs[0].DisplayOrder)
	}
	if docs[1].DisplayOrder != 7 {
		t.Errorf("explicit order = %d, want 7", docs[1].DisplayOrder)
	}
	if !docs[0].IsRequired {
		t.Error("unspecified is_required should default to true")
	}
	if docs[2].IsRequired {
		t.Error(`"no" should parse as not required`)
	}
}

// Hand-edited snapshots sometimes carry words instead of numbers in
// display_order; those rows keep their list position like absent ones do.
func TestDocumentOrderUnparsableFallsBackToPosition(t *testing.T) {
	raw := []byte(`{"documents": [
		{"document_name": "10th Marksheet", "display_order": "first"},
		{"document_name": "12th Marksheet", "display_order": "second"}
	]}`)
	var doc snapshot.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	docs := documentsFromRecords(doc.Documents)
	if len(docs) != 2 {
		t.Fatalf("got %d rows, want 2", len(docs))
	}
	if docs[0].DisplayOrder != 1 || docs[1].DisplayOrder != 2 {
		t.Errorf("orders = %d,%d, want 1-based positions 1,2",
			docs[0].DisplayOrder, docs[1].DisplayOrder)
	}
}

func TestFeeScheduleFromDocument(t *testing.T) {
	t.Run("singleton preferred", func(t *testing.T) {
		doc := snapshot.Document{
			HostelFees: &snapshot.HostelFeeRecord{HostelFeesPerSemester: 12000, MessFeesPerMonth: 3000},
			Hostel: []snapshot.HostelFacilityRecord{
				{FacilityName: "Wi-Fi", HostelFeesPerSemester: snapshot.NumberPtr(99)},
			},
		}
		schedule := feeScheduleFromDocument(doc)
		if schedule == nil {
			t.Fatal("got nil schedule")
		}
		if schedule.HostelFeesPerSemester != 12000 || schedule.MessFeesPerMonth != 3000 {
			t.Errorf("got %v/%v, want 12000/3000",
				schedule.HostelFeesPerSemester, schedule.MessFeesPerMonth)
		}
	})

	t.Run("legacy facility fields", func(t *testing.T) {
		doc := snapshot.Document{
			Hostel: []snapshot.HostelFacilityRecord{
				{FacilityName: "Study Room"},
				{FacilityName: "Mess/Canteen", MessFeesPerMonth: snapshot.NumberPtr(2200)},
			},
		}
		schedule := feeScheduleFromDocument(doc)
		if schedule == nil {
			t.Fatal("got nil schedule")
		}
		if schedule.MessFeesPerMonth != 2200 {
			t.Errorf("mess fees = %v, want 2200", schedule.MessFeesPerMonth)
		}
		if schedule.HostelFeesPerSemester != 10000 {
			t.Errorf("hostel fees = %v, want default 10000", schedule.HostelFeesPerSemester)
		}
	})

	t.Run("no fee data falls back to defaults", func(t *testing.T) {
		doc := snapshot.Document{
			Hostel: []snapshot.HostelFacilityRecord{{FacilityName: "RO Water"}},
		}
		schedule := feeScheduleFromDocument(doc)
		if schedule == nil {
			t.Fatal("got nil schedule")
		}
		if schedule.HostelFeesPerSemester != 10000 || schedule.MessFeesPerMonth != 2500 {
			t.Errorf("got %v/%v, want defaults 10000/2500",
				schedule.HostelFeesPerSemester, schedule.MessFeesPerMonth)
		}
	})

	// A missing or corrupt snapshot seeds from an empty document; the
	// schedule still has to come out with the default charges.
	t.Run("empty document yields defaults", func(t *testing.T) {
		schedule := feeScheduleFromDocument(snapshot.Document{})
		if schedule == nil {
			t.Fatal("got nil schedule")
		}
		if schedule.HostelFeesPerSemester != 10000 || schedule.MessFeesPerMonth != 2500 {
			t.Errorf("got %v/%v, want defaults 10000/2500",
				schedule.HostelFeesPerSemester, schedule.MessFeesPerMonth)
		}
	})
}

func TestFacultyDefaults(t *testing.T) {
	members := facultyFromRecords([]snapshot.FacultyRecord{
		{Name: "Prof. S. R. Kulkarni", Department: "Computer"},
		{},
	})
	if got, want := members[0].Email, "ps@gpambajogai.ac.in"; got != want {
		t.Errorf("email = %q, want %q", got, want)
	}
	if members[1].Name != "Faculty Member" {
		t.Errorf("name = %q, want placeholder", members[1].Name)
	}
	if members[1].Designation != "Lecturer" {
		t.Errorf("designation = %q, want Lecturer", members[1].Designation)
	}
}

func TestEventsFromRecords(t *testing.T) {
	fixed := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	now := func() time.Time { return fixed }

	events := eventsFromRecords([]snapshot.EventRecord{
		{EventName: "Tech Symposium", EventDate: "2026-10-05"},
		{EventName: "Sports Meet", EventDate: "not-a-date"},
		{},
	}, now)

	if got := events[0].EventDate.Format(snapshot.DateLayout); got != "2026-10-05" {
		t.Errorf("parsed date = %s, want 2026-10-05", got)
	}
	if !events[1].EventDate.Equal(fixed) {
		t.Errorf("unparsable date should fall back to now, got %v", events[1].EventDate)
	}
	if events[2].Description != "College Event at the college campus." {
		t.Errorf("description = %q", events[2].Description)
	}
}

// Snapshot round trip: rows out of the store, through JSON, back into rows.
func TestSnapshotRoundTrip(t *testing.T) {
	data := snapshot.Data{
		Fees: []model.FeeStructure{{
			Category:       "OPEN",
			TuitionFees:    10001,
			ProspectusFees: 200,
			TotalFees:      10201,
		}},
		Documents: []model.AdmissionDocument{
			{AdmissionType: "12th", DocumentName: "10th Marksheet", IsRequired: true, DisplayOrder: 1},
		},
		HostelFees: &model.HostelFeeSchedule{HostelFeesPerSemester: 10000, MessFeesPerMonth: 2500},
		Events: []model.Event{{
			EventName: "Annual Cultural Fest",
			EventType: "Cultural",
			EventDate: time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
			IsActive:  true,
		}},
		CollegeTimings: &model.CollegeTiming{OpeningTime: "09:00 AM", ClosingTime: "05:00 PM"},
	}

	raw, err := json.Marshal(snapshot.BuildDocument(data))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc snapshot.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	fees := feesFromRecords(doc.Fees)
	if len(fees) != 1 || fees[0].TotalFees != 10201 {
		t.Fatalf("fees after round trip = %+v", fees)
	}
	docs := documentsFromRecords(doc.Documents)
	if len(docs) != 1 || !docs[0].IsRequired || docs[0].DisplayOrder != 1 {
		t.Fatalf("documents after round trip = %+v", docs)
	}
	schedule := feeScheduleFromDocument(doc)
	if schedule == nil || schedule.MessFeesPerMonth != 2500 {
		t.Fatalf("fee schedule after round trip = %+v", schedule)
	}
	events := eventsFromRecords(doc.Events, time.Now)
	if len(events) != 1 || events[0].EventDate.Format(snapshot.DateLayout) != "2026-12-20" {
		t.Fatalf("events after round trip = %+v", events)
	}
	timing := collegeTimingFromRecord(doc.CollegeTimings)
	if timing == nil || timing.OpeningTime != "09:00 AM" {
		t.Fatalf("college timings after round trip = %+v", timing)
	}
}

// Hand-edited snapshots show up with string numbers and yes/no flags; the
// decode path has to shrug all of that off.
func TestTolerantDecode(t *testing.T) {
	raw := []byte(`{
		"fees": [{"category": "open", "tuition_fees": "10001", "prospectus_fees": "garbage"}],
		"library_books": [{"category": "Physics", "book_count": "100", "is_active": "Yes"}],
		"documents": [{"document_name": "Photos", "is_required": "no", "display_order": "3"}]
	}`)
	var doc snapshot.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	fees := feesFromRecords(doc.Fees)
	if fees[0].TuitionFees != 10001 {
		t.Errorf("tuition = %v, want 10001 from string", fees[0].TuitionFees)
	}
	if fees[0].ProspectusFees != 0 {
		t.Errorf("prospectus = %v, want 0 for garbage input", fees[0].ProspectusFees)
	}
	books := booksFromRecords(doc.LibraryBooks)
	if books[0].BookCount != 100 || !books[0].IsActive {
		t.Errorf("book = %+v, want count 100 active", books[0])
	}
	docs := documentsFromRecords(doc.Documents)
	if docs[0].IsRequired || docs[0].DisplayOrder != 3 {
		t.Errorf("document = %+v, want optional with order 3", docs[0])
	}
}

func TestDefaultFeesSumToTwentyThousand(t *testing.T) {
	fees := feesFromRecords(defaultFees())
	if len(fees) != 1 {
		t.Fatalf("got %d default fee rows, want 1", len(fees))
	}
	if fees[0].TotalFees != 20000 {
		t.Errorf("default total = %v, want 20000", fees[0].TotalFees)
	}
}

func newFlag(t *testing.T, raw string) snapshot.Flag {
	t.Helper()
	var f snapshot.Flag
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		t.Fatalf("flag %s: %v", raw, err)
	}
	return f
}
