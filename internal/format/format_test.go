package format

import (
	"strings"
	"testing"
	"time"

	"college-assist/internal/model"
	"college-assist/internal/snapshot"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{454, "₹454.00"},
		{10001, "₹10,001.00"},
		{1234567.5, "₹1,234,567.50"},
		{-2500, "₹-2,500.00"},
	}
	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFeesSection(t *testing.T) {
	if got := FeesSection(nil); got != "No fees data available." {
		t.Errorf("empty = %q", got)
	}
	got := FeesSection([]model.FeeStructure{{
		Category:    "OPEN",
		TuitionFees: 10001,
		TotalFees:   20000,
	}})
	if !strings.HasPrefix(got, "- OPEN: Total ₹20,000.00") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "Tuition ₹10,001.00") {
		t.Errorf("missing tuition component in %q", got)
	}
}

func TestDocumentsSectionOrdering(t *testing.T) {
	docs := []model.AdmissionDocument{
		{AdmissionType: "12th", DocumentName: "C", DisplayOrder: 3, IsRequired: true},
		{AdmissionType: "Diploma", DocumentName: "Gap Certificate", DisplayOrder: 1},
		{AdmissionType: "12th", DocumentName: "A", DisplayOrder: 1, IsRequired: true},
		{AdmissionType: "12th", DocumentName: "B", DisplayOrder: 2, IsRequired: false},
	}
	got := DocumentsSection(docs)
	want := strings.Join([]string{
		"12TH:",
		"  - A (Required)",
		"  - B (Optional)",
		"  - C (Required)",
		"DIPLOMA:",
		"  - Gap Certificate (Optional)",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestLibrarySection(t *testing.T) {
	got := LibrarySection(nil, nil)
	if !strings.Contains(got, "Data not available") || !strings.Contains(got, "Timings data not available.") {
		t.Errorf("empty library = %q", got)
	}

	got = LibrarySection(
		[]model.LibraryBook{{Category: "Physics"}, {Category: "Mathematics"}},
		&model.LibraryTiming{IssueStartTime: "10:00 AM"},
	)
	if !strings.Contains(got, "Physics, Mathematics") {
		t.Errorf("categories missing in %q", got)
	}
	if !strings.Contains(got, "Issue: 10:00 AM - --") {
		t.Errorf("blank timing should render as --, got %q", got)
	}
}

func TestHostelSection(t *testing.T) {
	if got := HostelSection(nil, nil); got != "Hostel data not available." {
		t.Errorf("empty = %q", got)
	}
	got := HostelSection(
		[]model.HostelFacility{
			{FacilityName: "Wi-Fi", IsAvailable: true},
			{FacilityName: "Pool", IsAvailable: false},
		},
		&model.HostelFeeSchedule{HostelFeesPerSemester: 10000, MessFeesPerMonth: 2500},
	)
	if strings.Contains(got, "Pool") {
		t.Errorf("unavailable facility listed: %q", got)
	}
	if !strings.Contains(got, "Hostel Fees: ₹10,000.00 per semester") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "Mess Fees: ₹2,500.00 per month") {
		t.Errorf("got %q", got)
	}
}

func TestScholarshipsSection(t *testing.T) {
	if got := ScholarshipsSection(nil); got != "No scholarships available." {
		t.Errorf("empty = %q", got)
	}
	inactiveOnly := []model.Scholarship{{ScholarshipName: "Old", IsActive: false}}
	if got := ScholarshipsSection(inactiveOnly); got != "No active scholarships at the moment." {
		t.Errorf("inactive only = %q", got)
	}
	got := ScholarshipsSection([]model.Scholarship{
		{ScholarshipName: "TFWS", Category: "TFWS", Amount: "Tuition waiver", IsActive: true},
		{ScholarshipName: "Old", IsActive: false},
	})
	if strings.Contains(got, "Old") || !strings.Contains(got, "TFWS") {
		t.Errorf("got %q", got)
	}
}

func TestFacultySection(t *testing.T) {
	got := FacultySection([]model.FacultyMember{
		{Name: "Prof. S. R. Kulkarni", Designation: "HOD", Department: "Computer"},
	})
	if !strings.HasPrefix(got, "| **Name** |") {
		t.Errorf("missing table header: %q", got)
	}
	if !strings.Contains(got, "| **Prof. S. R. Kulkarni** | **HOD** | **Computer** | N/A | N/A |") {
		t.Errorf("got %q", got)
	}
}

func TestEventsSection(t *testing.T) {
	got := EventsSection([]model.Event{
		{EventName: "Tech Symposium", EventType: "Technical",
			EventDate: time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), IsActive: true},
		{EventName: "Old Fest", IsActive: false},
	})
	if !strings.Contains(got, "- Tech Symposium (Technical) on 2026-10-05 [Active]") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "- Old Fest (General) on To be announced [Inactive]") {
		t.Errorf("got %q", got)
	}
}

func TestRequiredDocumentsText(t *testing.T) {
	got := RequiredDocumentsText("12th", nil)
	if !strings.Contains(got, "No documents found for 12th admission route") {
		t.Errorf("got %q", got)
	}

	got = RequiredDocumentsText("12th", []model.AdmissionDocument{
		{DocumentName: "10th Marksheet", IsRequired: true},
		{DocumentName: "Passport Photos", IsRequired: false},
	})
	if !strings.Contains(got, "Required Documents for 12th Admission:\n- 10th Marksheet\n") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "Optional Documents:\n- Passport Photos\n") {
		t.Errorf("got %q", got)
	}
}

func TestSystemPromptContainsEverySection(t *testing.T) {
	prompt := SystemPrompt(snapshot.Data{})
	for _, heading := range []string{
		"Fees Structure:", "Admission Process:", "Library:", "Hostel:",
		"Scholarships:", "Faculty:", "Principal:", "Events:",
		"College Timings:", "INSTRUCTIONS:",
	} {
		if !strings.Contains(prompt, heading) {
			t.Errorf("prompt missing %q", heading)
		}
	}
	if !strings.Contains(prompt, "Government Polytechnic, Ambajogai") {
		t.Error("prompt missing college identity line")
	}
}

func TestKeywordAnswer(t *testing.T) {
	data := snapshot.Data{
		Fees:         []model.FeeStructure{{Category: "OPEN", TotalFees: 20000}},
		Scholarships: []model.Scholarship{{ScholarshipName: "TFWS", IsActive: true}},
	}

	t.Run("single topic", func(t *testing.T) {
		got := KeywordAnswer("What are the fees?", data)
		if !strings.Contains(got, "fee structure") || !strings.Contains(got, "₹20,000.00") {
			t.Errorf("got %q", got)
		}
	})

	t.Run("multiple topics joined", func(t *testing.T) {
		got := KeywordAnswer("tell me about fees and scholarships", data)
		if !strings.Contains(got, "fee structure") || !strings.Contains(got, "TFWS") {
			t.Errorf("got %q", got)
		}
		if !strings.Contains(got, "\n\n") {
			t.Errorf("sections should be blank-line separated: %q", got)
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		if got := KeywordAnswer("what is the meaning of life", data); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("help intent", func(t *testing.T) {
		got := KeywordAnswer("I need help with my form", data)
		if !strings.Contains(got, "help ticket") {
			t.Errorf("got %q", got)
		}
	})
}
