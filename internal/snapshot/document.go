// Package snapshot serializes the content tables into a single JSON
// document and back. The document seeds an empty database and feeds the
// chatbot's context window; the database stays authoritative, the snapshot
// is a regenerable artifact. Internal ids and volatile timestamps are never
// part of it.
package snapshot

import (
	"time"

	"college-assist/internal/model"
)

// DateLayout is how event dates appear inside the document.
const DateLayout = "2006-01-02"

// Document is the serialized form of every content category. Singleton
// categories are pointers; nil marshals to JSON null, the absent marker.
type Document struct {
	Fees           []FeeRecord            `json:"fees"`
	Documents      []DocumentRecord       `json:"documents"`
	LibraryBooks   []LibraryBookRecord    `json:"library_books"`
	LibraryTimings *LibraryTimingsRecord  `json:"library_timings"`
	Hostel         []HostelFacilityRecord `json:"hostel"`
	HostelFees     *HostelFeeRecord       `json:"hostel_fees"`
	Scholarships   []ScholarshipRecord    `json:"scholarships"`
	Faculty        []FacultyRecord        `json:"faculty"`
	Principal      *PrincipalRecord       `json:"principal"`
	Events         []EventRecord          `json:"events"`
	CollegeTimings *CollegeTimingsRecord  `json:"college_timings"`
}

type FeeRecord struct {
	Category              string  `json:"category"`
	ProspectusFees        Number  `json:"prospectus_fees"`
	TuitionFees           Number  `json:"tuition_fees"`
	DevelopmentFees       Number  `json:"development_fees"`
	TrainingPlacementFees Number  `json:"training_placement_fees"`
	ISTEFees              Number  `json:"iste_fees"`
	LibraryLabFees        Number  `json:"library_lab_fees"`
	StudentInsurance      Number  `json:"student_insurance"`
	TotalFees             *Number `json:"total_fees,omitempty"`
}

// ComponentSum is the default total when total_fees is absent.
func (r FeeRecord) ComponentSum() float64 {
	return r.ProspectusFees.Float() +
		r.TuitionFees.Float() +
		r.DevelopmentFees.Float() +
		r.TrainingPlacementFees.Float() +
		r.ISTEFees.Float() +
		r.LibraryLabFees.Float() +
		r.StudentInsurance.Float()
}

type DocumentRecord struct {
	AdmissionType string `json:"admission_type"`
	DocumentName  string `json:"document_name"`
	IsRequired    Flag   `json:"is_required"`
	DisplayOrder  Index  `json:"display_order"`
}

type LibraryBookRecord struct {
	Category  string `json:"category"`
	BookCount Number `json:"book_count"`
	IsActive  Flag   `json:"is_active"`
}

type LibraryTimingsRecord struct {
	IssueStartTime  string `json:"issue_start_time"`
	IssueEndTime    string `json:"issue_end_time"`
	ReturnStartTime string `json:"return_start_time"`
	ReturnEndTime   string `json:"return_end_time"`
	LunchBreakStart string `json:"lunch_break_start"`
	LunchBreakEnd   string `json:"lunch_break_end"`
}

// HostelFacilityRecord keeps the legacy per-facility fee fields readable so
// snapshots written before the fee schedule split still seed correctly.
// They are never written back.
type HostelFacilityRecord struct {
	FacilityName          string  `json:"facility_name"`
	IsAvailable           Flag    `json:"is_available"`
	HostelFeesPerSemester *Number `json:"hostel_fees_per_semester,omitempty"`
	MessFeesPerMonth      *Number `json:"mess_fees_per_month,omitempty"`
}

type HostelFeeRecord struct {
	HostelFeesPerSemester Number `json:"hostel_fees_per_semester"`
	MessFeesPerMonth      Number `json:"mess_fees_per_month"`
}

type ScholarshipRecord struct {
	ScholarshipName   string `json:"scholarship_name"`
	Category          string `json:"category"`
	Amount            string `json:"amount"`
	Eligibility       string `json:"eligibility"`
	DocumentsRequired string `json:"documents_required"`
	IsActive          Flag   `json:"is_active"`
}

type FacultyRecord struct {
	Name           string `json:"name"`
	Department     string `json:"department"`
	Designation    string `json:"designation"`
	SubjectsTaught string `json:"subjects_taught"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	PhotoURL       string `json:"photo_url"`
}

type PrincipalRecord struct {
	Name         string `json:"name"`
	Education    string `json:"education"`
	Achievements string `json:"achievements"`
	Medals       string `json:"medals"`
	Contact      string `json:"contact"`
	Email        string `json:"email"`
	PhotoURL     string `json:"photo_url"`
}

type EventRecord struct {
	EventName   string `json:"event_name"`
	EventType   string `json:"event_type"`
	EventDate   string `json:"event_date"`
	Description string `json:"description"`
	IsActive    Flag   `json:"is_active"`
}

type CollegeTimingsRecord struct {
	OpeningTime     string `json:"opening_time"`
	ClosingTime     string `json:"closing_time"`
	SaturdayOpening string `json:"saturday_opening"`
	SaturdayClosing string `json:"saturday_closing"`
}

// Data is the live-store content a Document is built from.
type Data struct {
	Fees           []model.FeeStructure
	Documents      []model.AdmissionDocument
	LibraryBooks   []model.LibraryBook
	LibraryTimings *model.LibraryTiming
	Hostel         []model.HostelFacility
	HostelFees     *model.HostelFeeSchedule
	Scholarships   []model.Scholarship
	Faculty        []model.FacultyMember
	Principal      *model.PrincipalInfo
	Events         []model.Event
	CollegeTimings *model.CollegeTiming
}

// BuildDocument converts live rows into the serializable document, category
// by category. The field lists here are the contract for what leaves the
// database: no ids, no created/updated timestamps.
func BuildDocument(d Data) Document {
	doc := Document{
		Fees:         make([]FeeRecord, 0, len(d.Fees)),
		Documents:    make([]DocumentRecord, 0, len(d.Documents)),
		LibraryBooks: make([]LibraryBookRecord, 0, len(d.LibraryBooks)),
		Hostel:       make([]HostelFacilityRecord, 0, len(d.Hostel)),
		Scholarships: make([]ScholarshipRecord, 0, len(d.Scholarships)),
		Faculty:      make([]FacultyRecord, 0, len(d.Faculty)),
		Events:       make([]EventRecord, 0, len(d.Events)),
	}

	for _, fee := range d.Fees {
		doc.Fees = append(doc.Fees, FeeRecord{
			Category:              fee.Category,
			ProspectusFees:        Number(fee.ProspectusFees),
			TuitionFees:           Number(fee.TuitionFees),
			DevelopmentFees:       Number(fee.DevelopmentFees),
			TrainingPlacementFees: Number(fee.TrainingPlacementFees),
			ISTEFees:              Number(fee.ISTEFees),
			LibraryLabFees:        Number(fee.LibraryLabFees),
			StudentInsurance:      Number(fee.StudentInsurance),
			TotalFees:             NumberPtr(fee.TotalFees),
		})
	}

	for _, docRow := range d.Documents {
		doc.Documents = append(doc.Documents, DocumentRecord{
			AdmissionType: docRow.AdmissionType,
			DocumentName:  docRow.DocumentName,
			IsRequired:    NewFlag(docRow.IsRequired),
			DisplayOrder:  NewIndex(docRow.DisplayOrder),
		})
	}

	for _, book := range d.LibraryBooks {
		doc.LibraryBooks = append(doc.LibraryBooks, LibraryBookRecord{
			Category:  book.Category,
			BookCount: Number(book.BookCount),
			IsActive:  NewFlag(book.IsActive),
		})
	}

	if d.LibraryTimings != nil {
		doc.LibraryTimings = &LibraryTimingsRecord{
			IssueStartTime:  d.LibraryTimings.IssueStartTime,
			IssueEndTime:    d.LibraryTimings.IssueEndTime,
			ReturnStartTime: d.LibraryTimings.ReturnStartTime,
			ReturnEndTime:   d.LibraryTimings.ReturnEndTime,
			LunchBreakStart: d.LibraryTimings.LunchBreakStart,
			LunchBreakEnd:   d.LibraryTimings.LunchBreakEnd,
		}
	}

	for _, facility := range d.Hostel {
		doc.Hostel = append(doc.Hostel, HostelFacilityRecord{
			FacilityName: facility.FacilityName,
			IsAvailable:  NewFlag(facility.IsAvailable),
		})
	}

	if d.HostelFees != nil {
		doc.HostelFees = &HostelFeeRecord{
			HostelFeesPerSemester: Number(d.HostelFees.HostelFeesPerSemester),
			MessFeesPerMonth:      Number(d.HostelFees.MessFeesPerMonth),
		}
	}

	for _, scholarship := range d.Scholarships {
		doc.Scholarships = append(doc.Scholarships, ScholarshipRecord{
			ScholarshipName:   scholarship.ScholarshipName,
			Category:          scholarship.Category,
			Amount:            scholarship.Amount,
			Eligibility:       scholarship.Eligibility,
			DocumentsRequired: scholarship.DocumentsRequired,
			IsActive:          NewFlag(scholarship.IsActive),
		})
	}

	for _, member := range d.Faculty {
		doc.Faculty = append(doc.Faculty, FacultyRecord{
			Name:           member.Name,
			Department:     member.Department,
			Designation:    member.Designation,
			SubjectsTaught: member.SubjectsTaught,
			Contact:        member.Contact,
			Email:          member.Email,
			PhotoURL:       member.PhotoURL,
		})
	}

	if d.Principal != nil {
		doc.Principal = &PrincipalRecord{
			Name:         d.Principal.Name,
			Education:    d.Principal.Education,
			Achievements: d.Principal.Achievements,
			Medals:       d.Principal.Medals,
			Contact:      d.Principal.Contact,
			Email:        d.Principal.Email,
			PhotoURL:     d.Principal.PhotoURL,
		}
	}

	for _, event := range d.Events {
		date := ""
		if !event.EventDate.IsZero() {
			date = event.EventDate.Format(DateLayout)
		}
		doc.Events = append(doc.Events, EventRecord{
			EventName:   event.EventName,
			EventType:   event.EventType,
			EventDate:   date,
			Description: event.Description,
			IsActive:    NewFlag(event.IsActive),
		})
	}

	if d.CollegeTimings != nil {
		doc.CollegeTimings = &CollegeTimingsRecord{
			OpeningTime:     d.CollegeTimings.OpeningTime,
			ClosingTime:     d.CollegeTimings.ClosingTime,
			SaturdayOpening: d.CollegeTimings.SaturdayOpening,
			SaturdayClosing: d.CollegeTimings.SaturdayClosing,
		}
	}

	return doc
}

// ParseEventDate parses a document date, trying the document layout first
// and RFC 3339 second. The zero time signals "unset" to callers.
func ParseEventDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
