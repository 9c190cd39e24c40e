package seed

import (
	"strings"
	"time"

	"college-assist/internal/model"
	"college-assist/internal/snapshot"
)

// The builders turn snapshot records into insertable rows. They are total:
// missing fields get defaults, unparsable numbers coerce to the documented
// fallbacks, and no input shape aborts the category.

func feesFromRecords(records []snapshot.FeeRecord) []model.FeeStructure {
	fees := make([]model.FeeStructure, 0, len(records))
	for _, record := range records {
		category := strings.ToUpper(strings.TrimSpace(record.Category))
		if category == "" {
			category = "OPEN"
		}
		fee := model.FeeStructure{
			Category:              category,
			ProspectusFees:        record.ProspectusFees.Float(),
			TuitionFees:           record.TuitionFees.Float(),
			DevelopmentFees:       record.DevelopmentFees.Float(),
			TrainingPlacementFees: record.TrainingPlacementFees.Float(),
			ISTEFees:              record.ISTEFees.Float(),
			LibraryLabFees:        record.LibraryLabFees.Float(),
			StudentInsurance:      record.StudentInsurance.Float(),
		}
		if record.TotalFees != nil {
			fee.TotalFees = record.TotalFees.Float()
		} else {
			fee.TotalFees = fee.ComponentSum()
		}
		fees = append(fees, fee)
	}
	return fees
}

func documentsFromRecords(records []snapshot.DocumentRecord) []model.AdmissionDocument {
	docs := make([]model.AdmissionDocument, 0, len(records))
	for index, record := range records {
		admissionType := record.AdmissionType
		if admissionType == "" {
			admissionType = "12th"
		}
		docs = append(docs, model.AdmissionDocument{
			AdmissionType: admissionType,
			DocumentName:  record.DocumentName,
			IsRequired:    record.IsRequired.Or(true),
			// Absent and unparsable orders fall back to the 1-based position.
			DisplayOrder: record.DisplayOrder.Or(index + 1),
		})
	}
	return docs
}

func booksFromRecords(records []snapshot.LibraryBookRecord) []model.LibraryBook {
	books := make([]model.LibraryBook, 0, len(records))
	for _, record := range records {
		category := record.Category
		if category == "" {
			category = "General"
		}
		books = append(books, model.LibraryBook{
			Category:  category,
			BookCount: int(record.BookCount.Float()),
			IsActive:  record.IsActive.Or(true),
		})
	}
	return books
}

func libraryTimingFromRecord(record *snapshot.LibraryTimingsRecord) *model.LibraryTiming {
	if record == nil {
		return nil
	}
	return &model.LibraryTiming{
		IssueStartTime:  orDefault(record.IssueStartTime, "10:00 AM"),
		IssueEndTime:    orDefault(record.IssueEndTime, "05:30 PM"),
		ReturnStartTime: orDefault(record.ReturnStartTime, "10:00 AM"),
		ReturnEndTime:   orDefault(record.ReturnEndTime, "05:30 PM"),
		LunchBreakStart: orDefault(record.LunchBreakStart, "01:00 PM"),
		LunchBreakEnd:   orDefault(record.LunchBreakEnd, "02:00 PM"),
	}
}

func facilitiesFromRecords(records []snapshot.HostelFacilityRecord) []model.HostelFacility {
	facilities := make([]model.HostelFacility, 0, len(records))
	for _, record := range records {
		name := record.FacilityName
		if name == "" {
			name = "Facility"
		}
		facilities = append(facilities, model.HostelFacility{
			FacilityName: name,
			IsAvailable:  record.IsAvailable.Or(true),
		})
	}
	return facilities
}

// feeScheduleFromDocument prefers the hostel_fees singleton; snapshots
// written before the fee schedule split carried the charges on every
// facility row, so the first row with fee fields still counts. A document
// with no fee information at all yields the default schedule, otherwise a
// defaults-only seed would leave the hostel fees at zero.
func feeScheduleFromDocument(doc snapshot.Document) *model.HostelFeeSchedule {
	if doc.HostelFees != nil {
		return &model.HostelFeeSchedule{
			HostelFeesPerSemester: doc.HostelFees.HostelFeesPerSemester.Float(),
			MessFeesPerMonth:      doc.HostelFees.MessFeesPerMonth.Float(),
		}
	}

	defaults := defaultHostelFees()
	schedule := &model.HostelFeeSchedule{
		HostelFeesPerSemester: defaults.HostelFeesPerSemester.Float(),
		MessFeesPerMonth:      defaults.MessFeesPerMonth.Float(),
	}
	for _, facility := range doc.Hostel {
		if facility.HostelFeesPerSemester != nil || facility.MessFeesPerMonth != nil {
			if facility.HostelFeesPerSemester != nil {
				schedule.HostelFeesPerSemester = facility.HostelFeesPerSemester.Float()
			}
			if facility.MessFeesPerMonth != nil {
				schedule.MessFeesPerMonth = facility.MessFeesPerMonth.Float()
			}
			break
		}
	}
	return schedule
}

func scholarshipsFromRecords(records []snapshot.ScholarshipRecord) []model.Scholarship {
	scholarships := make([]model.Scholarship, 0, len(records))
	for _, record := range records {
		scholarships = append(scholarships, model.Scholarship{
			ScholarshipName:   orDefault(record.ScholarshipName, "Scholarship"),
			Category:          orDefault(record.Category, "GENERAL"),
			Amount:            orDefault(record.Amount, "As per govt norms"),
			Eligibility:       orDefault(record.Eligibility, "Based on government eligibility criteria."),
			DocumentsRequired: orDefault(record.DocumentsRequired, "Application form, caste certificate, income proof."),
			IsActive:          record.IsActive.Or(true),
		})
	}
	return scholarships
}

func facultyFromRecords(records []snapshot.FacultyRecord) []model.FacultyMember {
	members := make([]model.FacultyMember, 0, len(records))
	for _, record := range records {
		name := orDefault(record.Name, "Faculty Member")
		members = append(members, model.FacultyMember{
			Name:           name,
			Department:     orDefault(record.Department, "General"),
			Designation:    orDefault(record.Designation, "Lecturer"),
			SubjectsTaught: record.SubjectsTaught,
			Contact:        orDefault(record.Contact, "+91-8888888888"),
			Email:          orDefault(record.Email, facultySlug(name)+"@gpambajogai.ac.in"),
			PhotoURL:       orDefault(record.PhotoURL, "https://via.placeholder.com/150"),
		})
	}
	return members
}

// facultySlug builds a short mailbox name from the first letters of the
// first two name parts.
func facultySlug(name string) string {
	var slug strings.Builder
	parts := strings.Fields(name)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	for _, part := range parts {
		slug.WriteString(strings.ToLower(part[:1]))
	}
	if slug.Len() == 0 {
		return "faculty"
	}
	return slug.String()
}

func principalFromRecord(record *snapshot.PrincipalRecord) *model.PrincipalInfo {
	if record == nil {
		return nil
	}
	return &model.PrincipalInfo{
		Name:         record.Name,
		Education:    record.Education,
		Achievements: record.Achievements,
		Medals:       record.Medals,
		Contact:      record.Contact,
		Email:        record.Email,
		PhotoURL:     record.PhotoURL,
	}
}

func eventsFromRecords(records []snapshot.EventRecord, now func() time.Time) []model.Event {
	events := make([]model.Event, 0, len(records))
	for _, record := range records {
		name := orDefault(record.EventName, "College Event")
		date := snapshot.ParseEventDate(record.EventDate)
		if date.IsZero() {
			date = now()
		}
		description := record.Description
		if description == "" {
			description = name + " at the college campus."
		}
		events = append(events, model.Event{
			EventName:   name,
			EventType:   orDefault(record.EventType, "General"),
			EventDate:   date,
			Description: description,
			IsActive:    record.IsActive.Or(true),
		})
	}
	return events
}

func collegeTimingFromRecord(record *snapshot.CollegeTimingsRecord) *model.CollegeTiming {
	if record == nil {
		return nil
	}
	return &model.CollegeTiming{
		OpeningTime:     orDefault(record.OpeningTime, "09:00 AM"),
		ClosingTime:     orDefault(record.ClosingTime, "05:00 PM"),
		SaturdayOpening: orDefault(record.SaturdayOpening, "09:00 AM"),
		SaturdayClosing: orDefault(record.SaturdayClosing, "01:00 PM"),
	}
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
