package repository

import (
	"gorm.io/gorm"

	"college-assist/internal/snapshot"
)

// Store bundles every repository so the snapshot codec, the seeder and the
// services share one wiring point.
type Store struct {
	Admins       *AdminRepository
	Fees         *FeeRepository
	Documents    *DocumentRepository
	Library      *LibraryRepository
	Hostel       *HostelRepository
	Scholarships *ScholarshipRepository
	Faculty      *FacultyRepository
	Events       *EventRepository
	Tickets      *TicketRepository
	Payments     *PaymentRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Admins:       NewAdminRepository(db),
		Fees:         NewFeeRepository(db),
		Documents:    NewDocumentRepository(db),
		Library:      NewLibraryRepository(db),
		Hostel:       NewHostelRepository(db),
		Scholarships: NewScholarshipRepository(db),
		Faculty:      NewFacultyRepository(db),
		Events:       NewEventRepository(db),
		Tickets:      NewTicketRepository(db),
		Payments:     NewPaymentRepository(db),
	}
}

// Content loads every chatbot-relevant category from the live store. It is
// the read path behind both snapshot exports and the chatbot context.
func (s *Store) Content() (snapshot.Data, error) {
	var (
		data snapshot.Data
		err  error
	)
	if data.Fees, err = s.Fees.List(""); err != nil {
		return snapshot.Data{}, err
	}
	if data.Documents, err = s.Documents.List(""); err != nil {
		return snapshot.Data{}, err
	}
	if data.LibraryBooks, err = s.Library.ListBooks(); err != nil {
		return snapshot.Data{}, err
	}
	if data.LibraryTimings, err = s.Library.FirstTiming(); err != nil {
		return snapshot.Data{}, err
	}
	if data.Hostel, err = s.Hostel.ListFacilities(); err != nil {
		return snapshot.Data{}, err
	}
	if data.HostelFees, err = s.Hostel.FirstFeeSchedule(); err != nil {
		return snapshot.Data{}, err
	}
	if data.Scholarships, err = s.Scholarships.List("", false); err != nil {
		return snapshot.Data{}, err
	}
	if data.Faculty, err = s.Faculty.List(""); err != nil {
		return snapshot.Data{}, err
	}
	if data.Principal, err = s.Faculty.FirstPrincipal(); err != nil {
		return snapshot.Data{}, err
	}
	if data.Events, err = s.Events.List(""); err != nil {
		return snapshot.Data{}, err
	}
	if data.CollegeTimings, err = s.Events.FirstCollegeTiming(); err != nil {
		return snapshot.Data{}, err
	}
	return data, nil
}
