// Package seed populates an empty content store from a snapshot document,
// falling back to built-in defaults for any category the snapshot does not
// carry. Every category is idempotent: rows that already exist are left
// alone, so running the seeder against a populated database is a no-op.
package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"college-assist/internal/model"
	"college-assist/internal/repository"
	"college-assist/internal/snapshot"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type Seeder struct {
	store *repository.Store
	now   func() time.Time
}

func NewSeeder(store *repository.Store) *Seeder {
	return &Seeder{store: store, now: time.Now}
}

// Run seeds every category plus the bootstrap admin account. A nil document
// behaves like an empty one: every category falls back to the defaults. One
// failing category does not stop the others; the errors are joined so the
// caller sees everything that went wrong.
func (s *Seeder) Run(doc *snapshot.Document) error {
	if doc == nil {
		doc = &snapshot.Document{}
	}

	var errs []error
	step := func(name string, fn func(snapshot.Document) error) {
		if err := fn(*doc); err != nil {
			log.Error().Err(err).Str("category", name).Msg("seed category failed")
			errs = append(errs, fmt.Errorf("seed %s: %w", name, err))
		}
	}

	step("admin", func(snapshot.Document) error { return s.seedAdmin() })
	step("fees", s.seedFees)
	step("documents", s.seedDocuments)
	step("library", s.seedLibrary)
	step("hostel", s.seedHostel)
	step("scholarships", s.seedScholarships)
	step("faculty", s.seedFaculty)
	step("events", s.seedEvents)

	return errors.Join(errs...)
}

func (s *Seeder) seedAdmin() error {
	existing, err := s.store.Admins.GetByUsername(defaultAdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}
	return s.store.Admins.Create(&model.Admin{
		Username:     defaultAdminUsername,
		PasswordHash: string(hash),
	})
}

// A nil category slice means the snapshot never mentioned it, so the
// defaults apply. An empty slice is an admin who deleted every row on
// purpose; that stays empty.

func (s *Seeder) seedFees(doc snapshot.Document) error {
	count, err := s.store.Fees.Count()
	if err != nil || count > 0 {
		return err
	}
	records := doc.Fees
	if records == nil {
		records = defaultFees()
	}
	var errs []error
	for _, fee := range feesFromRecords(records) {
		fee := fee
		if err := s.store.Fees.Create(&fee); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Seeder) seedDocuments(doc snapshot.Document) error {
	count, err := s.store.Documents.Count()
	if err != nil || count > 0 {
		return err
	}
	records := doc.Documents
	if records == nil {
		records = defaultDocuments()
	}
	var errs []error
	for _, row := range documentsFromRecords(records) {
		row := row
		if err := s.store.Documents.Create(&row); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Seeder) seedLibrary(doc snapshot.Document) error {
	var errs []error

	count, err := s.store.Library.CountBooks()
	if err != nil {
		errs = append(errs, err)
	} else if count == 0 {
		records := doc.LibraryBooks
		if records == nil {
			records = defaultLibraryBooks()
		}
		for _, book := range booksFromRecords(records) {
			book := book
			if err := s.store.Library.CreateBook(&book); err != nil {
				errs = append(errs, err)
			}
		}
	}

	existing, err := s.store.Library.FirstTiming()
	if err != nil {
		errs = append(errs, err)
	} else if existing == nil {
		record := doc.LibraryTimings
		if record == nil {
			record = defaultLibraryTimings()
		}
		if timing := libraryTimingFromRecord(record); timing != nil {
			if err := s.store.Library.SaveTiming(timing); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

func (s *Seeder) seedHostel(doc snapshot.Document) error {
	var errs []error

	count, err := s.store.Hostel.CountFacilities()
	if err != nil {
		errs = append(errs, err)
	} else if count == 0 {
		records := doc.Hostel
		if records == nil {
			records = defaultHostelFacilities()
		}
		for _, facility := range facilitiesFromRecords(records) {
			facility := facility
			if err := s.store.Hostel.CreateFacility(&facility); err != nil {
				errs = append(errs, err)
			}
		}
	}

	existing, err := s.store.Hostel.FirstFeeSchedule()
	if err != nil {
		errs = append(errs, err)
	} else if existing == nil {
		if err := s.store.Hostel.SaveFeeSchedule(feeScheduleFromDocument(doc)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Seeder) seedScholarships(doc snapshot.Document) error {
	count, err := s.store.Scholarships.Count()
	if err != nil || count > 0 {
		return err
	}
	records := doc.Scholarships
	if records == nil {
		records = defaultScholarships()
	}
	var errs []error
	for _, scholarship := range scholarshipsFromRecords(records) {
		scholarship := scholarship
		if err := s.store.Scholarships.Create(&scholarship); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Seeder) seedFaculty(doc snapshot.Document) error {
	var errs []error

	count, err := s.store.Faculty.Count()
	if err != nil {
		errs = append(errs, err)
	} else if count == 0 {
		records := doc.Faculty
		if records == nil {
			records = defaultFaculty()
		}
		for _, member := range facultyFromRecords(records) {
			member := member
			if err := s.store.Faculty.Create(&member); err != nil {
				errs = append(errs, err)
			}
		}
	}

	existing, err := s.store.Faculty.FirstPrincipal()
	if err != nil {
		errs = append(errs, err)
	} else if existing == nil {
		record := doc.Principal
		if record == nil {
			record = defaultPrincipal()
		}
		if principal := principalFromRecord(record); principal != nil {
			if err := s.store.Faculty.SavePrincipal(principal); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

func (s *Seeder) seedEvents(doc snapshot.Document) error {
	var errs []error

	count, err := s.store.Events.Count()
	if err != nil {
		errs = append(errs, err)
	} else if count == 0 {
		records := doc.Events
		if records == nil {
			records = defaultEvents()
		}
		for _, event := range eventsFromRecords(records, s.now) {
			event := event
			if err := s.store.Events.Create(&event); err != nil {
				errs = append(errs, err)
			}
		}
	}

	existing, err := s.store.Events.FirstCollegeTiming()
	if err != nil {
		errs = append(errs, err)
	} else if existing == nil {
		record := doc.CollegeTimings
		if record == nil {
			record = defaultCollegeTimings()
		}
		if timing := collegeTimingFromRecord(record); timing != nil {
			if err := s.store.Events.SaveCollegeTiming(timing); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}
