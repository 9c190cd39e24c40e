package app

import (
	"context"
	"strings"
	"time"

	"college-assist/internal/model"
	"college-assist/internal/repository"
	"college-assist/internal/snapshot"
)

// ContentService is the admin-facing write path for every content category.
// Each mutation re-syncs the snapshot file so the chatbot context and the
// seed data stay in step with the database.
type ContentService struct {
	store  *repository.Store
	syncer *snapshot.Syncer
}

func NewContentService(store *repository.Store, syncer *snapshot.Syncer) *ContentService {
	return &ContentService{store: store, syncer: syncer}
}

// Fees ----------------------------------------------------------------------

type FeeInput struct {
	Category              string
	ProspectusFees        float64
	TuitionFees           float64
	DevelopmentFees       float64
	TrainingPlacementFees float64
	ISTEFees              float64
	LibraryLabFees        float64
	StudentInsurance      float64
	TotalFees             *float64
}

type FeeUpdate struct {
	Category              *string
	ProspectusFees        *float64
	TuitionFees           *float64
	DevelopmentFees       *float64
	TrainingPlacementFees *float64
	ISTEFees              *float64
	LibraryLabFees        *float64
	StudentInsurance      *float64
	TotalFees             *float64
}

func (s *ContentService) ListFees(category string) ([]model.FeeStructure, error) {
	return s.store.Fees.List(category)
}

func (s *ContentService) CreateFee(ctx context.Context, input FeeInput) (*model.FeeStructure, error) {
	category := strings.ToUpper(strings.TrimSpace(input.Category))
	if category == "" {
		return nil, ErrInvalidInput
	}
	fee := &model.FeeStructure{
		Category:              category,
		ProspectusFees:        input.ProspectusFees,
		TuitionFees:           input.TuitionFees,
		DevelopmentFees:       input.DevelopmentFees,
		TrainingPlacementFees: input.TrainingPlacementFees,
		ISTEFees:              input.ISTEFees,
		LibraryLabFees:        input.LibraryLabFees,
		StudentInsurance:      input.StudentInsurance,
	}
	if input.TotalFees != nil && *input.TotalFees != 0 {
		fee.TotalFees = *input.TotalFees
	} else {
		fee.TotalFees = fee.ComponentSum()
	}
	if err := s.store.Fees.Create(fee); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return fee, nil
}

func (s *ContentService) UpdateFee(ctx context.Context, id uint, update FeeUpdate) (*model.FeeStructure, error) {
	fee, err := s.store.Fees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, ErrNotFound
	}

	if update.Category != nil {
		fee.Category = strings.ToUpper(strings.TrimSpace(*update.Category))
	}
	if update.ProspectusFees != nil {
		fee.ProspectusFees = *update.ProspectusFees
	}
	if update.TuitionFees != nil {
		fee.TuitionFees = *update.TuitionFees
	}
	if update.DevelopmentFees != nil {
		fee.DevelopmentFees = *update.DevelopmentFees
	}
	if update.TrainingPlacementFees != nil {
		fee.TrainingPlacementFees = *update.TrainingPlacementFees
	}
	if update.ISTEFees != nil {
		fee.ISTEFees = *update.ISTEFees
	}
	if update.LibraryLabFees != nil {
		fee.LibraryLabFees = *update.LibraryLabFees
	}
	if update.StudentInsurance != nil {
		fee.StudentInsurance = *update.StudentInsurance
	}
	if update.TotalFees != nil {
		fee.TotalFees = *update.TotalFees
	} else {
		fee.TotalFees = fee.ComponentSum()
	}

	if err := s.store.Fees.Save(fee); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return fee, nil
}

func (s *ContentService) DeleteFee(ctx context.Context, id uint) error {
	fee, err := s.store.Fees.GetByID(id)
	if err != nil {
		return err
	}
	if fee == nil {
		return ErrNotFound
	}
	if err := s.store.Fees.Delete(id); err != nil {
		return err
	}
	s.syncer.Sync(ctx)
	return nil
}

// Admission documents -------------------------------------------------------

type DocumentInput struct {
	AdmissionType string
	DocumentName  string
	IsRequired    *bool
	DisplayOrder  int
}

type DocumentUpdate struct {
	AdmissionType *string
	DocumentName  *string
	IsRequired    *bool
	DisplayOrder  *int
}

func (s *ContentService) ListDocuments(admissionType string) ([]model.AdmissionDocument, error) {
	return s.store.Documents.List(admissionType)
}

func (s *ContentService) CreateDocument(ctx context.Context, input DocumentInput) (*model.AdmissionDocument, error) {
	if strings.TrimSpace(input.AdmissionType) == "" || strings.TrimSpace(input.DocumentName) == "" {
		return nil, ErrInvalidInput
	}
	doc := &model.AdmissionDocument{
		AdmissionType: input.AdmissionType,
		DocumentName:  input.DocumentName,
		IsRequired:    true,
		DisplayOrder:  input.DisplayOrder,
	}
	if input.IsRequired != nil {
		doc.IsRequired = *input.IsRequired
	}
	if err := s.store.Documents.Create(doc); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return doc, nil
}

func (s *ContentService) UpdateDocument(ctx context.Context, id uint, update DocumentUpdate) (*model.AdmissionDocument, error) {
	doc, err := s.store.Documents.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	if update.AdmissionType != nil {
		doc.AdmissionType = *update.AdmissionType
	}
	if update.DocumentName != nil {
		doc.DocumentName = *update.DocumentName
	}
	if update.IsRequired != nil {
		doc.IsRequired = *update.IsRequired
	}
	if update.DisplayOrder != nil {
		doc.DisplayOrder = *update.DisplayOrder
	}
	if err := s.store.Documents.Save(doc); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return doc, nil
}

func (s *ContentService) DeleteDocument(ctx context.Context, id uint) error {
	doc, err := s.store.Documents.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrNotFound
	}
	if err := s.store.Documents.Delete(id); err != nil {
		return err
	}
	s.syncer.Sync(ctx)
	return nil
}

// Library -------------------------------------------------------------------

type LibraryBookInput struct {
	Category  string
	BookCount int
	IsActive  *bool
}

type LibraryBookUpdate struct {
	Category  *string
	BookCount *int
	IsActive  *bool
}

func (s *ContentService) ListLibraryBooks() ([]model.LibraryBook, error) {
	return s.store.Library.ListBooks()
}

func (s *ContentService) CreateLibraryBook(ctx context.Context, input LibraryBookInput) (*model.LibraryBook, error) {
	if strings.TrimSpace(input.Category) == "" {
		return nil, ErrInvalidInput
	}
	book := &model.LibraryBook{
		Category:  input.Category,
		BookCount: input.BookCount,
		IsActive:  true,
	}
	if input.IsActive != nil {
		book.IsActive = *input.IsActive
	}
	if err := s.store.Library.CreateBook(book); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return book, nil
}

func (s *ContentService) UpdateLibraryBook(ctx context.Context, id uint, update LibraryBookUpdate) (*model.LibraryBook, error) {
	book, err := s.store.Library.GetBookByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrNotFound
	}
	if update.Category != nil {
		book.Category = *update.Category
	}
	if update.BookCount != nil {
		book.BookCount = *update.BookCount
	}
	if update.IsActive != nil {
		book.IsActive = *update.IsActive
	}
	if err := s.store.Library.SaveBook(book); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return book, nil
}

func (s *ContentService) DeleteLibraryBook(ctx context.Context, id uint) error {
	book, err := s.store.Library.GetBookByID(id)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrNotFound
	}
	if err := s.store.Library.DeleteBook(id); err != nil {
		return err
	}
	s.syncer.Sync(ctx)
	return nil
}

type LibraryTimingUpdate struct {
	IssueStartTime  *string
	IssueEndTime    *string
	ReturnStartTime *string
	ReturnEndTime   *string
	LunchBreakStart *string
	LunchBreakEnd   *string
}

func (s *ContentService) GetLibraryTimings() (*model.LibraryTiming, error) {
	return s.store.Library.FirstTiming()
}

// UpdateLibraryTimings upserts the singleton row, touching only the fields
// present in the update.
func (s *ContentService) UpdateLibraryTimings(ctx context.Context, update LibraryTimingUpdate) (*model.LibraryTiming, error) {
	timing, err := s.store.Library.FirstTiming()
	if err != nil {
		return nil, err
	}
	if timing == nil {
		timing = &model.LibraryTiming{}
	}
	if update.IssueStartTime != nil {
		timing.IssueStartTime = *update.IssueStartTime
	}
	if update.IssueEndTime != nil {
		timing.IssueEndTime = *update.IssueEndTime
	}
	if update.ReturnStartTime != nil {
		timing.ReturnStartTime = *update.ReturnStartTime
	}
	if update.ReturnEndTime != nil {
		timing.ReturnEndTime = *update.ReturnEndTime
	}
	if update.LunchBreakStart != nil {
		timing.LunchBreakStart = *update.LunchBreakStart
	}
	if update.LunchBreakEnd != nil {
		timing.LunchBreakEnd = *update.LunchBreakEnd
	}
	if err := s.store.Library.SaveTiming(timing); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return timing, nil
}

// Hostel --------------------------------------------------------------------

type HostelFacilityInput struct {
	FacilityName string
	IsAvailable  *bool
}

type HostelFacilityUpdate struct {
	FacilityName *string
	IsAvailable  *bool
}

type HostelFeeUpdate struct {
	HostelFeesPerSemester *float64
	MessFeesPerMonth      *float64
}

func (s *ContentService) ListHostelFacilities() ([]model.HostelFacility, error) {
	return s.store.Hostel.ListFacilities()
}

func (s *ContentService) CreateHostelFacility(ctx context.Context, input HostelFacilityInput) (*model.HostelFacility, error) {
	if strings.TrimSpace(input.FacilityName) == "" {
		return nil, ErrInvalidInput
	}
	facility := &model.HostelFacility{
		FacilityName: input.FacilityName,
		IsAvailable:  true,
	}
	if input.IsAvailable != nil {
		facility.IsAvailable = *input.IsAvailable
	}
	if err := s.store.Hostel.CreateFacility(facility); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return facility, nil
}

func (s *ContentService) UpdateHostelFacility(ctx context.Context, id uint, update HostelFacilityUpdate) (*model.HostelFacility, error) {
	facility, err := s.store.Hostel.GetFacilityByID(id)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, ErrNotFound
	}
	if update.FacilityName != nil {
		facility.FacilityName = *update.FacilityName
	}
	if update.IsAvailable != nil {
		facility.IsAvailable = *update.IsAvailable
	}
	if err := s.store.Hostel.SaveFacility(facility); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return facility, nil
}

func (s *ContentService) DeleteHostelFacility(ctx context.Context, id uint) error {
	facility, err := s.store.Hostel.GetFacilityByID(id)
	if err != nil {
		return err
	}
	if facility == nil {
		return ErrNotFound
	}
	if err := s.store.Hostel.DeleteFacility(id); err != nil {
		return err
	}
	s.syncer.Sync(ctx)
	return nil
}

func (s *ContentService) GetHostelFees() (*model.HostelFeeSchedule, error) {
	return s.store.Hostel.FirstFeeSchedule()
}

func (s *ContentService) UpdateHostelFees(ctx context.Context, update HostelFeeUpdate) (*model.HostelFeeSchedule, error) {
	fees, err := s.store.Hostel.FirstFeeSchedule()
	if err != nil {
		return nil, err
	}
	if fees == nil {
		fees = &model.HostelFeeSchedule{}
	}
	if update.HostelFeesPerSemester != nil {
		fees.HostelFeesPerSemester = *update.HostelFeesPerSemester
	}
	if update.MessFeesPerMonth != nil {
		fees.MessFeesPerMonth = *update.MessFeesPerMonth
	}
	if err := s.store.Hostel.SaveFeeSchedule(fees); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return fees, nil
}

// Scholarships --------------------------------------------------------------

type ScholarshipInput struct {
	ScholarshipName   string
	Category          string
	Amount            string
	Eligibility       string
	DocumentsRequired string
	IsActive          *bool
}

type ScholarshipUpdate struct {
	ScholarshipName   *string
	Category          *string
	Amount            *string
	Eligibility       *string
	DocumentsRequired *string
	IsActive          *bool
}

func (s *ContentService) ListScholarships(category string) ([]model.Scholarship, error) {
	return s.store.Scholarships.List(category, false)
}

func (s *ContentService) CreateScholarship(ctx context.Context, input ScholarshipInput) (*model.Scholarship, error) {
	if strings.TrimSpace(input.ScholarshipName) == "" ||
		strings.TrimSpace(input.Category) == "" ||
		strings.TrimSpace(input.Amount) == "" ||
		strings.TrimSpace(input.Eligibility) == "" {
		return nil, ErrInvalidInput
	}
	scholarship := &model.Scholarship{
		ScholarshipName:   input.ScholarshipName,
		Category:          input.Category,
		Amount:            input.Amount,
		Eligibility:       input.Eligibility,
		DocumentsRequired: input.DocumentsRequired,
		IsActive:          true,
	}
	if input.IsActive != nil {
		scholarship.IsActive = *input.IsActive
	}
	if err := s.store.Scholarships.Create(scholarship); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return scholarship, nil
}

func (s *ContentService) UpdateScholarship(ctx context.Context, id uint, update ScholarshipUpdate) (*model.Scholarship, error) {
	scholarship, err := s.store.Scholarships.GetByID(id)
	if err != nil {
		return nil, err
	}
	if scholarship == nil {
		return nil, ErrNotFound
	}
	if update.ScholarshipName != nil {
		scholarship.ScholarshipName = *update.ScholarshipName
	}
	if update.Category != nil {
		scholarship.Category = *update.Category
	}
	if update.Amount != nil {
		scholarship.Amount = *update.Amount
	}
	if update.Eligibility != nil {
		scholarship.Eligibility = *update.Eligibility
	}
	if update.DocumentsRequired != nil {
		scholarship.DocumentsRequired = *update.DocumentsRequired
	}
	if update.IsActive != nil {
		scholarship.IsActive = *update.IsActive
	}
	if err := s.store.Scholarships.Save(scholarship); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return scholarship, nil
}

func (s *ContentService) DeleteScholarship(ctx context.Context, id uint) error {
	scholarship, err := s.store.Scholarships.GetByID(id)
	if err != nil {
		return err
	}
	if scholarship == nil {
		return ErrNotFound
	}
	if err := s.store.Scholarships.Delete(id); err != nil {
		return err
	}
	s.syncer.Sync(ctx)
	return nil
}

// Faculty and principal -----------------------------------------------------

type FacultyInput struct {
	Name           string
	Department     string
	Designation    string
	SubjectsTaught string
	Contact        string
	Email          string
	PhotoURL       string
}

type FacultyUpdate struct {
	Name           *string
	Department     *string
	Designation    *string
	SubjectsTaught *string
	Contact        *string
	Email          *string
	PhotoURL       *string
}

func (s *ContentService) ListFaculty(department string) ([]model.FacultyMember, error) {
	return s.store.Faculty.List(department)
}

func (s *ContentService) CreateFaculty(ctx context.Context, input FacultyInput) (*model.FacultyMember, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Department) == "" ||
		strings.TrimSpace(input.Designation) == "" {
		return nil, ErrInvalidInput
	}
	member := &model.FacultyMember{
		Name:           input.Name,
		Department:     input.Department,
		Designation:    input.Designation,
		SubjectsTaught: input.SubjectsTaught,
		Contact:        input.Contact,
		Email:          input.Email,
		PhotoURL:       input.PhotoURL,
	}
	if err := s.store.Faculty.Create(member); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return member, nil
}

func (s *ContentService) UpdateFaculty(ctx context.Context, id uint, update FacultyUpdate) (*model.FacultyMember, error) {
	member, err := s.store.Faculty.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotFound
	}
	if update.Name != nil {
		member.Name = *update.Name
	}
	if update.Department != nil {
		member.Department = *update.Department
	}
	if update.Designation != nil {
		member.Designation = *update.Designation
	}
	if update.SubjectsTaught != nil {
		member.SubjectsTaught = *update.SubjectsTaught
	}
	if update.Contact != nil {
		member.Contact = *update.Contact
	}
	if update.Email != nil {
		member.Email = *update.Email
	}
	if update.PhotoURL != nil {
		member.PhotoURL = *update.PhotoURL
	}
	if err := s.store.Faculty.Save(member); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return member, nil
}

func (s *ContentService) DeleteFaculty(ctx context.Context, id uint) error {
	member, err := s.store.Faculty.GetByID(id)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotFound
	}
	if err := s.store.Faculty.Delete(id); err != nil {
		return err
	}
	s.syncer.Sync(ctx)
	return nil
}

type PrincipalUpdate struct {
	Name         *string
	Education    *string
	Achievements *string
	Medals       *string
	Contact      *string
	Email        *string
	PhotoURL     *string
}

func (s *ContentService) GetPrincipal() (*model.PrincipalInfo, error) {
	return s.store.Faculty.FirstPrincipal()
}

func (s *ContentService) UpdatePrincipal(ctx context.Context, update PrincipalUpdate) (*model.PrincipalInfo, error) {
	principal, err := s.store.Faculty.FirstPrincipal()
	if err != nil {
		return nil, err
	}
	if principal == nil {
		principal = &model.PrincipalInfo{}
	}
	if update.Name != nil {
		principal.Name = *update.Name
	}
	if update.Education != nil {
		principal.Education = *update.Education
	}
	if update.Achievements != nil {
		principal.Achievements = *update.Achievements
	}
	if update.Medals != nil {
		principal.Medals = *update.Medals
	}
	if update.Contact != nil {
		principal.Contact = *update.Contact
	}
	if update.Email != nil {
		principal.Email = *update.Email
	}
	if update.PhotoURL != nil {
		principal.PhotoURL = *update.PhotoURL
	}
	if err := s.store.Faculty.SavePrincipal(principal); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return principal, nil
}

// Events and college timings ------------------------------------------------

type EventInput struct {
	EventName   string
	EventType   string
	EventDate   string
	Description string
	IsActive    *bool
}

type EventUpdate struct {
	EventName   *string
	EventType   *string
	EventDate   *string
	Description *string
	IsActive    *bool
}

func (s *ContentService) ListEvents(eventType string) ([]model.Event, error) {
	return s.store.Events.List(eventType)
}

func (s *ContentService) CreateEvent(ctx context.Context, input EventInput) (*model.Event, error) {
	if strings.TrimSpace(input.EventName) == "" ||
		strings.TrimSpace(input.EventType) == "" ||
		strings.TrimSpace(input.EventDate) == "" {
		return nil, ErrInvalidInput
	}
	date := snapshot.ParseEventDate(input.EventDate)
	if date.IsZero() {
		return nil, ErrInvalidInput
	}
	event := &model.Event{
		EventName:   input.EventName,
		EventType:   input.EventType,
		EventDate:   date,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		event.IsActive = *input.IsActive
	}
	if err := s.store.Events.Create(event); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return event, nil
}

func (s *ContentService) UpdateEvent(ctx context.Context, id uint, update EventUpdate) (*model.Event, error) {
	event, err := s.store.Events.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	if update.EventName != nil {
		event.EventName = *update.EventName
	}
	if update.EventType != nil {
		event.EventType = *update.EventType
	}
	if update.EventDate != nil {
		date := snapshot.ParseEventDate(*update.EventDate)
		if date.IsZero() {
			return nil, ErrInvalidInput
		}
		event.EventDate = date
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.IsActive != nil {
		event.IsActive = *update.IsActive
	}
	if err := s.store.Events.Save(event); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return event, nil
}

func (s *ContentService) DeleteEvent(ctx context.Context, id uint) error {
	event, err := s.store.Events.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}
	if err := s.store.Events.Delete(id); err != nil {
		return err
	}
	s.syncer.Sync(ctx)
	return nil
}

type CollegeTimingUpdate struct {
	OpeningTime     *string
	ClosingTime     *string
	SaturdayOpening *string
	SaturdayClosing *string
}

func (s *ContentService) GetCollegeTimings() (*model.CollegeTiming, error) {
	return s.store.Events.FirstCollegeTiming()
}

func (s *ContentService) UpdateCollegeTimings(ctx context.Context, update CollegeTimingUpdate) (*model.CollegeTiming, error) {
	timing, err := s.store.Events.FirstCollegeTiming()
	if err != nil {
		return nil, err
	}
	if timing == nil {
		timing = &model.CollegeTiming{}
	}
	if update.OpeningTime != nil {
		timing.OpeningTime = *update.OpeningTime
	}
	if update.ClosingTime != nil {
		timing.ClosingTime = *update.ClosingTime
	}
	if update.SaturdayOpening != nil {
		timing.SaturdayOpening = *update.SaturdayOpening
	}
	if update.SaturdayClosing != nil {
		timing.SaturdayClosing = *update.SaturdayClosing
	}
	if err := s.store.Events.SaveCollegeTiming(timing); err != nil {
		return nil, err
	}
	s.syncer.Sync(ctx)
	return timing, nil
}

// Student fee payments ------------------------------------------------------

type PaymentInput struct {
	StudentName   string
	StudentID     string
	AdmissionYear string
	Category      string
	TotalFees     float64
	PaidAmount    float64
	Remaining     *float64
	PaymentDate   string
	ReceiptNumber string
	Semester      string
}

type PaymentUpdate struct {
	StudentName   *string
	StudentID     *string
	AdmissionYear *string
	Category      *string
	TotalFees     *float64
	PaidAmount    *float64
	Remaining     *float64
	PaymentDate   *string
	ReceiptNumber *string
	Semester      *string
}

func (s *ContentService) ListPayments() ([]model.StudentFeePayment, error) {
	return s.store.Payments.List()
}

func (s *ContentService) CreatePayment(ctx context.Context, input PaymentInput) (*model.StudentFeePayment, error) {
	for _, field := range []string{
		input.StudentName, input.StudentID, input.AdmissionYear,
		input.Category, input.ReceiptNumber, input.Semester,
	} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrInvalidInput
		}
	}

	remaining := input.TotalFees - input.PaidAmount
	if input.Remaining != nil {
		remaining = *input.Remaining
	}

	paymentDate := time.Now().UTC()
	if input.PaymentDate != "" {
		if parsed, err := time.Parse(time.RFC3339, input.PaymentDate); err == nil {
			paymentDate = parsed
		} else if parsed := snapshot.ParseEventDate(input.PaymentDate); !parsed.IsZero() {
			paymentDate = parsed
		}
	}

	payment := &model.StudentFeePayment{
		StudentName:     input.StudentName,
		StudentID:       input.StudentID,
		AdmissionYear:   input.AdmissionYear,
		Category:        input.Category,
		TotalFees:       input.TotalFees,
		PaidAmount:      input.PaidAmount,
		RemainingAmount: remaining,
		PaymentDate:     paymentDate,
		ReceiptNumber:   input.ReceiptNumber,
		Semester:        input.Semester,
	}
	if err := s.store.Payments.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *ContentService) UpdatePayment(ctx context.Context, id uint, update PaymentUpdate) (*model.StudentFeePayment, error) {
	payment, err := s.store.Payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrNotFound
	}
	if update.StudentName != nil {
		payment.StudentName = *update.StudentName
	}
	if update.StudentID != nil {
		payment.StudentID = *update.StudentID
	}
	if update.AdmissionYear != nil {
		payment.AdmissionYear = *update.AdmissionYear
	}
	if update.Category != nil {
		payment.Category = *update.Category
	}
	if update.TotalFees != nil {
		payment.TotalFees = *update.TotalFees
	}
	if update.PaidAmount != nil {
		payment.PaidAmount = *update.PaidAmount
	}
	if update.Remaining != nil {
		payment.RemainingAmount = *update.Remaining
	}
	if update.PaymentDate != nil {
		if parsed, err := time.Parse(time.RFC3339, *update.PaymentDate); err == nil {
			payment.PaymentDate = parsed
		} else if parsed := snapshot.ParseEventDate(*update.PaymentDate); !parsed.IsZero() {
			payment.PaymentDate = parsed
		}
	}
	// Re-derive the balance when both sides changed and no explicit
	// remaining amount came with them.
	if update.TotalFees != nil && update.PaidAmount != nil && update.Remaining == nil {
		payment.RemainingAmount = payment.TotalFees - payment.PaidAmount
	}
	if err := s.store.Payments.Save(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *ContentService) DeletePayment(ctx context.Context, id uint) error {
	payment, err := s.store.Payments.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrNotFound
	}
	return s.store.Payments.Delete(id)
}

func (s *ContentService) FindPaymentByStudentID(studentID string) (*model.StudentFeePayment, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, ErrInvalidInput
	}
	return s.store.Payments.FirstByStudentID(studentID)
}
