package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"college-assist/internal/app"
	"college-assist/internal/transport/http/response"
)

// AdminHandler exposes the content management API. Update payloads use
// pointer fields so absent keys leave the stored value untouched.
type AdminHandler struct {
	content *app.ContentService
	tickets *app.TicketService
}

func NewAdminHandler(content *app.ContentService, tickets *app.TicketService) *AdminHandler {
	return &AdminHandler{content: content, tickets: tickets}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func serviceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, action+" failed")
	}
}

// Fees ----------------------------------------------------------------------

type feeCreateRequest struct {
	Category              string   `json:"category" binding:"required"`
	ProspectusFees        float64  `json:"prospectus_fees"`
	TuitionFees           float64  `json:"tuition_fees"`
	DevelopmentFees       float64  `json:"development_fees"`
	TrainingPlacementFees float64  `json:"training_placement_fees"`
	ISTEFees              float64  `json:"iste_fees"`
	LibraryLabFees        float64  `json:"library_lab_fees"`
	StudentInsurance      float64  `json:"student_insurance"`
	TotalFees             *float64 `json:"total_fees"`
}

type feeUpdateRequest struct {
	Category              *string  `json:"category"`
	ProspectusFees        *float64 `json:"prospectus_fees"`
	TuitionFees           *float64 `json:"tuition_fees"`
	DevelopmentFees       *float64 `json:"development_fees"`
	TrainingPlacementFees *float64 `json:"training_placement_fees"`
	ISTEFees              *float64 `json:"iste_fees"`
	LibraryLabFees        *float64 `json:"library_lab_fees"`
	StudentInsurance      *float64 `json:"student_insurance"`
	TotalFees             *float64 `json:"total_fees"`
}

func (h *AdminHandler) ListFees(c *gin.Context) {
	fees, err := h.content.ListFees(c.Query("category"))
	if err != nil {
		serviceError(c, err, "list fees")
		return
	}
	response.OK(c, fees)
}

func (h *AdminHandler) CreateFee(c *gin.Context) {
	var req feeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	fee, err := h.content.CreateFee(c.Request.Context(), app.FeeInput{
		Category:              req.Category,
		ProspectusFees:        req.ProspectusFees,
		TuitionFees:           req.TuitionFees,
		DevelopmentFees:       req.DevelopmentFees,
		TrainingPlacementFees: req.TrainingPlacementFees,
		ISTEFees:              req.ISTEFees,
		LibraryLabFees:        req.LibraryLabFees,
		StudentInsurance:      req.StudentInsurance,
		TotalFees:             req.TotalFees,
	})
	if err != nil {
		serviceError(c, err, "create fee")
		return
	}
	response.Created(c, fee)
}

func (h *AdminHandler) UpdateFee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req feeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	fee, err := h.content.UpdateFee(c.Request.Context(), id, app.FeeUpdate{
		Category:              req.Category,
		ProspectusFees:        req.ProspectusFees,
		TuitionFees:           req.TuitionFees,
		DevelopmentFees:       req.DevelopmentFees,
		TrainingPlacementFees: req.TrainingPlacementFees,
		ISTEFees:              req.ISTEFees,
		LibraryLabFees:        req.LibraryLabFees,
		StudentInsurance:      req.StudentInsurance,
		TotalFees:             req.TotalFees,
	})
	if err != nil {
		serviceError(c, err, "update fee")
		return
	}
	response.OK(c, fee)
}

func (h *AdminHandler) DeleteFee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.content.DeleteFee(c.Request.Context(), id); err != nil {
		serviceError(c, err, "delete fee")
		return
	}
	response.OK(c, gin.H{"message": "Fees structure deleted."})
}

// Admission documents -------------------------------------------------------

type documentCreateRequest struct {
	AdmissionType string `json:"admission_type" binding:"required"`
	DocumentName  string `json:"document_name" binding:"required"`
	IsRequired    *bool  `json:"is_required"`
	DisplayOrder  int    `json:"display_order"`
}

type documentUpdateRequest struct {
	AdmissionType *string `json:"admission_type"`
	DocumentName  *string `json:"document_name"`
	IsRequired    *bool   `json:"is_required"`
	DisplayOrder  *int    `json:"display_order"`
}

func (h *AdminHandler) ListDocuments(c *gin.Context) {
	docs, err := h.content.ListDocuments(c.Query("type"))
	if err != nil {
		serviceError(c, err, "list documents")
		return
	}
	response.OK(c, docs)
}

func (h *AdminHandler) CreateDocument(c *gin.Context) {
	var req documentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	doc, err := h.content.CreateDocument(c.Request.Context(), app.DocumentInput{
		AdmissionType: req.AdmissionType,
		DocumentName:  req.DocumentName,
		IsRequired:    req.IsRequired,
		DisplayOrder:  req.DisplayOrder,
	})
	if err != nil {
		serviceError(c, err, "create document")
		return
	}
	response.Created(c, doc)
}

func (h *AdminHandler) UpdateDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req documentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	doc, err := h.content.UpdateDocument(c.Request.Context(), id, app.DocumentUpdate{
		AdmissionType: req.AdmissionType,
		DocumentName:  req.DocumentName,
		IsRequired:    req.IsRequired,
		DisplayOrder:  req.DisplayOrder,
	})
	if err != nil {
		serviceError(c, err, "update document")
		return
	}
	response.OK(c, doc)
}

func (h *AdminHandler) DeleteDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.content.DeleteDocument(c.Request.Context(), id); err != nil {
		serviceError(c, err, "delete document")
		return
	}
	response.OK(c, gin.H{"message": "Document deleted."})
}

// Library -------------------------------------------------------------------

type bookCreateRequest struct {
	Category  string `json:"category" binding:"required"`
	BookCount int    `json:"book_count"`
	IsActive  *bool  `json:"is_active"`
}

type bookUpdateRequest struct {
	Category  *string `json:"category"`
	BookCount *int    `json:"book_count"`
	IsActive  *bool   `json:"is_active"`
}

type libraryTimingRequest struct {
	IssueStartTime  *string `json:"issue_start_time"`
	IssueEndTime    *string `json:"issue_end_time"`
	ReturnStartTime *string `json:"return_start_time"`
	ReturnEndTime   *string `json:"return_end_time"`
	LunchBreakStart *string `json:"lunch_break_start"`
	LunchBreakEnd   *string `json:"lunch_break_end"`
}

func (h *AdminHandler) ListLibraryBooks(c *gin.Context) {
	books, err := h.content.ListLibraryBooks()
	if err != nil {
		serviceError(c, err, "list library books")
		return
	}
	response.OK(c, books)
}

func (h *AdminHandler) CreateLibraryBook(c *gin.Context) {
	var req bookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	book, err := h.content.CreateLibraryBook(c.Request.Context(), app.LibraryBookInput{
		Category:  req.Category,
		BookCount: req.BookCount,
		IsActive:  req.IsActive,
	})
	if err != nil {
		serviceError(c, err, "create library book")
		return
	}
	response.Created(c, book)
}

func (h *AdminHandler) UpdateLibraryBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req bookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	book, err := h.content.UpdateLibraryBook(c.Request.Context(), id, app.LibraryBookUpdate{
		Category:  req.Category,
		BookCount: req.BookCount,
		IsActive:  req.IsActive,
	})
	if err != nil {
		serviceError(c, err, "update library book")
		return
	}
	response.OK(c, book)
}

func (h *AdminHandler) DeleteLibraryBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.content.DeleteLibraryBook(c.Request.Context(), id); err != nil {
		serviceError(c, err, "delete library book")
		return
	}
	response.OK(c, gin.H{"message": "Library book deleted."})
}

func (h *AdminHandler) GetLibraryTimings(c *gin.Context) {
	timings, err := h.content.GetLibraryTimings()
	if err != nil {
		serviceError(c, err, "get library timings")
		return
	}
	if timings == nil {
		response.OK(c, gin.H{})
		return
	}
	response.OK(c, timings)
}

func (h *AdminHandler) UpdateLibraryTimings(c *gin.Context) {
	var req libraryTimingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	timings, err := h.content.UpdateLibraryTimings(c.Request.Context(), app.LibraryTimingUpdate{
		IssueStartTime:  req.IssueStartTime,
		IssueEndTime:    req.IssueEndTime,
		ReturnStartTime: req.ReturnStartTime,
		ReturnEndTime:   req.ReturnEndTime,
		LunchBreakStart: req.LunchBreakStart,
		LunchBreakEnd:   req.LunchBreakEnd,
	})
	if err != nil {
		serviceError(c, err, "update library timings")
		return
	}
	response.OK(c, timings)
}

// Hostel --------------------------------------------------------------------

type facilityCreateRequest struct {
	FacilityName string `json:"facility_name" binding:"required"`
	IsAvailable  *bool  `json:"is_available"`
}

type facilityUpdateRequest struct {
	FacilityName *string `json:"facility_name"`
	IsAvailable  *bool   `json:"is_available"`
}

type hostelFeeRequest struct {
	HostelFeesPerSemester *float64 `json:"hostel_fees_per_semester"`
	MessFeesPerMonth      *float64 `json:"mess_fees_per_month"`
}

func (h *AdminHandler) ListHostelFacilities(c *gin.Context) {
	facilities, err := h.content.ListHostelFacilities()
	if err != nil {
		serviceError(c, err, "list hostel facilities")
		return
	}
	response.OK(c, facilities)
}

func (h *AdminHandler) CreateHostelFacility(c *gin.Context) {
	var req facilityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	facility, err := h.content.CreateHostelFacility(c.Request.Context(), app.HostelFacilityInput{
		FacilityName: req.FacilityName,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		serviceError(c, err, "create hostel facility")
		return
	}
	response.Created(c, facility)
}

func (h *AdminHandler) UpdateHostelFacility(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req facilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	facility, err := h.content.UpdateHostelFacility(c.Request.Context(), id, app.HostelFacilityUpdate{
		FacilityName: req.FacilityName,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		serviceError(c, err, "update hostel facility")
		return
	}
	response.OK(c, facility)
}

func (h *AdminHandler) DeleteHostelFacility(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.content.DeleteHostelFacility(c.Request.Context(), id); err != nil {
		serviceError(c, err, "delete hostel facility")
		return
	}
	response.OK(c, gin.H{"message": "Hostel facility deleted."})
}

func (h *AdminHandler) GetHostelFees(c *gin.Context) {
	fees, err := h.content.GetHostelFees()
	if err != nil {
		serviceError(c, err, "get hostel fees")
		return
	}
	if fees == nil {
		response.OK(c, gin.H{})
		return
	}
	response.OK(c, fees)
}

func (h *AdminHandler) UpdateHostelFees(c *gin.Context) {
	var req hostelFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	fees, err := h.content.UpdateHostelFees(c.Request.Context(), app.HostelFeeUpdate{
		HostelFeesPerSemester: req.HostelFeesPerSemester,
		MessFeesPerMonth:      req.MessFeesPerMonth,
	})
	if err != nil {
		serviceError(c, err, "update hostel fees")
		return
	}
	response.OK(c, fees)
}

// Scholarships --------------------------------------------------------------

type scholarshipCreateRequest struct {
	ScholarshipName   string `json:"scholarship_name" binding:"required"`
	Category          string `json:"category" binding:"required"`
	Amount            string `json:"amount" binding:"required"`
	Eligibility       string `json:"eligibility" binding:"required"`
	DocumentsRequired string `json:"documents_required"`
	IsActive          *bool  `json:"is_active"`
}

type scholarshipUpdateRequest struct {
	ScholarshipName   *string `json:"scholarship_name"`
	Category          *string `json:"category"`
	Amount            *string `json:"amount"`
	Eligibility       *string `json:"eligibility"`
	DocumentsRequired *string `json:"documents_required"`
	IsActive          *bool   `json:"is_active"`
}

func (h *AdminHandler) ListScholarships(c *gin.Context) {
	scholarships, err := h.content.ListScholarships(c.Query("category"))
	if err != nil {
		serviceError(c, err, "list scholarships")
		return
	}
	response.OK(c, scholarships)
}

func (h *AdminHandler) CreateScholarship(c *gin.Context) {
	var req scholarshipCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	scholarship, err := h.content.CreateScholarship(c.Request.Context(), app.ScholarshipInput{
		ScholarshipName:   req.ScholarshipName,
		Category:          req.Category,
		Amount:            req.Amount,
		Eligibility:       req.Eligibility,
		DocumentsRequired: req.DocumentsRequired,
		IsActive:          req.IsActive,
	})
	if err != nil {
		serviceError(c, err, "create scholarship")
		return
	}
	response.Created(c, scholarship)
}

func (h *AdminHandler) UpdateScholarship(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req scholarshipUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	scholarship, err := h.content.UpdateScholarship(c.Request.Context(), id, app.ScholarshipUpdate{
		ScholarshipName:   req.ScholarshipName,
		Category:          req.Category,
		Amount:            req.Amount,
		Eligibility:       req.Eligibility,
		DocumentsRequired: req.DocumentsRequired,
		IsActive:          req.IsActive,
	})
	if err != nil {
		serviceError(c, err, "update scholarship")
		return
	}
	response.OK(c, scholarship)
}

func (h *AdminHandler) DeleteScholarship(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.content.DeleteScholarship(c.Request.Context(), id); err != nil {
		serviceError(c, err, "delete scholarship")
		return
	}
	response.OK(c, gin.H{"message": "Scholarship deleted."})
}

// Faculty and principal -----------------------------------------------------

type facultyCreateRequest struct {
	Name           string `json:"name" binding:"required"`
	Department     string `json:"department" binding:"required"`
	Designation    string `json:"designation" binding:"required"`
	SubjectsTaught string `json:"subjects_taught"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	PhotoURL       string `json:"photo_url"`
}

type facultyUpdateRequest struct {
	Name           *string `json:"name"`
	Department     *string `json:"department"`
	Designation    *string `json:"designation"`
	SubjectsTaught *string `json:"subjects_taught"`
	Contact        *string `json:"contact"`
	Email          *string `json:"email"`
	PhotoURL       *string `json:"photo_url"`
}

type principalRequest struct {
	Name         *string `json:"name"`
	Education    *string `json:"education"`
	Achievements *string `json:"achievements"`
	Medals       *string `json:"medals"`
	Contact      *string `json:"contact"`
	Email        *string `json:"email"`
	PhotoURL     *string `json:"photo_url"`
}

func (h *AdminHandler) ListFaculty(c *gin.Context) {
	faculty, err := h.content.ListFaculty(c.Query("department"))
	if err != nil {
		serviceError(c, err, "list faculty")
		return
	}
	response.OK(c, faculty)
}

func (h *AdminHandler) CreateFaculty(c *gin.Context) {
	var req facultyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	member, err := h.content.CreateFaculty(c.Request.Context(), app.FacultyInput{
		Name:           req.Name,
		Department:     req.Department,
		Designation:    req.Designation,
		SubjectsTaught: req.SubjectsTaught,
		Contact:        req.Contact,
		Email:          req.Email,
		PhotoURL:       req.PhotoURL,
	})
	if err != nil {
		serviceError(c, err, "create faculty")
		return
	}
	response.Created(c, member)
}

func (h *AdminHandler) UpdateFaculty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req facultyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	member, err := h.content.UpdateFaculty(c.Request.Context(), id, app.FacultyUpdate{
		Name:           req.Name,
		Department:     req.Department,
		Designation:    req.Designation,
		SubjectsTaught: req.SubjectsTaught,
		Contact:        req.Contact,
		Email:          req.Email,
		PhotoURL:       req.PhotoURL,
	})
	if err != nil {
		serviceError(c, err, "update faculty")
		return
	}
	response.OK(c, member)
}

func (h *AdminHandler) DeleteFaculty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.content.DeleteFaculty(c.Request.Context(), id); err != nil {
		serviceError(c, err, "delete faculty")
		return
	}
	response.OK(c, gin.H{"message": "Faculty deleted."})
}

func (h *AdminHandler) GetPrincipal(c *gin.Context) {
	principal, err := h.content.GetPrincipal()
	if err != nil {
		serviceError(c, err, "get principal")
		return
	}
	if principal == nil {
		response.OK(c, gin.H{})
		return
	}
	response.OK(c, principal)
}

func (h *AdminHandler) UpdatePrincipal(c *gin.Context) {
	var req principalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	principal, err := h.content.UpdatePrincipal(c.Request.Context(), app.PrincipalUpdate{
		Name:         req.Name,
		Education:    req.Education,
		Achievements: req.Achievements,
		Medals:       req.Medals,
		Contact:      req.Contact,
		Email:        req.Email,
		PhotoURL:     req.PhotoURL,
	})
	if err != nil {
		serviceError(c, err, "update principal")
		return
	}
	response.OK(c, principal)
}

// Events and timings --------------------------------------------------------

type eventCreateRequest struct {
	EventName   string `json:"event_name" binding:"required"`
	EventType   string `json:"event_type" binding:"required"`
	EventDate   string `json:"event_date" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type eventUpdateRequest struct {
	EventName   *string `json:"event_name"`
	EventType   *string `json:"event_type"`
	EventDate   *string `json:"event_date"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type collegeTimingRequest struct {
	OpeningTime     *string `json:"opening_time"`
	ClosingTime     *string `json:"closing_time"`
	SaturdayOpening *string `json:"saturday_opening"`
	SaturdayClosing *string `json:"saturday_closing"`
}

func (h *AdminHandler) ListEvents(c *gin.Context) {
	events, err := h.content.ListEvents(c.Query("type"))
	if err != nil {
		serviceError(c, err, "list events")
		return
	}
	response.OK(c, events)
}

func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var req eventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	event, err := h.content.CreateEvent(c.Request.Context(), app.EventInput{
		EventName:   req.EventName,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		serviceError(c, err, "create event")
		return
	}
	response.Created(c, event)
}

func (h *AdminHandler) UpdateEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req eventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	event, err := h.content.UpdateEvent(c.Request.Context(), id, app.EventUpdate{
		EventName:   req.EventName,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		serviceError(c, err, "update event")
		return
	}
	response.OK(c, event)
}

func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.content.DeleteEvent(c.Request.Context(), id); err != nil {
		serviceError(c, err, "delete event")
		return
	}
	response.OK(c, gin.H{"message": "Event deleted."})
}

func (h *AdminHandler) GetCollegeTimings(c *gin.Context) {
	timings, err := h.content.GetCollegeTimings()
	if err != nil {
		serviceError(c, err, "get college timings")
		return
	}
	if timings == nil {
		response.OK(c, gin.H{})
		return
	}
	response.OK(c, timings)
}

func (h *AdminHandler) UpdateCollegeTimings(c *gin.Context) {
	var req collegeTimingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	timings, err := h.content.UpdateCollegeTimings(c.Request.Context(), app.CollegeTimingUpdate{
		OpeningTime:     req.OpeningTime,
		ClosingTime:     req.ClosingTime,
		SaturdayOpening: req.SaturdayOpening,
		SaturdayClosing: req.SaturdayClosing,
	})
	if err != nil {
		serviceError(c, err, "update college timings")
		return
	}
	response.OK(c, timings)
}

// Student fee payments ------------------------------------------------------

type paymentCreateRequest struct {
	StudentName   string   `json:"student_name" binding:"required"`
	StudentID     string   `json:"student_id" binding:"required"`
	AdmissionYear string   `json:"admission_year" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	TotalFees     float64  `json:"total_fees" binding:"required"`
	PaidAmount    float64  `json:"paid_amount" binding:"required"`
	Remaining     *float64 `json:"remaining_amount"`
	PaymentDate   string   `json:"payment_date"`
	ReceiptNumber string   `json:"receipt_number" binding:"required"`
	Semester      string   `json:"semester" binding:"required"`
}

type paymentUpdateRequest struct {
	StudentName   *string  `json:"student_name"`
	StudentID     *string  `json:"student_id"`
	AdmissionYear *string  `json:"admission_year"`
	Category      *string  `json:"category"`
	TotalFees     *float64 `json:"total_fees"`
	PaidAmount    *float64 `json:"paid_amount"`
	Remaining     *float64 `json:"remaining_amount"`
	PaymentDate   *string  `json:"payment_date"`
	ReceiptNumber *string  `json:"receipt_number"`
	Semester      *string  `json:"semester"`
}

func (h *AdminHandler) ListPayments(c *gin.Context) {
	payments, err := h.content.ListPayments()
	if err != nil {
		serviceError(c, err, "list student fees")
		return
	}
	response.OK(c, payments)
}

func (h *AdminHandler) CreatePayment(c *gin.Context) {
	var req paymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	payment, err := h.content.CreatePayment(c.Request.Context(), app.PaymentInput{
		StudentName:   req.StudentName,
		StudentID:     req.StudentID,
		AdmissionYear: req.AdmissionYear,
		Category:      req.Category,
		TotalFees:     req.TotalFees,
		PaidAmount:    req.PaidAmount,
		Remaining:     req.Remaining,
		PaymentDate:   req.PaymentDate,
		ReceiptNumber: req.ReceiptNumber,
		Semester:      req.Semester,
	})
	if err != nil {
		serviceError(c, err, "create student fee")
		return
	}
	response.Created(c, payment)
}

func (h *AdminHandler) UpdatePayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req paymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	payment, err := h.content.UpdatePayment(c.Request.Context(), id, app.PaymentUpdate{
		StudentName:   req.StudentName,
		StudentID:     req.StudentID,
		AdmissionYear: req.AdmissionYear,
		Category:      req.Category,
		TotalFees:     req.TotalFees,
		PaidAmount:    req.PaidAmount,
		Remaining:     req.Remaining,
		PaymentDate:   req.PaymentDate,
		ReceiptNumber: req.ReceiptNumber,
		Semester:      req.Semester,
	})
	if err != nil {
		serviceError(c, err, "update student fee")
		return
	}
	response.OK(c, payment)
}

func (h *AdminHandler) DeletePayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.content.DeletePayment(c.Request.Context(), id); err != nil {
		serviceError(c, err, "delete student fee")
		return
	}
	response.OK(c, gin.H{"message": "Student fee record deleted."})
}

func (h *AdminHandler) SearchPayment(c *gin.Context) {
	payment, err := h.content.FindPaymentByStudentID(c.Query("student_id"))
	if err != nil {
		serviceError(c, err, "search student fee")
		return
	}
	if payment == nil {
		response.OK(c, gin.H{})
		return
	}
	response.OK(c, payment)
}

// Help tickets --------------------------------------------------------------

type ticketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) ListTickets(c *gin.Context) {
	tickets, err := h.tickets.List(c.Query("status"))
	if err != nil {
		serviceError(c, err, "list tickets")
		return
	}
	response.OK(c, tickets)
}

func (h *AdminHandler) UpdateTicketStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ticketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "status is required")
		return
	}
	ticket, err := h.tickets.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		serviceError(c, err, "update ticket status")
		return
	}
	response.OK(c, ticket)
}

func (h *AdminHandler) DownloadTicketPDF(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, err := h.tickets.PDFPath(id)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "no pdf file attached to this ticket")
			return
		}
		serviceError(c, err, "download ticket pdf")
		return
	}
	c.FileAttachment(path, "ticket.pdf")
}
