package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"college-assist/internal/app"
	"college-assist/internal/format"
	"college-assist/internal/model"
	"college-assist/internal/transport/http/response"
)

// admissionTypeAliases maps the widget's admission selector values onto the
// stored admission_type labels.
var admissionTypeAliases = map[string]string{
	"first-year":         "12th",
	"direct-second-year": "Diploma",
	"management":         "Management",
	"bsc":                "BSc",
	"international":      "International",
}

// ChatbotHandler serves the public chat widget: the conversation endpoint
// plus the read-only lookups the widget renders as cards.
type ChatbotHandler struct {
	chat    *app.ChatService
	content *app.ContentService
	tickets *app.TicketService
}

func NewChatbotHandler(chat *app.ChatService, content *app.ContentService, tickets *app.TicketService) *ChatbotHandler {
	return &ChatbotHandler{chat: chat, content: content, tickets: tickets}
}

type chatMessageRequest struct {
	Message      string `json:"message"`
	SessionID    string `json:"session_id"`
	SessionIDAlt string `json:"sessionId"`
}

func (r chatMessageRequest) sessionID() string {
	if r.SessionID != "" {
		return r.SessionID
	}
	return r.SessionIDAlt
}

const chatApology = "I apologize, but I encountered an error. Please try again or contact support."

func (h *ChatbotHandler) Message(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "message is required")
		return
	}

	// A broken record in the content tables must degrade to an apology, not
	// a blank 500 at the widget.
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("chat answer panicked")
			response.OK(c, gin.H{
				"response":   chatApology,
				"session_id": req.sessionID(),
				"error":      true,
			})
		}
	}()

	result, err := h.chat.Answer(c.Request.Context(), req.sessionID(), req.Message)
	if err != nil {
		if errors.Is(err, app.ErrMessageEmpty) {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "message is required")
			return
		}
		log.Error().Err(err).Msg("chat answer failed")
		response.OK(c, gin.H{
			"response":   chatApology,
			"session_id": req.sessionID(),
			"error":      true,
		})
		return
	}
	response.OK(c, gin.H{
		"response":   result.Reply,
		"session_id": result.SessionID,
		"fallback":   result.Fallback,
	})
}

type helpTicketRequest struct {
	StudentName string `json:"student_name"`
	Contact     string `json:"contact"`
	Query       string `json:"query"`
	Topic       string `json:"topic"`
}

func (h *ChatbotHandler) CreateHelpTicket(c *gin.Context) {
	input := app.CreateTicketInput{}
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		input.StudentName = c.PostForm("student_name")
		input.Contact = c.PostForm("contact")
		input.Query = c.PostForm("query")
		input.Topic = c.PostForm("topic")
		if file, err := c.FormFile("pdf_file"); err == nil && file != nil {
			f, err := file.Open()
			if err != nil {
				response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "could not read uploaded file")
				return
			}
			defer f.Close()
			input.PDFName = file.Filename
			input.PDF = f
		}
	} else {
		var req helpTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
			return
		}
		input.StudentName = req.StudentName
		input.Contact = req.Contact
		input.Query = req.Query
		input.Topic = req.Topic
	}

	ticket, err := h.tickets.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "student_name, contact and query are required")
		case errors.Is(err, app.ErrNotPDF):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "only pdf attachments are accepted")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "could not create help ticket")
		}
		return
	}
	response.Created(c, gin.H{
		"ticket_id": ticket.ID,
		"message":   "Your help ticket has been submitted. Our team will contact you soon.",
	})
}

func (h *ChatbotHandler) AdmissionDocuments(c *gin.Context) {
	admissionType := strings.TrimSpace(c.Query("type"))
	if mapped, ok := admissionTypeAliases[strings.ToLower(admissionType)]; ok {
		admissionType = mapped
	}
	if admissionType == "" {
		admissionType = "12th"
	}
	docs, err := h.content.ListDocuments(admissionType)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "could not load admission documents")
		return
	}
	response.OK(c, gin.H{
		"admission_type": admissionType,
		"documents":      docs,
		"formatted_text": format.RequiredDocumentsText(admissionType, docs),
	})
}

func (h *ChatbotHandler) Fees(c *gin.Context) {
	fees, err := h.content.ListFees(c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "could not load fees")
		return
	}
	response.OK(c, gin.H{
		"fees":           fees,
		"formatted_text": format.FeesSection(fees),
	})
}

func (h *ChatbotHandler) Scholarships(c *gin.Context) {
	scholarships, err := h.content.ListScholarships(c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "could not load scholarships")
		return
	}
	active := make([]model.Scholarship, 0, len(scholarships))
	for _, s := range scholarships {
		if s.IsActive {
			active = append(active, s)
		}
	}
	response.OK(c, gin.H{
		"scholarships":   active,
		"formatted_text": format.ScholarshipsSection(active),
	})
}
