package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"college-assist/internal/model"
	"college-assist/internal/pkg/pdfextract"
	"college-assist/internal/platform/rabbitmq"
	"college-assist/internal/repository"
)

var ErrNotPDF = errors.New("only pdf files are allowed")

// TicketEventPublisher pushes ticket lifecycle events to the message broker.
type TicketEventPublisher interface {
	Publish(ctx context.Context, event rabbitmq.TicketEvent) error
}

// TicketService manages help tickets: creation from the chatbot widget,
// optional PDF attachments, and status transitions from the admin panel.
type TicketService struct {
	tickets       *repository.TicketRepository
	publisher     TicketEventPublisher
	uploadsDir    string
	excerptLength int
	now           func() time.Time
}

type CreateTicketInput struct {
	StudentName string
	Contact     string
	Query       string
	Topic       string
	PDFName     string
	PDF         io.Reader
}

func NewTicketService(tickets *repository.TicketRepository, publisher TicketEventPublisher, uploadsDir string, excerptLength int) *TicketService {
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}
	if excerptLength <= 0 {
		excerptLength = 2000
	}
	return &TicketService{
		tickets:       tickets,
		publisher:     publisher,
		uploadsDir:    uploadsDir,
		excerptLength: excerptLength,
		now:           time.Now,
	}
}

func (s *TicketService) List(status string) ([]model.HelpTicket, error) {
	return s.tickets.List(status)
}

func (s *TicketService) GetByID(id uint) (*model.HelpTicket, error) {
	return s.tickets.GetByID(id)
}

// Create stores the ticket, saves the attachment when one was uploaded and
// publishes a created event. The event is best-effort: a broker outage must
// not lose the ticket.
func (s *TicketService) Create(ctx context.Context, input CreateTicketInput) (*model.HelpTicket, error) {
	name := strings.TrimSpace(input.StudentName)
	contact := strings.TrimSpace(input.Contact)
	query := strings.TrimSpace(input.Query)
	if name == "" || contact == "" || query == "" {
		return nil, ErrInvalidInput
	}

	ticket := &model.HelpTicket{
		StudentName: name,
		Contact:     contact,
		QueryText:   query,
		Topic:       strings.TrimSpace(input.Topic),
		Status:      model.TicketStatusOpen,
	}

	if input.PDF != nil && input.PDFName != "" {
		if !strings.HasSuffix(strings.ToLower(input.PDFName), ".pdf") {
			return nil, ErrNotPDF
		}
	}

	if err := s.tickets.Create(ticket); err != nil {
		return nil, err
	}

	if input.PDF != nil && input.PDFName != "" {
		if err := s.attachPDF(ticket, input.PDFName, input.PDF); err != nil {
			log.Warn().Err(err).Uint("ticket_id", ticket.ID).Msg("ticket pdf attachment failed")
		} else if err := s.tickets.Save(ticket); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, rabbitmq.TicketEvent{
		Event:       rabbitmq.TicketEventCreated,
		TicketID:    ticket.ID,
		StudentName: ticket.StudentName,
		Topic:       ticket.Topic,
		Status:      ticket.Status,
		OccurredAt:  s.now().UTC(),
	})
	return ticket, nil
}

// UpdateStatus moves the ticket to the given status, stamping ResolvedAt on
// resolution.
func (s *TicketService) UpdateStatus(ctx context.Context, id uint, status string) (*model.HelpTicket, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrInvalidInput
	}
	ticket, err := s.tickets.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrNotFound
	}

	ticket.Status = status
	if strings.EqualFold(status, model.TicketStatusResolved) {
		resolvedAt := s.now().UTC()
		ticket.ResolvedAt = &resolvedAt
	}
	if err := s.tickets.Save(ticket); err != nil {
		return nil, err
	}

	if strings.EqualFold(status, model.TicketStatusResolved) {
		s.publish(ctx, rabbitmq.TicketEvent{
			Event:       rabbitmq.TicketEventResolved,
			TicketID:    ticket.ID,
			StudentName: ticket.StudentName,
			Topic:       ticket.Topic,
			Status:      ticket.Status,
			OccurredAt:  s.now().UTC(),
		})
	}
	return ticket, nil
}

// PDFPath returns the stored attachment path for download, or ErrNotFound
// when the ticket has no attachment on disk.
func (s *TicketService) PDFPath(id uint) (string, error) {
	ticket, err := s.tickets.GetByID(id)
	if err != nil {
		return "", err
	}
	if ticket == nil || ticket.PDFFilename == "" {
		return "", ErrNotFound
	}
	path := filepath.Join(s.uploadsDir, ticket.PDFFilename)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

func (s *TicketService) attachPDF(ticket *model.HelpTicket, originalName string, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read pdf upload: %w", err)
	}
	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}

	filename := fmt.Sprintf("ticket_%d_%d_%s", ticket.ID, s.now().Unix(), sanitizeFilename(originalName))
	path := filepath.Join(s.uploadsDir, filename)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("save pdf upload: %w", err)
	}
	ticket.PDFFilename = filename

	excerpt, err := pdfextract.Excerpt(bytes.NewReader(raw), s.excerptLength)
	if err != nil {
		log.Warn().Err(err).Uint("ticket_id", ticket.ID).Msg("pdf text extraction failed")
		return nil
	}
	ticket.PDFExcerpt = excerpt
	return nil
}

func (s *TicketService) publish(ctx context.Context, event rabbitmq.TicketEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Uint("ticket_id", event.TicketID).Str("event", event.Event).
			Msg("ticket event publish failed")
	}
}

// sanitizeFilename strips path separators and oddball characters from an
// uploaded filename, keeping it safe to join onto the uploads directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "upload.pdf"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload.pdf"
	}
	return b.String()
}
