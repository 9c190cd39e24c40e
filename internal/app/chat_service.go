package app

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"college-assist/internal/ai"
	"college-assist/internal/format"
	"college-assist/internal/session"
	"college-assist/internal/snapshot"
)

var ErrMessageEmpty = errors.New("message is required")

// FallbackReply is the safety net when neither the model nor the keyword
// responder produced anything.
const FallbackReply = "I'm here to help! Please ask me about fees, admissions, scholarships, " +
	"library, hostel, faculty, events, or timings."

// ChatCompleter is the language model surface the assistant talks to.
type ChatCompleter interface {
	Enabled() bool
	Chat(ctx context.Context, system string, history []ai.ChatMessage, userMessage string) (string, error)
}

// PromptCache holds the assembled assistant context between messages.
type PromptCache interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, prompt string) error
}

type ChatService struct {
	store    snapshot.Source
	prompts  PromptCache
	llm      ChatCompleter
	sessions *session.Store
}

type ChatResult struct {
	Reply     string
	SessionID string
	Fallback  bool
}

func NewChatService(store snapshot.Source, prompts PromptCache, llm ChatCompleter, sessions *session.Store) *ChatService {
	return &ChatService{
		store:    store,
		prompts:  prompts,
		llm:      llm,
		sessions: sessions,
	}
}

// Answer handles one chatbot turn. The model path is tried first when a
// model is configured; any model failure degrades to the keyword responder
// rather than surfacing an error to the visitor.
func (s *ChatService) Answer(ctx context.Context, sessionID, message string) (*ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageEmpty
	}
	sid := s.sessions.EnsureID(sessionID)

	var reply string
	fallback := true

	if s.llm != nil && s.llm.Enabled() {
		answer, err := s.modelAnswer(ctx, sid, message)
		if err != nil {
			log.Error().Err(err).Str("session_id", sid).Msg("model call failed, using keyword responder")
		} else if answer != "" {
			reply = answer
			fallback = false
		}
	}

	if reply == "" {
		data, err := s.store.Content()
		if err != nil {
			return nil, err
		}
		reply = format.KeywordAnswer(message, data)
		if reply == "" {
			if s.llm != nil && s.llm.Enabled() {
				reply = FallbackReply
			} else {
				reply = format.Overview(data)
			}
		}
		s.sessions.Append(sid,
			session.Message{Role: session.RoleUser, Content: message},
			session.Message{Role: session.RoleAssistant, Content: reply},
		)
	}

	return &ChatResult{Reply: reply, SessionID: sid, Fallback: fallback}, nil
}

func (s *ChatService) modelAnswer(ctx context.Context, sid, message string) (string, error) {
	system, err := s.systemPrompt(ctx)
	if err != nil {
		return "", err
	}

	history := s.sessions.History(sid)
	chatHistory := make([]ai.ChatMessage, 0, len(history))
	for _, msg := range history {
		chatHistory = append(chatHistory, ai.ChatMessage{Role: msg.Role, Content: msg.Content})
	}

	answer, err := s.llm.Chat(ctx, system, chatHistory, message)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", nil
	}

	s.sessions.Append(sid,
		session.Message{Role: session.RoleUser, Content: message},
		session.Message{Role: session.RoleAssistant, Content: answer},
	)
	return answer, nil
}

// systemPrompt returns the cached assistant context, rebuilding it from the
// live store on a miss. Cache errors only cost a rebuild.
func (s *ChatService) systemPrompt(ctx context.Context) (string, error) {
	if s.prompts != nil {
		cached, ok, err := s.prompts.Get(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("prompt cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	data, err := s.store.Content()
	if err != nil {
		return "", err
	}
	prompt := format.SystemPrompt(data)
	if s.prompts != nil {
		if err := s.prompts.Set(ctx, prompt); err != nil {
			log.Warn().Err(err).Msg("prompt cache write failed")
		}
	}
	return prompt, nil
}
