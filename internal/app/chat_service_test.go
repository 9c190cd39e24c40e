package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"college-assist/internal/ai"
	"college-assist/internal/model"
	"college-assist/internal/session"
	"college-assist/internal/snapshot"
)

type fakeSource struct {
	data snapshot.Data
	err  error
}

func (f *fakeSource) Content() (snapshot.Data, error) { return f.data, f.err }

type fakeCompleter struct {
	enabled bool
	reply   string
	err     error
	calls   int
	system  string
}

func (f *fakeCompleter) Enabled() bool { return f.enabled }

func (f *fakeCompleter) Chat(_ context.Context, system string, _ []ai.ChatMessage, _ string) (string, error) {
	f.calls++
	f.system = system
	return f.reply, f.err
}

type fakePromptCache struct {
	value string
	sets  int
}

func (f *fakePromptCache) Get(context.Context) (string, bool, error) {
	return f.value, f.value != "", nil
}

func (f *fakePromptCache) Set(_ context.Context, prompt string) error {
	f.value = prompt
	f.sets++
	return nil
}

func contentData() snapshot.Data {
	return snapshot.Data{
		Fees:         []model.FeeStructure{{Category: "OPEN", TotalFees: 20000}},
		Scholarships: []model.Scholarship{{ScholarshipName: "TFWS", IsActive: true}},
	}
}

func newChatService(source *fakeSource, llm *fakeCompleter, prompts PromptCache) *ChatService {
	return NewChatService(source, prompts, llm, session.NewStore(time.Minute, 10))
}

func TestAnswerRequiresMessage(t *testing.T) {
	svc := newChatService(&fakeSource{data: contentData()}, &fakeCompleter{}, nil)
	if _, err := svc.Answer(context.Background(), "", "   "); !errors.Is(err, ErrMessageEmpty) {
		t.Fatalf("err = %v, want ErrMessageEmpty", err)
	}
}

func TestAnswerModelPath(t *testing.T) {
	llm := &fakeCompleter{enabled: true, reply: "The OPEN category total is ₹20,000.00."}
	prompts := &fakePromptCache{}
	svc := newChatService(&fakeSource{data: contentData()}, llm, prompts)

	result, err := svc.Answer(context.Background(), "", "what are the fees?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if result.Fallback {
		t.Error("model reply should not be marked fallback")
	}
	if result.Reply != llm.reply {
		t.Errorf("reply = %q", result.Reply)
	}
	if result.SessionID == "" {
		t.Error("session id should be minted")
	}
	if !strings.Contains(llm.system, "COLLEGE INFORMATION:") {
		t.Errorf("model should receive the assembled context, got %q", llm.system)
	}
	if prompts.sets != 1 {
		t.Errorf("prompt cache sets = %d, want 1", prompts.sets)
	}

	// Second turn reuses the cached context.
	if _, err := svc.Answer(context.Background(), result.SessionID, "and scholarships?"); err != nil {
		t.Fatalf("second Answer: %v", err)
	}
	if prompts.sets != 1 {
		t.Errorf("prompt cache sets after second turn = %d, want 1", prompts.sets)
	}
}

func TestAnswerModelFailureFallsBack(t *testing.T) {
	llm := &fakeCompleter{enabled: true, err: errors.New("upstream 503")}
	svc := newChatService(&fakeSource{data: contentData()}, llm, nil)

	result, err := svc.Answer(context.Background(), "", "tell me about fees")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !result.Fallback {
		t.Error("degraded reply should be marked fallback")
	}
	if !strings.Contains(result.Reply, "₹20,000.00") {
		t.Errorf("keyword responder should answer, got %q", result.Reply)
	}
}

func TestAnswerNoMatchWithModel(t *testing.T) {
	llm := &fakeCompleter{enabled: true, reply: ""}
	svc := newChatService(&fakeSource{data: contentData()}, llm, nil)

	result, err := svc.Answer(context.Background(), "", "what is the meaning of life")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if result.Reply != FallbackReply {
		t.Errorf("reply = %q, want generic fallback", result.Reply)
	}
}

func TestAnswerNoMatchWithoutModel(t *testing.T) {
	svc := newChatService(&fakeSource{data: contentData()}, &fakeCompleter{enabled: false}, nil)

	result, err := svc.Answer(context.Background(), "", "what is the meaning of life")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(result.Reply, "overview of Government Polytechnic") {
		t.Errorf("reply = %q, want full overview", result.Reply)
	}
	if !strings.Contains(result.Reply, "₹20,000.00") {
		t.Errorf("overview should include content sections, got %q", result.Reply)
	}
}

func TestAnswerContentError(t *testing.T) {
	svc := newChatService(&fakeSource{err: errors.New("db down")}, &fakeCompleter{}, nil)
	if _, err := svc.Answer(context.Background(), "", "fees please"); err == nil {
		t.Fatal("expected error when the store is unavailable")
	}
}
