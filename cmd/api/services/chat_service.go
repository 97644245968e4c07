package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"maternal-chat/cmd/api/dto"
	"maternal-chat/events"
	"maternal-chat/internal/logger"
	"maternal-chat/llm"
	"maternal-chat/models"
	"maternal-chat/repositories"
	"maternal-chat/safety"
)

// EmergencyMessage is returned for queries flagged as acute emergencies;
// retrieval and the model are never invoked on this branch.
const EmergencyMessage = "This may be a medical emergency. " +
	"Please seek immediate medical care or consult a healthcare professional."

// ApologyMessage is the single user-facing fallback for every retrieval or
// model failure. Diagnostic detail stays in the logs.
const ApologyMessage = "Sorry, I couldn't process your question right now. " +
	"Please try again."

var (
	ErrInvalidChatID = errors.New("invalid chat id")
	ErrChatNotFound  = errors.New("chat not found")

	ErrIndexUnavailable  = errors.New("similarity index unavailable")
	ErrModelCallFailed   = errors.New("model call failed")
	ErrMalformedResponse = errors.New("model returned an empty response")
)

// ChatStore is the persistence surface the service needs; implemented by
// repositories.ChatRepository.
type ChatStore interface {
	Insert(ctx context.Context) (primitive.ObjectID, error)
	AppendMessage(ctx context.Context, id primitive.ObjectID, msg models.Message) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ChatSession, error)
	List(ctx context.Context) ([]repositories.ChatSummary, error)
	UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ContextRetriever returns the most similar corpus chunks for a query.
type ContextRetriever interface {
	TopChunks(ctx context.Context, query string) ([]string, error)
}

// AnswerModel produces a completion for a prompt, optionally under a
// system instruction.
type AnswerModel interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// ChatService binds the conversation store, the retriever and the model
// into the retrieval-and-response pipeline.
type ChatService struct {
	store     ChatStore
	retriever ContextRetriever
	model     AnswerModel
	publisher events.Publisher // nil disables the event stream
}

func NewChatService(store ChatStore, retriever ContextRetriever, model AnswerModel, publisher events.Publisher) *ChatService {
	return &ChatService{store: store, retriever: retriever, model: model, publisher: publisher}
}

// NewChat creates an empty session and returns its id.
func (s *ChatService) NewChat(ctx context.Context) (string, error) {
	id, err := s.store.Insert(ctx)
	if err != nil {
		return "", err
	}
	if s.publisher != nil {
		s.publisher.Publish(events.NewChatEvent(events.SessionCreated, id.Hex()))
	}
	return id.Hex(), nil
}

// Send runs the full pipeline for one user query: append the user message,
// synthesize an answer, append the assistant message. The answer itself
// never fails — synthesis errors collapse to ApologyMessage.
func (s *ChatService) Send(ctx context.Context, target ChatTarget, query string) (string, string, error) {
	query = strings.TrimSpace(query)

	id := target.id
	if target.create {
		var err error
		id, err = s.store.Insert(ctx)
		if err != nil {
			return "", "", err
		}
		if s.publisher != nil {
			s.publisher.Publish(events.NewChatEvent(events.SessionCreated, id.Hex()))
		}
	}

	matched, err := s.store.AppendMessage(ctx, id, models.Message{Role: models.RoleUser, Text: query})
	if err != nil {
		return "", "", err
	}
	if matched == 0 {
		// Appends to a deleted or unknown session are tolerated no-ops.
		logger.WarnWithFields("append matched no session", logger.Fields{"chat_id": id.Hex()})
	}

	start := time.Now()
	answer, emergency := s.answer(ctx, query)

	if _, err := s.store.AppendMessage(ctx, id, models.Message{Role: models.RoleAssistant, Text: answer}); err != nil {
		return "", "", err
	}

	if s.publisher != nil {
		ev := events.NewChatEvent(events.MessageAnswered, id.Hex())
		ev.Emergency = emergency
		ev.LatencyMs = time.Since(start).Milliseconds()
		s.publisher.Publish(ev)
	}

	return answer, id.Hex(), nil
}

// answer decides between the emergency branch, the contextual prompt and
// the degraded no-context prompt.
func (s *ChatService) answer(ctx context.Context, query string) (text string, emergency bool) {
	// Queries that also contain "what" are treated as informational
	// ("what is a miscarriage?") and proceed to normal retrieval. The
	// heuristic is imprecise in both directions.
	if safety.IsEmergency(query) && !strings.Contains(strings.ToLower(query), "what") {
		return EmergencyMessage, true
	}

	answer, err := s.synthesize(ctx, query)
	if err != nil {
		logger.ErrorWithFields("answer synthesis failed", logger.Fields{
			"error": err.Error(),
		})
		return ApologyMessage, false
	}
	return answer, false
}

func (s *ChatService) synthesize(ctx context.Context, query string) (string, error) {
	chunks, err := s.retriever.TopChunks(ctx, query)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	contextText := strings.Join(chunks, "\n\n")
	var answer string
	if strings.TrimSpace(contextText) != "" {
		answer, err = s.model.Complete(ctx, llm.QASystemInstruction, llm.QAPrompt(contextText, query))
	} else {
		answer, err = s.model.Complete(ctx, "", llm.FallbackPrompt(query))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelCallFailed, err)
	}
	if strings.TrimSpace(answer) == "" {
		return "", ErrMalformedResponse
	}
	return answer, nil
}

// GetChat loads a full session by its hex id.
func (s *ChatService) GetChat(ctx context.Context, hexID string) (*dto.ChatSessionDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidChatID
	}

	session, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	out := &dto.ChatSessionDTO{
		ChatID:    session.ID.Hex(),
		Title:     session.Title,
		CreatedAt: session.CreatedAt,
		Messages:  make([]dto.MessageDTO, 0, len(session.Messages)),
	}
	for _, m := range session.Messages {
		out.Messages = append(out.Messages, dto.MessageDTO{Role: m.Role, Text: m.Text})
	}
	return out, nil
}

// ListChats returns all sessions, newest first.
func (s *ChatService) ListChats(ctx context.Context) ([]dto.ChatSummaryDTO, error) {
	summaries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatSummaryDTO, 0, len(summaries))
	for _, c := range summaries {
		out = append(out, dto.ChatSummaryDTO{ChatID: c.ID.Hex(), Title: c.Title})
	}
	return out, nil
}

func (s *ChatService) UpdateTitle(ctx context.Context, hexID, title string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrInvalidChatID
	}
	return s.store.UpdateTitle(ctx, id, title)
}

func (s *ChatService) DeleteChat(ctx context.Context, hexID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrInvalidChatID
	}
	return s.store.Delete(ctx, id)
}
