package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"maternal-chat/models"
	"maternal-chat/repositories"
)

type stubStore struct {
	insertCalls int
	insertedID  primitive.ObjectID
	appends     []models.Message
	appendIDs   []primitive.ObjectID
	matched     int64
	session     *models.ChatSession
}

func newStubStore() *stubStore {
	return &stubStore{insertedID: primitive.NewObjectID(), matched: 1}
}

func (s *stubStore) Insert(ctx context.Context) (primitive.ObjectID, error) {
	s.insertCalls++
	return s.insertedID, nil
}

func (s *stubStore) AppendMessage(ctx context.Context, id primitive.ObjectID, msg models.Message) (int64, error) {
	s.appends = append(s.appends, msg)
	s.appendIDs = append(s.appendIDs, id)
	return s.matched, nil
}

func (s *stubStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ChatSession, error) {
	if s.session == nil || s.session.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return s.session, nil
}

func (s *stubStore) List(ctx context.Context) ([]repositories.ChatSummary, error) {
	return nil, nil
}

func (s *stubStore) UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) error {
	return nil
}

func (s *stubStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

type stubRetriever struct {
	chunks []string
	err    error
	calls  int
}

func (r *stubRetriever) TopChunks(ctx context.Context, query string) ([]string, error) {
	r.calls++
	return r.chunks, r.err
}

type stubModel struct {
	answer  string
	err     error
	calls   int
	systems []string
	prompts []string
}

func (m *stubModel) Complete(ctx context.Context, system, prompt string) (string, error) {
	m.calls++
	m.systems = append(m.systems, system)
	m.prompts = append(m.prompts, prompt)
	return m.answer, m.err
}

func TestSendEmergencySkipsRetrievalAndModel(t *testing.T) {
	store := newStubStore()
	retriever := &stubRetriever{chunks: []string{"chunk"}}
	model := &stubModel{answer: "unused"}
	svc := NewChatService(store, retriever, model, nil)

	bot, _, err := svc.Send(context.Background(), UseExistingChat(store.insertedID), "I have heavy bleeding")
	assert.NoError(t, err)
	assert.Equal(t, EmergencyMessage, bot)
	assert.Zero(t, retriever.calls)
	assert.Zero(t, model.calls)
}

func TestSendWhatOverrideBypassesEmergencyBranch(t *testing.T) {
	store := newStubStore()
	retriever := &stubRetriever{chunks: []string{"relevant passage"}}
	model := &stubModel{answer: "educational answer"}
	svc := NewChatService(store, retriever, model, nil)

	bot, _, err := svc.Send(context.Background(), UseExistingChat(store.insertedID), "what is a miscarriage?")
	assert.NoError(t, err)
	assert.Equal(t, "educational answer", bot)
	assert.Equal(t, 1, retriever.calls)
	assert.Equal(t, 1, model.calls)
}

func TestSendAppendsUserThenAssistant(t *testing.T) {
	store := newStubStore()
	svc := NewChatService(store, &stubRetriever{chunks: []string{"ctx"}}, &stubModel{answer: "reply"}, nil)

	bot, chatID, err := svc.Send(context.Background(), CreateChat(), "  how much folic acid?  ")
	assert.NoError(t, err)
	assert.Equal(t, "reply", bot)
	assert.Equal(t, store.insertedID.Hex(), chatID)
	assert.Equal(t, 1, store.insertCalls)

	assert.Len(t, store.appends, 2)
	assert.Equal(t, models.RoleUser, store.appends[0].Role)
	assert.Equal(t, "how much folic acid?", store.appends[0].Text)
	assert.Equal(t, models.RoleAssistant, store.appends[1].Role)
	assert.Equal(t, "reply", store.appends[1].Text)
	assert.Equal(t, store.appendIDs[0], store.appendIDs[1])
}

func TestSendExistingTargetDoesNotCreate(t *testing.T) {
	store := newStubStore()
	svc := NewChatService(store, &stubRetriever{}, &stubModel{answer: "a"}, nil)

	id := primitive.NewObjectID()
	_, chatID, err := svc.Send(context.Background(), UseExistingChat(id), "hello")
	assert.NoError(t, err)
	assert.Zero(t, store.insertCalls)
	assert.Equal(t, id.Hex(), chatID)
}

func TestSendContextualPromptCarriesSystemInstruction(t *testing.T) {
	store := newStubStore()
	model := &stubModel{answer: "grounded answer"}
	svc := NewChatService(store, &stubRetriever{chunks: []string{"passage one", "passage two"}}, model, nil)

	_, _, err := svc.Send(context.Background(), UseExistingChat(store.insertedID), "is mild cramping normal")
	assert.NoError(t, err)
	assert.Len(t, model.prompts, 1)
	assert.NotEmpty(t, model.systems[0])
	assert.Contains(t, model.prompts[0], "passage one\n\npassage two")
	assert.Contains(t, model.prompts[0], "is mild cramping normal")
}

func TestSendNoContextUsesDegradedPrompt(t *testing.T) {
	store := newStubStore()
	model := &stubModel{answer: "general info"}
	svc := NewChatService(store, &stubRetriever{chunks: nil}, model, nil)

	bot, _, err := svc.Send(context.Background(), UseExistingChat(store.insertedID), "prenatal yoga")
	assert.NoError(t, err)
	assert.Equal(t, "general info", bot)
	assert.Equal(t, "", model.systems[0])
	assert.Equal(t, "Provide general educational information about: prenatal yoga", model.prompts[0])
}

func TestSendWhitespaceChunksUseDegradedPrompt(t *testing.T) {
	store := newStubStore()
	model := &stubModel{answer: "general info"}
	svc := NewChatService(store, &stubRetriever{chunks: []string{"   ", "\n\t"}}, model, nil)

	_, _, err := svc.Send(context.Background(), UseExistingChat(store.insertedID), "anything")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(model.prompts[0], "Provide general educational information about:"))
}

func TestSendRetrieverFailureYieldsApology(t *testing.T) {
	store := newStubStore()
	model := &stubModel{answer: "unused"}
	svc := NewChatService(store, &stubRetriever{err: errors.New("index gone")}, model, nil)

	bot, _, err := svc.Send(context.Background(), UseExistingChat(store.insertedID), "question")
	assert.NoError(t, err)
	assert.Equal(t, ApologyMessage, bot)
	assert.Zero(t, model.calls)
	// the apology is still persisted as the assistant turn
	assert.Equal(t, ApologyMessage, store.appends[1].Text)
}

func TestSendModelFailureYieldsApology(t *testing.T) {
	store := newStubStore()
	svc := NewChatService(store, &stubRetriever{chunks: []string{"ctx"}}, &stubModel{err: errors.New("boom")}, nil)

	bot, _, err := svc.Send(context.Background(), UseExistingChat(store.insertedID), "question")
	assert.NoError(t, err)
	assert.Equal(t, ApologyMessage, bot)
}

func TestSendEmptyModelResponseYieldsApology(t *testing.T) {
	store := newStubStore()
	svc := NewChatService(store, &stubRetriever{chunks: []string{"ctx"}}, &stubModel{answer: "   "}, nil)

	bot, _, err := svc.Send(context.Background(), UseExistingChat(store.insertedID), "question")
	assert.NoError(t, err)
	assert.Equal(t, ApologyMessage, bot)
}

func TestSendToleratesAppendOnMissingSession(t *testing.T) {
	store := newStubStore()
	store.matched = 0
	svc := NewChatService(store, &stubRetriever{}, &stubModel{answer: "a"}, nil)

	_, _, err := svc.Send(context.Background(), UseExistingChat(primitive.NewObjectID()), "hello")
	assert.NoError(t, err)
	assert.Len(t, store.appends, 2)
}

func TestGetChatNotFound(t *testing.T) {
	store := newStubStore()
	svc := NewChatService(store, &stubRetriever{}, &stubModel{}, nil)

	_, err := svc.GetChat(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestGetChatInvalidID(t *testing.T) {
	svc := NewChatService(newStubStore(), &stubRetriever{}, &stubModel{}, nil)

	_, err := svc.GetChat(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidChatID)
}

func TestGetChatMapsSession(t *testing.T) {
	store := newStubStore()
	id := primitive.NewObjectID()
	store.session = &models.ChatSession{
		ID:    id,
		Title: "New Chat",
		Messages: []models.Message{
			{Role: models.RoleUser, Text: "hi"},
			{Role: models.RoleAssistant, Text: "hello"},
		},
	}
	svc := NewChatService(store, &stubRetriever{}, &stubModel{}, nil)

	session, err := svc.GetChat(context.Background(), id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, id.Hex(), session.ChatID)
	assert.Len(t, session.Messages, 2)
	assert.Equal(t, "hi", session.Messages[0].Text)
}
