package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio/internal/config"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/mailer"
	"portfolio/internal/model"
)

// MockMessageRepository is a mock implementation of MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *model.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) Update(ctx context.Context, msg *model.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageRepository) List(ctx context.Context) ([]model.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetOrCreate(ctx context.Context, defaults *model.Profile) (*model.Profile, error) {
	args := m.Called(ctx, defaults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockNotifier is a mock implementation of mailer.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, mail mailer.Mail) error {
	args := m.Called(ctx, mail)
	return args.Error(0)
}

func (m *MockNotifier) Simulated() bool {
	args := m.Called()
	return args.Bool(0)
}

func testMessageConfig() *config.Config {
	return &config.Config{AdminEmail: "admin@example.com"}
}

func TestMessageService_Submit(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	mockProfiles := new(MockProfileRepository)
	mockNotifier := new(MockNotifier)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)
	mockProfiles.On("GetOrCreate", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(&model.Profile{Name: "Jane Doe"}, nil)
	mockNotifier.On("Send", mock.Anything, mock.AnythingOfType("mailer.Mail")).Return(nil).Twice()
	mockNotifier.On("Simulated").Return(false)

	svc := NewMessageService(mockRepo, mockProfiles, mockNotifier, testMessageConfig())
	msg, hint, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site!",
	})

	assert.NoError(t, err)
	assert.Empty(t, hint)
	assert.Equal(t, "Visitor", msg.Name)
	assert.Equal(t, "Nice site!", msg.Content)

	// Admin notification goes to the admin address, confirmation to the visitor.
	sent := mockNotifier.Calls
	notification := sent[0].Arguments.Get(1).(mailer.Mail)
	assert.Equal(t, "admin@example.com", notification.To)
	assert.Equal(t, "visitor@example.com", notification.ReplyTo)
	assert.Equal(t, "Portfolio Contact: Hello", notification.Subject)

	confirmation := sent[1].Arguments.Get(1).(mailer.Mail)
	assert.Equal(t, "visitor@example.com", confirmation.To)

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestMessageService_SubmitSavesEvenWhenDeliveryFails(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	mockProfiles := new(MockProfileRepository)
	mockNotifier := new(MockNotifier)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)
	mockProfiles.On("GetOrCreate", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(&model.Profile{Name: "Jane Doe"}, nil)
	mockNotifier.On("Send", mock.Anything, mock.AnythingOfType("mailer.Mail")).Return(errors.New("smtp down"))

	svc := NewMessageService(mockRepo, mockProfiles, mockNotifier, testMessageConfig())
	msg, hint, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site!",
	})

	assert.NoError(t, err)
	assert.NotNil(t, msg)
	assert.Equal(t, HintDeliveryFailed, hint)
	mockRepo.AssertExpectations(t)
}

func TestMessageService_SubmitSimulatedHint(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	mockProfiles := new(MockProfileRepository)
	mockNotifier := new(MockNotifier)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)
	mockProfiles.On("GetOrCreate", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(&model.Profile{Name: "Jane Doe"}, nil)
	mockNotifier.On("Send", mock.Anything, mock.AnythingOfType("mailer.Mail")).Return(nil)
	mockNotifier.On("Simulated").Return(true)

	svc := NewMessageService(mockRepo, mockProfiles, mockNotifier, testMessageConfig())
	_, hint, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site!",
	})

	assert.NoError(t, err)
	assert.Equal(t, HintSimulated, hint)
}

func TestMessageService_SubmitPersistFailureIsFatal(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	mockProfiles := new(MockProfileRepository)
	mockNotifier := new(MockNotifier)

	dbErr := errors.New("db down")
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(dbErr)

	svc := NewMessageService(mockRepo, mockProfiles, mockNotifier, testMessageConfig())
	msg, hint, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site!",
	})

	assert.Equal(t, dbErr, err)
	assert.Nil(t, msg)
	assert.Empty(t, hint)
	// No mail is attempted when the message never made it to the database.
	mockNotifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMessageService_MarkRead(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	id := uuid.New()

	stored := &model.Message{ID: id, Read: false}
	mockRepo.On("FindByID", mock.Anything, id).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, stored).Return(nil)

	svc := NewMessageService(mockRepo, new(MockProfileRepository), new(MockNotifier), testMessageConfig())
	msg, err := svc.MarkRead(context.Background(), id, true)

	assert.NoError(t, err)
	assert.True(t, msg.Read)
	mockRepo.AssertExpectations(t)
}

func TestMessageService_ReplyDefaultsSubjectAndMarksReplied(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	mockNotifier := new(MockNotifier)
	id := uuid.New()

	stored := &model.Message{
		ID:      id,
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Question about rates",
		Content: "How much?",
	}
	mockRepo.On("FindByID", mock.Anything, id).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, stored).Return(nil)
	mockNotifier.On("Send", mock.Anything, mock.AnythingOfType("mailer.Mail")).Return(nil)
	mockNotifier.On("Simulated").Return(false)

	svc := NewMessageService(mockRepo, new(MockProfileRepository), mockNotifier, testMessageConfig())
	msg, hint, err := svc.Reply(context.Background(), id, ReplyInput{Reply: "Quite a lot."})

	assert.NoError(t, err)
	assert.Empty(t, hint)
	assert.True(t, msg.Replied)

	sent := mockNotifier.Calls[0].Arguments.Get(1).(mailer.Mail)
	assert.Equal(t, "visitor@example.com", sent.To)
	assert.Equal(t, "Re: Question about rates", sent.Subject)

	mockRepo.AssertExpectations(t)
}

func TestMessageService_ReplyNotFound(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, apperrors.ErrNotFound)

	svc := NewMessageService(mockRepo, new(MockProfileRepository), new(MockNotifier), testMessageConfig())
	_, _, err := svc.Reply(context.Background(), id, ReplyInput{Reply: "hello"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
