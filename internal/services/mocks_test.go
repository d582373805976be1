package services

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
)

// ===== REPOSITORY MOCKS =====

type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockChallengeRepository) GetByID(ctx context.Context, id uint) (*models.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockChallengeRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChallengeRepository) List(ctx context.Context, filters repositories.ChallengeFilters) ([]*models.Challenge, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Challenge), args.Get(1).(int64), args.Error(2)
}

func (m *MockChallengeRepository) GetByUser(ctx context.Context, userID string, filters repositories.ChallengeFilters) ([]*models.Challenge, int64, error) {
	args := m.Called(ctx, userID, filters)
	return args.Get(0).([]*models.Challenge), args.Get(1).(int64), args.Error(2)
}

func (m *MockChallengeRepository) GetLatestByUser(ctx context.Context, userID string) (*models.Challenge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) CreateSubmission(ctx context.Context, submission *models.ChallengeSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockChallengeRepository) GetSubmissions(ctx context.Context, challengeID uint) ([]*models.ChallengeSubmission, error) {
	args := m.Called(ctx, challengeID)
	return args.Get(0).([]*models.ChallengeSubmission), args.Error(1)
}

func (m *MockChallengeRepository) GetSubmissionsByUser(ctx context.Context, userID string, limit int) ([]*models.ChallengeSubmission, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]*models.ChallengeSubmission), args.Error(1)
}

func (m *MockChallengeRepository) GetUserStats(ctx context.Context, userID string) (*repositories.ChallengeStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*repositories.ChallengeStats), args.Error(1)
}

type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	args := m.Called(ctx, exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) GetByID(ctx context.Context, id uint) (*models.Exercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) GetByIDWithContent(ctx context.Context, id uint) (*models.Exercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) Update(ctx context.Context, exercise *models.Exercise) error {
	args := m.Called(ctx, exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExerciseRepository) List(ctx context.Context, limit, offset int) ([]*models.Exercise, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Exercise), args.Get(1).(int64), args.Error(2)
}

func (m *MockExerciseRepository) GetContent(ctx context.Context, exerciseID uint, exerciseType string) ([]*models.ExerciseContent, error) {
	args := m.Called(ctx, exerciseID, exerciseType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ExerciseContent), args.Error(1)
}

func (m *MockExerciseRepository) GetContentByID(ctx context.Context, id uint) (*models.ExerciseContent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExerciseContent), args.Error(1)
}

func (m *MockExerciseRepository) CreateContent(ctx context.Context, content *models.ExerciseContent) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockExerciseRepository) CreateContentBatch(ctx context.Context, contents []*models.ExerciseContent) error {
	args := m.Called(ctx, contents)
	return args.Error(0)
}

func (m *MockExerciseRepository) UpdateContent(ctx context.Context, content *models.ExerciseContent) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockExerciseRepository) DeleteContent(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExerciseRepository) DeleteContentByType(ctx context.Context, exerciseID uint, exerciseType string) error {
	args := m.Called(ctx, exerciseID, exerciseType)
	return args.Error(0)
}

type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Create(ctx context.Context, attempt *models.ExerciseAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetByID(ctx context.Context, id string) (*models.ExerciseAttempt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExerciseAttempt), args.Error(1)
}

func (m *MockAttemptRepository) GetByIDWithDetails(ctx context.Context, id string) (*models.ExerciseAttempt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExerciseAttempt), args.Error(1)
}

func (m *MockAttemptRepository) List(ctx context.Context, filters repositories.AttemptFilters) ([]*models.ExerciseAttempt, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.ExerciseAttempt), args.Get(1).(int64), args.Error(2)
}

func (m *MockAttemptRepository) GetByUser(ctx context.Context, userID string, filters repositories.AttemptFilters) ([]*models.ExerciseAttempt, int64, error) {
	args := m.Called(ctx, userID, filters)
	return args.Get(0).([]*models.ExerciseAttempt), args.Get(1).(int64), args.Error(2)
}

func (m *MockAttemptRepository) GetByExercise(ctx context.Context, exerciseID uint, filters repositories.AttemptFilters) ([]*models.ExerciseAttempt, int64, error) {
	args := m.Called(ctx, exerciseID, filters)
	return args.Get(0).([]*models.ExerciseAttempt), args.Get(1).(int64), args.Error(2)
}

func (m *MockAttemptRepository) GetByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*models.ExerciseAttempt, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).([]*models.ExerciseAttempt), args.Error(1)
}

func (m *MockAttemptRepository) GetUserStats(ctx context.Context, userID string) (*repositories.UserAttemptStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*repositories.UserAttemptStats), args.Error(1)
}

func (m *MockAttemptRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) IsActive(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query string, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, query, limit, offset)
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id string, loginTime time.Time) error {
	args := m.Called(ctx, id, loginTime)
	return args.Error(0)
}

func (m *MockUserRepository) GetActiveUsers(ctx context.Context, since time.Time) ([]*models.User, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]*models.User), args.Error(1)
}

type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) UpsertProgress(ctx context.Context, progress *models.UserProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) GetSkillMetrics(ctx context.Context, userID string) ([]*models.SkillMetric, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.SkillMetric), args.Error(1)
}

func (m *MockProgressRepository) UpsertSkillMetric(ctx context.Context, metric *models.SkillMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *MockProgressRepository) GetTrends(ctx context.Context, userID string, weeks int) ([]*models.PerformanceTrend, error) {
	args := m.Called(ctx, userID, weeks)
	return args.Get(0).([]*models.PerformanceTrend), args.Error(1)
}

func (m *MockProgressRepository) UpsertTrend(ctx context.Context, trend *models.PerformanceTrend) error {
	args := m.Called(ctx, trend)
	return args.Error(0)
}

func (m *MockProgressRepository) GetWordCountSeries(ctx context.Context, userID string, limit int) ([]models.WordCountPoint, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]models.WordCountPoint), args.Error(1)
}

func (m *MockProgressRepository) GetWordsmiths(ctx context.Context, filters repositories.WordsmithFilters) ([]*repositories.WordsmithEntry, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*repositories.WordsmithEntry), args.Get(1).(int64), args.Error(2)
}

// MockRepository aggregates the entity mocks behind the Repository
// interface services depend on.
type MockRepository struct {
	ChallengeRepo *MockChallengeRepository
	ExerciseRepo  *MockExerciseRepository
	AttemptRepo   *MockAttemptRepository
	UserRepo      *MockUserRepository
	ProgressRepo  *MockProgressRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		ChallengeRepo: new(MockChallengeRepository),
		ExerciseRepo:  new(MockExerciseRepository),
		AttemptRepo:   new(MockAttemptRepository),
		UserRepo:      new(MockUserRepository),
		ProgressRepo:  new(MockProgressRepository),
	}
}

func (m *MockRepository) Challenge() repositories.ChallengeRepository {
	return m.ChallengeRepo
}

func (m *MockRepository) Exercise() repositories.ExerciseRepository {
	return m.ExerciseRepo
}

func (m *MockRepository) Attempt() repositories.AttemptRepository {
	return m.AttemptRepo
}

func (m *MockRepository) User() repositories.UserRepository {
	return m.UserRepo
}

func (m *MockRepository) Progress() repositories.ProgressRepository {
	return m.ProgressRepo
}

// ===== AI CLIENT STUB =====

// stubChatCompleter plays the AI provider: scripted responses or errors,
// with a call counter for rate-limit assertions and the last request
// kept for prompt assertions.
type stubChatCompleter struct {
	response    string
	err         error
	calls       int
	lastRequest openai.ChatCompletionRequest
}

func (s *stubChatCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	s.lastRequest = req
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.response}},
		},
	}, nil
}
