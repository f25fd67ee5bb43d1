package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skittree/bewiseai-test/internal/domain"
	"github.com/skittree/bewiseai-test/internal/service"
	"github.com/skittree/bewiseai-test/internal/service/jservice"
)

// Общая обвязка для тестов хендлеров: настоящие сервисы поверх
// in-memory репозиториев и заглушек внешних коллабораторов

type memUserRepo struct {
	seq   int64
	byID  map[int64]*domain.User
	names map[string]bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[int64]*domain.User{}, names: map[string]bool{}}
}

func (r *memUserRepo) CreateUser(ctx context.Context, username string, token uuid.UUID) (*domain.User, error) {
	if r.names[username] {
		return nil, domain.NewError(domain.KindConflict, "username is already taken", username)
	}
	r.seq++
	user := &domain.User{ID: r.seq, Username: username, Token: token}
	r.byID[user.ID] = user
	r.names[username] = true
	return user, nil
}

func (r *memUserRepo) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.NewError(domain.KindNotFound, "user not found", id)
	}
	return user, nil
}

type memQuestionRepo struct {
	stored map[int64]*domain.Question
}

func newMemQuestionRepo() *memQuestionRepo {
	return &memQuestionRepo{stored: map[int64]*domain.Question{}}
}

func (r *memQuestionRepo) GetQuestionIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(r.stored))
	for id := range r.stored {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *memQuestionRepo) AddQuestions(ctx context.Context, questions []*domain.Question) error {
	for _, q := range questions {
		if _, ok := r.stored[q.ID]; ok {
			return domain.NewError(domain.KindConflict, "question is already stored", q.ID)
		}
	}
	for _, q := range questions {
		r.stored[q.ID] = q
	}
	return nil
}

type memRecordRepo struct {
	byID map[uuid.UUID]*domain.Record
}

func newMemRecordRepo() *memRecordRepo {
	return &memRecordRepo{byID: map[uuid.UUID]*domain.Record{}}
}

func (r *memRecordRepo) CreateRecord(ctx context.Context, record *domain.Record) error {
	if _, ok := r.byID[record.ID]; ok {
		return domain.NewError(domain.KindConflict, "record id collision", record.ID)
	}
	r.byID[record.ID] = record
	return nil
}

func (r *memRecordRepo) GetRecordByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	record, ok := r.byID[id]
	if !ok {
		return nil, domain.NewError(domain.KindNotFound, "record not found", id.String())
	}
	return record, nil
}

type stubTranscoder struct{}

func (stubTranscoder) ConvertToMP3(ctx context.Context, data []byte) ([]byte, error) {
	return append([]byte("mp3:"), data...), nil
}

type stubProvider struct {
	batches [][]jservice.QuestionData
	calls   int
}

func (s *stubProvider) FetchQuestions(ctx context.Context, count int) ([]jservice.QuestionData, error) {
	if s.calls >= len(s.batches) {
		return nil, nil
	}
	batch := s.batches[s.calls]
	s.calls++
	return batch, nil
}

type apiFixture struct {
	router   chi.Router
	provider *stubProvider
}

func newAPIFixture(questionLimit int) *apiFixture {
	provider := &stubProvider{}

	triviaService := service.NewTriviaService(newMemQuestionRepo(), provider, questionLimit)
	userRepo := newMemUserRepo()
	userService := service.NewUserService(userRepo)
	recordService := service.NewRecordService(newMemRecordRepo(), userRepo, stubTranscoder{})

	triviaHandler := NewTriviaHandler(triviaService)
	userHandler := NewUserHandler(userService)
	recordHandler := NewRecordHandler(recordService, "", 10<<20)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/trivia", triviaHandler.CreateQuestions)
		r.Post("/user", userHandler.CreateUser)
		r.Post("/record", recordHandler.CreateRecord)
		r.Get("/record", recordHandler.GetRecord)
	})

	return &apiFixture{router: r, provider: provider}
}

func (f *apiFixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// multipartUpload собирает multipart-запрос на POST /api/record
func multipartUpload(t *testing.T, userID, token string, audio []byte, contentType string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	if err := mw.WriteField("user_id", userID); err != nil {
		t.Fatalf("failed to write user_id field: %v", err)
	}
	if err := mw.WriteField("user_token", token); err != nil {
		t.Fatalf("failed to write user_token field: %v", err)
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="audio"; filename="voice.wav"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create audio part: %v", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(audio)); err != nil {
		t.Fatalf("failed to write audio part: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/record", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
