package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/skittree/bewiseai-test/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, f *apiFixture, username string) domain.CreatedUserResponse {
	t.Helper()

	form := url.Values{"username": {username}}
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := f.do(t, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.CreatedUserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

// Сквозной сценарий: регистрация, загрузка .wav, скачивание .mp3,
// чужой пользователь и несуществующая запись
func TestRecordLifecycle(t *testing.T) {
	f := newAPIFixture(10)

	alice := registerUser(t, f, "alice")
	assert.Equal(t, int64(1), alice.ID)
	assert.NotEqual(t, uuid.Nil, alice.Token)

	bob := registerUser(t, f, "bob")
	require.Equal(t, int64(2), bob.ID)

	// Загружаем запись от имени alice
	w := f.do(t, multipartUpload(t, "1", alice.Token.String(), []byte("wav-data"), "audio/wav"))
	require.Equal(t, http.StatusCreated, w.Code)

	var locator string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locator))

	parsed, err := url.Parse(locator)
	require.NoError(t, err)
	assert.Equal(t, "/api/record", parsed.Path)
	assert.Equal(t, "1", parsed.Query().Get("user_id"))
	recordID := parsed.Query().Get("id")
	require.NotEmpty(t, recordID)

	// Владелец скачивает запись
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/record?id=%s&user_id=1", recordID), nil)
	w = f.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, fmt.Sprintf(`inline; filename="%s.mp3"`, recordID), w.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte("mp3:wav-data"), w.Body.Bytes())

	// Запись существует, но принадлежит не bob
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/record?id=%s&user_id=2", recordID), nil)
	w = f.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Несуществующая запись
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/record?id=%s&user_id=1", uuid.New()), nil)
	w = f.do(t, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecord_UserNotFound(t *testing.T) {
	f := newAPIFixture(10)

	w := f.do(t, multipartUpload(t, "42", uuid.New().String(), []byte("wav"), "audio/wav"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecord_InvalidToken(t *testing.T) {
	f := newAPIFixture(10)
	registerUser(t, f, "alice")

	w := f.do(t, multipartUpload(t, "1", uuid.New().String(), []byte("wav"), "audio/wav"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Detail struct {
			Statement string `json:"statement"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid UUID token provided", resp.Detail.Statement)
}

func TestCreateRecord_MalformedToken(t *testing.T) {
	f := newAPIFixture(10)
	registerUser(t, f, "alice")

	w := f.do(t, multipartUpload(t, "1", "not-a-uuid", []byte("wav"), "audio/wav"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRecord_BadContentType(t *testing.T) {
	f := newAPIFixture(10)
	alice := registerUser(t, f, "alice")

	tests := []struct {
		name        string
		contentType string
	}{
		{"not audio", "video/mp4"},
		{"wrong subtype", "audio/ogg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, multipartUpload(t, "1", alice.Token.String(), []byte("x"), tt.contentType))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetRecord_InvalidQuery(t *testing.T) {
	f := newAPIFixture(10)

	req := httptest.NewRequest(http.MethodGet, "/api/record?id=oops&user_id=1", nil)
	w := f.do(t, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/record?id=%s&user_id=abc", uuid.New()), nil)
	w = f.do(t, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
