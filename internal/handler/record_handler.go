package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/skittree/bewiseai-test/internal/domain"
	"github.com/skittree/bewiseai-test/internal/service"
)

type RecordHandler struct {
	recordService *service.RecordService
	baseURL       string
	maxFileSize   int64
}

func NewRecordHandler(recordService *service.RecordService, baseURL string, maxFileSize int64) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		maxFileSize:   maxFileSize,
	}
}

// CreateRecord сохраняет загруженную .wav запись как .mp3 для указанного
// user_id после проверки user_token. Возвращает ссылку на скачивание
func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		respondError(w, domain.NewError(domain.KindBadRequest, "failed to parse multipart form"))
		return
	}

	userID, err := strconv.ParseInt(r.PostFormValue("user_id"), 10, 64)
	if err != nil {
		respondError(w, domain.NewError(domain.KindBadRequest,
			"user_id must be an integer", r.PostFormValue("user_id")))
		return
	}

	token, err := uuid.Parse(r.PostFormValue("user_token"))
	if err != nil {
		respondError(w, domain.NewError(domain.KindUnauthorized, "invalid UUID token provided"))
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		respondError(w, domain.NewError(domain.KindBadRequest, "audio file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, fmt.Errorf("failed to read audio file: %w", err))
		return
	}

	record, err := h.recordService.SaveRecord(r.Context(), userID, token, data,
		header.Header.Get("Content-Type"))
	if err != nil {
		respondError(w, err)
		return
	}

	url := fmt.Sprintf("%s/api/record?id=%s&user_id=%d",
		h.resolveBaseURL(r), record.ID, record.UserID)
	respondJSON(w, http.StatusCreated, url)
}

// GetRecord отдает сохраненный .mp3 по id записи и id владельца
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		respondError(w, domain.NewError(domain.KindBadRequest,
			"id must be a valid UUID", r.URL.Query().Get("id")))
		return
	}

	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		respondError(w, domain.NewError(domain.KindBadRequest,
			"user_id must be an integer", r.URL.Query().Get("user_id")))
		return
	}

	record, err := h.recordService.GetRecord(r.Context(), id, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`inline; filename="%s.%s"`, record.ID, domain.RecordFileExt))
	w.Header().Set("Content-Type", domain.RecordMIMEType)
	w.Write(record.Audio)
}

// resolveBaseURL берет BASE_URL из конфигурации, иначе строит его из запроса
func (h *RecordHandler) resolveBaseURL(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
