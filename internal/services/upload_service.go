package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"hireview_backend/internal/repositories"
	"hireview_backend/internal/storage"
	"hireview_backend/pkg/apperrors"
)

// Виды файлов кандидатского потока.
const (
	UploadKindResume    = "resume"
	UploadKindCV        = "cv"
	UploadKindRecording = "recording"
)

const maxUploadSize = 50 << 20 // 50 MB

var allowedUploadExtensions = map[string]map[string]bool{
	UploadKindResume:    {".pdf": true, ".doc": true, ".docx": true},
	UploadKindCV:        {".pdf": true, ".doc": true, ".docx": true},
	UploadKindRecording: {".webm": true, ".mp4": true, ".mp3": true, ".wav": true},
}

// UploadService кладет документы и записи интервью в blob-хранилище
// и привязывает полученный URL к интервью.
type UploadService struct {
	interviewRepo repositories.InterviewRepository
	storage       storage.Storage
}

func NewUploadService(interviewRepo repositories.InterviewRepository, store storage.Storage) *UploadService {
	return &UploadService{interviewRepo: interviewRepo, storage: store}
}

// UploadInterviewFile сохраняет файл и записывает его URL в соответствующее
// поле интервью. Имя файла в хранилище рандомизировано, оригинальное имя
// сохраняется только в расширении.
func (s *UploadService) UploadInterviewFile(ctx context.Context, interviewID uint, kind string, fileHeader *multipart.FileHeader) (string, error) {
	interview, err := s.interviewRepo.FindByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return "", apperrors.ErrEntityNotFound("interview", err)
		}
		return "", apperrors.InternalError(err)
	}

	allowed, ok := allowedUploadExtensions[kind]
	if !ok {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("unknown upload kind: %s", kind))
	}
	if fileHeader.Size > maxUploadSize {
		return "", apperrors.NewBadRequestError("file is too large")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowed[ext] {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("file type %s is not allowed for %s", ext, kind))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	path := fmt.Sprintf("interviews/%d/%s/%s%s", interview.ID, kind, uuid.NewString(), ext)
	contentType := fileHeader.Header.Get("Content-Type")
	if err := s.storage.Save(ctx, path, file, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	switch kind {
	case UploadKindResume:
		interview.ResumeURL = &url
	case UploadKindCV:
		interview.CvURL = &url
	case UploadKindRecording:
		interview.RecordingURL = &url
	}
	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
