package openai

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/llmconnect"
)

// FileService implements ai.FileAPI on the OpenAI files API.
type FileService struct {
	client *openai.Client
}

// Upload stores a file with the provider and returns its id.
func (s *FileService) Upload(ctx context.Context, file *ai.FileInput, purpose ai.FilePurpose) (string, error) {
	if file == nil {
		return "", &ai.FileError{Message: "empty file input"}
	}
	data, filename, err := file.Content()
	if err != nil {
		return "", &ai.FileError{Message: "reading upload content", Cause: err}
	}

	resp, err := s.client.Files.New(ctx, openai.FileNewParams{
		File:    openai.File(bytes.NewReader(data), filename, "application/octet-stream"),
		Purpose: openai.FilePurpose(purpose),
	})
	if err != nil {
		return "", wrapFileError(err)
	}
	return resp.ID, nil
}

// Retrieve fetches file metadata.
func (s *FileService) Retrieve(ctx context.Context, fileID string) (*ai.FileObject, error) {
	resp, err := s.client.Files.Get(ctx, fileID)
	if err != nil {
		return nil, wrapFileError(err)
	}
	return toFileObject(resp), nil
}

// Download fetches file content.
func (s *FileService) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := s.client.Files.Content(ctx, fileID)
	if err != nil {
		return nil, wrapFileError(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ai.FileError{Message: "reading file content", Cause: err}
	}
	return data, nil
}

// Delete removes a file.
func (s *FileService) Delete(ctx context.Context, fileID string) error {
	if _, err := s.client.Files.Delete(ctx, fileID); err != nil {
		return wrapFileError(err)
	}
	return nil
}

// List returns file metadata, optionally filtered by purpose.
func (s *FileService) List(ctx context.Context, purpose ai.FilePurpose) ([]*ai.FileObject, error) {
	params := openai.FileListParams{}
	if purpose != "" {
		params.Purpose = openai.String(string(purpose))
	}

	page, err := s.client.Files.List(ctx, params)
	if err != nil {
		return nil, wrapFileError(err)
	}

	files := make([]*ai.FileObject, 0, len(page.Data))
	for i := range page.Data {
		files = append(files, toFileObject(&page.Data[i]))
	}
	return files, nil
}

func toFileObject(f *openai.FileObject) *ai.FileObject {
	return &ai.FileObject{
		ID:            f.ID,
		Filename:      f.Filename,
		Purpose:       ai.FilePurpose(f.Purpose),
		Bytes:         f.Bytes,
		CreatedAt:     time.Unix(f.CreatedAt, 0).UTC(),
		Status:        string(f.Status),
		StatusDetails: f.StatusDetails,
	}
}

var _ ai.FileAPI = (*FileService)(nil)
