package anthropic

import (
	"bytes"
	"context"
	"io"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/llmconnect"
)

// FileService implements ai.FileAPI on the Anthropic beta files API. The
// provider types files by content rather than declared intent, so the
// caller's purpose is accepted and ignored on upload, every listed file
// reports the synthetic purpose "user_data", and status is always
// "processed".
type FileService struct {
	client *anthropic.Client
}

var filesBetas = []anthropic.AnthropicBeta{anthropic.AnthropicBetaFilesAPI2025_04_14}

// Upload stores a file with the provider and returns its id. The purpose
// argument has no native equivalent and is ignored.
func (s *FileService) Upload(ctx context.Context, file *ai.FileInput, _ ai.FilePurpose) (string, error) {
	if file == nil {
		return "", &ai.FileError{Message: "empty file input"}
	}
	data, filename, err := file.Content()
	if err != nil {
		return "", &ai.FileError{Message: "reading upload content", Cause: err}
	}

	meta, err := s.client.Beta.Files.Upload(ctx, anthropic.BetaFileUploadParams{
		File:  anthropic.File(bytes.NewReader(data), filename, "application/octet-stream"),
		Betas: filesBetas,
	})
	if err != nil {
		return "", wrapFileError(err)
	}
	return meta.ID, nil
}

// Retrieve fetches file metadata.
func (s *FileService) Retrieve(ctx context.Context, fileID string) (*ai.FileObject, error) {
	meta, err := s.client.Beta.Files.GetMetadata(ctx, fileID, anthropic.BetaFileGetMetadataParams{
		Betas: filesBetas,
	})
	if err != nil {
		return nil, wrapFileError(err)
	}
	return toFileObject(meta), nil
}

// Download fetches file content.
func (s *FileService) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := s.client.Beta.Files.Download(ctx, fileID, anthropic.BetaFileDownloadParams{
		Betas: filesBetas,
	})
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
	_, err := s.client.Beta.Files.Delete(ctx, fileID, anthropic.BetaFileDeleteParams{
		Betas: filesBetas,
	})
	if err != nil {
		return wrapFileError(err)
	}
	return nil
}

// List returns all files. The provider has no purpose concept, so the filter
// is ignored rather than partially honored.
func (s *FileService) List(ctx context.Context, _ ai.FilePurpose) ([]*ai.FileObject, error) {
	page, err := s.client.Beta.Files.List(ctx, anthropic.BetaFileListParams{
		Betas: filesBetas,
	})
	if err != nil {
		return nil, wrapFileError(err)
	}

	files := make([]*ai.FileObject, 0, len(page.Data))
	for i := range page.Data {
		files = append(files, toFileObject(&page.Data[i]))
	}
	return files, nil
}

func toFileObject(meta *anthropic.FileMetadata) *ai.FileObject {
	return &ai.FileObject{
		ID:        meta.ID,
		Filename:  meta.Filename,
		Purpose:   ai.FilePurposeUserData,
		Bytes:     meta.SizeBytes,
		CreatedAt: meta.CreatedAt,
		Status:    "processed",
	}
}

var _ ai.FileAPI = (*FileService)(nil)
