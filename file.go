package llmconnect

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FilePurpose declares the intended use of an uploaded file.
type FilePurpose string

const (
	FilePurposeBatch    FilePurpose = "batch"
	FilePurposeFineTune FilePurpose = "fine-tune"
	// FilePurposeUserData is the synthetic purpose reported for Anthropic,
	// which types files by content rather than declared intent.
	FilePurposeUserData FilePurpose = "user_data"
)

// FileObject is provider file metadata: an ephemeral projection of
// server-side state, never cached by this library.
type FileObject struct {
	ID            string      `json:"id"`
	Filename      string      `json:"filename"`
	Purpose       FilePurpose `json:"purpose"`
	Bytes         int64       `json:"bytes"`
	CreatedAt     time.Time   `json:"createdAt"`
	Status        string      `json:"status"`
	StatusDetails string      `json:"statusDetails,omitempty"`
}

// FileInput is upload content in one of three shapes: a path, raw bytes, or
// an open byte stream. Adapters normalize all three into the provider SDK's
// expected upload form.
type FileInput struct {
	Path   string
	Data   []byte
	Reader io.Reader
	// Filename names the upload for byte and reader inputs; for paths the
	// base name is used when Filename is empty.
	Filename string
}

// FileFromPath creates a FileInput reading from a local path.
func FileFromPath(path string) *FileInput {
	return &FileInput{Path: path}
}

// FileFromBytes creates a FileInput from an in-memory payload.
func FileFromBytes(data []byte, filename string) *FileInput {
	return &FileInput{Data: data, Filename: filename}
}

// FileFromReader creates a FileInput from an open byte stream. The stream is
// consumed exactly once.
func FileFromReader(r io.Reader, filename string) *FileInput {
	return &FileInput{Reader: r, Filename: filename}
}

// Content resolves the input into its bytes and an upload filename.
func (f *FileInput) Content() ([]byte, string, error) {
	name := f.Filename
	switch {
	case f.Path != "":
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", f.Path, err)
		}
		if name == "" {
			name = filepath.Base(f.Path)
		}
		return data, name, nil
	case f.Data != nil:
		if name == "" {
			name = "file.jsonl"
		}
		return f.Data, name, nil
	case f.Reader != nil:
		data, err := io.ReadAll(f.Reader)
		if err != nil {
			return nil, "", fmt.Errorf("reading stream: %w", err)
		}
		if name == "" {
			name = "file.jsonl"
		}
		return data, name, nil
	}
	return nil, "", fmt.Errorf("empty file input")
}
