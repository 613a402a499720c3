package uploads

import "io"

// Status enum for the upload pipeline state machine.
type Status string

const (
	StatusIdle              Status = "IDLE"
	StatusValidating        Status = "VALIDATING"
	StatusUploading         Status = "UPLOADING"
	StatusSucceeded         Status = "SUCCEEDED"
	StatusFallbackSucceeded Status = "FALLBACK_SUCCEEDED"
	StatusFailed            Status = "FAILED"
)

// File is one artifact handed to the pipeline: metadata plus content.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadResult is the tagged outcome of a remote store upload. Transport
// failures land in Err instead of propagating.
type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Key     string `json:"key,omitempty"`
	Err     string `json:"error,omitempty"`
}
