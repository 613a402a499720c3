package uploads

import "fmt"

// MaxFileSize is the upload size limit (10 MiB).
const MaxFileSize = 10 * 1024 * 1024

// allowedContentTypes mirrors the picker extensions
// .txt .doc .docx .pdf .mp3 .wav .m4a .ogg
var allowedContentTypes = map[string]bool{
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/pdf": true,
	"audio/mpeg":      true,
	"audio/wav":       true,
	"audio/mp4":       true,
	"audio/ogg":       true,
}

// ValidationError carries the human-readable reason a file was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validate checks the file against the content-type allow-list and the
// size limit. Returns nil when the file is acceptable.
func Validate(f File) error {
	if !allowedContentTypes[f.ContentType] {
		return &ValidationError{
			Reason: fmt.Sprintf("Invalid file type: %s. Please upload one of the supported types.", f.ContentType),
		}
	}
	if f.Size > MaxFileSize {
		return &ValidationError{
			Reason: fmt.Sprintf("File is too large (%.2f MB). Maximum size is 10MB.", float64(f.Size)/(1024*1024)),
		}
	}
	return nil
}
