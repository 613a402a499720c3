package uploads

import "context"

// ObjectStore port (interface for remote blob storage).
type ObjectStore interface {
	// Upload writes the file under key. An empty key asks the store to
	// derive one (timestamp + original name). Never returns a transport
	// error; failures are tagged in the result.
	Upload(ctx context.Context, f File, key string) UploadResult

	// Download reads the whole object into memory. ok=false on any
	// failure so callers can apply fallback delivery.
	Download(ctx context.Context, key string) (data []byte, ok bool)

	// Remove deletes the object. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// CheckReachable probes connectivity. Diagnostics only.
	CheckReachable(ctx context.Context) bool

	// ResolveURL constructs the direct-access URL for a key. Pure, no I/O.
	ResolveURL(key string) string
}
