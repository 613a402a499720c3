package analysis

import "errors"

// ErrUnavailable indicates the backing source could not produce a report
// (provider outage, malformed response).
var ErrUnavailable = errors.New("analysis source unavailable")
