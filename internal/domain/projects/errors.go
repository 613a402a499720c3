package projects

import "errors"

// ErrNotFound indicates no project exists for the requested ID.
var ErrNotFound = errors.New("project not found")

// ErrEmptyFileKey indicates an attempt to create a project without a
// resolved file key. A project cannot exist without one.
var ErrEmptyFileKey = errors.New("project file key is empty")
