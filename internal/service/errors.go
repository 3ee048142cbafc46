package service

import "errors"

// ErrDuplicateTitle is returned when a generated blog's cleaned title
// matches one already stored, compared case-insensitively. The caller
// decides whether to regenerate, rephrase the topic, or surface the
// conflict.
var ErrDuplicateTitle = errors.New("a blog with this title already exists")
