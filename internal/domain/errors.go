package domain

import "errors"

// ErrStorageUnavailable is wrapped by every store backend when the backing medium
// cannot be read or written.
var ErrStorageUnavailable = errors.New("storage unavailable")
