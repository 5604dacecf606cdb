package domain

import "errors"

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// ErrStaleLastChange is returned when an update carries a lastchange stamp
// that no longer matches the stored row. The caller holds an outdated copy and
// must re-read before retrying.
var ErrStaleLastChange = errors.New("lastchange stamp is stale")
