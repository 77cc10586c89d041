package activity

import "errors"

// ErrUnknownUser is returned when a record references a user that does not exist.
var ErrUnknownUser = errors.New("unknown user")
