package judge

import "errors"

// ErrUnavailable is returned by Judge when no provider is configured.
var ErrUnavailable = errors.New("semantic judge unavailable")
