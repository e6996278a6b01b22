package employee

import "errors"

var (
	ErrNotFound    = errors.New("employee not found")
	ErrInvalidKind = errors.New("unknown work schedule kind")
	ErrNameInUse   = errors.New("employee name already in use")
)
