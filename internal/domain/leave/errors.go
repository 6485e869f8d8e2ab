package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave record not found")
	ErrLeaveAlreadyResolved = errors.New("leave record already resolved")
)
