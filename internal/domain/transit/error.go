package transit

import (
	"errors"
)

var (
	ErrNotFound       = errors.New("transit record not found")
	ErrExitAlreadySet = errors.New("exit time already recorded")
)
