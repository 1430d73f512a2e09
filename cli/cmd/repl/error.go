package repl

import "github.com/rbleattler/RegExRules/pattern"

// Predefined errors (sentinel values).
var (
	ErrOutOfBounds  = pattern.NewError("index out of range")
	ErrEditDeclined = pattern.NewError("decline edit")
	ErrNoRule       = pattern.NewError("nothing compiled yet")
)
