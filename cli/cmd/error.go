package cmd

import "github.com/rbleattler/RegExRules/pattern"

// Predefined errors (sentinel values).
var (
	ErrOpenSource  = pattern.NewError("open source")
	ErrVerify      = pattern.NewError("verify pattern")
	ErrWriteOutput = pattern.NewError("write output")
	ErrWriteConfig = pattern.NewError("write configuration file")
	ErrFileExists  = pattern.NewError("file exists (use --force to overwrite)")
)
