package domain

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyPrompt     = errors.New("empty prompt")
)
