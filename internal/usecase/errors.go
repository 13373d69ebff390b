package usecase

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrUnknownTeam   = errors.New("unknown team")
)
