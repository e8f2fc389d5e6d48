package domain

import "errors"

var (
	ErrGameNotFinished = errors.New("game has not finished")
	ErrUserNotFound    = errors.New("user not found")
)
