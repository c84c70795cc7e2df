package domain

import "errors"

// Entity errors
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrMemberNotFound          = errors.New("member not found")
	ErrTrainingSessionNotFound = errors.New("training session not found")
	ErrSessionNotFound         = errors.New("session not found or expired")
)

// Registration conflicts
var (
	ErrUsernameTaken = errors.New("this username is already in use")
	ErrEmailTaken    = errors.New("this email is already in use")
)
