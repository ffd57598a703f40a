package domain

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up")
	ErrNotRegistered    = errors.New("student not registered")
)
