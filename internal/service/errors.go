package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrAllFieldsRequired    = errors.New("all fields are required")
	ErrPasswordsDoNotMatch  = errors.New("passwords do not match")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrPasswordTooLong      = errors.New("password is too long")
	ErrNameAndEmailRequired = errors.New("name and email are required")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")

	ErrInvalidSession        = errors.New("session is expired or invalid")
	ErrSessionCreationFailed = errors.New("session creation failed")

	ErrUnsupportedPasswordStorage = errors.New("unsupported password storage")
)
