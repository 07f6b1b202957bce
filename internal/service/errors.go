package service

import "errors"

var (
	ErrEmailExists         = errors.New("user with this email already exists")
	ErrEmailNotFound       = errors.New("no user registered with this email")
	ErrInvalidPassword     = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrInvalidActivityType = errors.New("invalid activity type")
	ErrInvalidDoneAt       = errors.New("doneAt must be an RFC 3339 timestamp")
	ErrInvalidDuration     = errors.New("durationInMinutes must be between 1 and 1440")
	ErrFileMissing         = errors.New("file part is missing")
	ErrFileTooLarge        = errors.New("file size exceeds the upload limit")
	ErrUnsupportedFileType = errors.New("only JPEG and PNG images are allowed")
)
