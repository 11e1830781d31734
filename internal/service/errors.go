package service

import "errors"

var (
	// ErrNoImages is returned when a create request carries no image files.
	// Checked before any storage or database work.
	ErrNoImages = errors.New("at least one image is required")

	// ErrAllUploadsFailed is returned when every image upload of a create
	// request failed; no row is inserted in that case.
	ErrAllUploadsFailed = errors.New("all image uploads failed")

	// ErrInvalidPassword is returned for a password that does not match the
	// stored admin credential.
	ErrInvalidPassword = errors.New("invalid password")
)
