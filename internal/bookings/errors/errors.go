package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrUnknownCar = errors.New("car does not exist")

	ErrTimeConflict = errors.New("booking time conflicts with existing booking")

	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
