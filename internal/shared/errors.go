package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// List state errors
	ErrMalformedData = fmt.Errorf("malformed list data")
	ErrSelection     = fmt.Errorf("exactly two lists required")
	ErrInvalidState  = fmt.Errorf("invalid state")
	ErrUndefinedList = fmt.Errorf("undefined list number")

	// Data source errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrUnexpectedFormat   = fmt.Errorf("unexpected data format")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
