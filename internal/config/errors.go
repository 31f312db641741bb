package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidBaseURL is returned when the API base URL is not an absolute
	// http or https URL.
	ErrInvalidBaseURL = errors.New("invalid base URL: must be an absolute http(s) URL")

	// ErrInvalidTimeout is returned when the request timeout is negative.
	// Zero disables the timeout.
	ErrInvalidTimeout = errors.New("invalid timeout: must be non-negative")

	// ErrNoOutputDir is returned when the output directory is empty.
	ErrNoOutputDir = errors.New("no output directory specified")

	// ErrInvalidFormat is returned for an output format other than csv or json.
	ErrInvalidFormat = errors.New("invalid output format: must be csv or json")

	// ErrInvalidBillYear is returned when the bill year is negative.
	ErrInvalidBillYear = errors.New("invalid bill year: must be non-negative")

	// ErrInvalidBillNumber is returned when the bill number is negative.
	ErrInvalidBillNumber = errors.New("invalid bill number: must be non-negative")

	// ErrInvalidDate is returned when a session date is not in YYYYMMDD form.
	ErrInvalidDate = errors.New("invalid date: expected YYYYMMDD")

	// ErrInvalidDateRange is returned when the start date is after the end date.
	ErrInvalidDateRange = errors.New("invalid date range: start date is after end date")

	// ErrInvalidPreviewRows is returned when the preview row count is negative.
	ErrInvalidPreviewRows = errors.New("invalid preview rows: must be non-negative")
)
