package export

import "errors"

var (
	// ErrUnknownFormat is returned for an output format other than csv or json.
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrEmptyCSV is returned by ReadCSV when the input has no header row.
	ErrEmptyCSV = errors.New("csv input has no header row")
)
