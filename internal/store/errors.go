package store

import "errors"

// Error kinds returned by Store methods. Callers match them with errors.Is;
// the wrapped message carries the path and underlying cause.
var (
	// ErrNotFound means the document does not exist and creation was not requested.
	ErrNotFound = errors.New("config file does not exist")

	// ErrMalformed means the file content is not parseable JSON.
	ErrMalformed = errors.New("config file is not valid JSON")

	// ErrNotAnObject means the file is valid JSON but its root is not an object.
	ErrNotAnObject = errors.New("config file is not a JSON object")

	// ErrIO means reading or writing the file failed.
	ErrIO = errors.New("config file i/o error")
)
