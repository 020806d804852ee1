package pubmed

import "errors"

var (
	// ErrEmailRequired is returned when a client is constructed without a
	// contact email.
	ErrEmailRequired = errors.New("contact email required")

	// ErrEmptyTerm is returned when Search is called with an empty term.
	ErrEmptyTerm = errors.New("search term cannot be empty")

	// ErrUnexpectedStatus is returned when the API responds with a non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
