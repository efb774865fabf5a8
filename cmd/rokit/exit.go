package main

const (
	exitCodeFailure = 1
	// exitCodeIssues reports that an id list was read but contained invalid or duplicate entries.
	exitCodeIssues = 2
)

type exitError struct {
	code    int
	message string
	silent  bool
}

func (e exitError) Error() string {
	return e.message
}

func exitSilent(code int) error {
	return exitError{code: code, silent: true}
}
