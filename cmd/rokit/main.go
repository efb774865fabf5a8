package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		if message := exitMessage(err); message != "" {
			fmt.Fprintln(os.Stderr, message)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var exitErr exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return exitCodeFailure
}

func exitMessage(err error) string {
	var exitErr exitError
	if errors.As(err, &exitErr) {
		if exitErr.silent {
			return ""
		}
		return exitErr.message
	}
	return err.Error()
}
