package idlist

import (
	"path/filepath"
	"strings"

	"rokit/internal/tool"
)

// Format identifies how an id list file is encoded.
type Format string

const (
	// FormatText is one id per line, with '#' comments.
	FormatText Format = "text"
	// FormatJSON is a JSON array of id strings.
	FormatJSON Format = "json"
	// FormatTOML is a TOML document with a top-level tools array.
	FormatTOML Format = "toml"
)

const (
	// IssueInvalid indicates an entry that is not a valid tool id.
	IssueInvalid = "invalid"
	// IssueDuplicate indicates an entry that repeats an earlier id, ignoring case.
	IssueDuplicate = "duplicate"
)

// Issue describes a problem with a single entry.
type Issue struct {
	// Line is 1-based for text files and the 1-based array position otherwise.
	Line  int
	Entry string
	Kind  string
	Err   error
}

func (i Issue) Message() string {
	if i.Err != nil {
		return i.Err.Error()
	}
	return i.Kind
}

// Result holds the ids and issues found in one file.
type Result struct {
	Path   string
	Format Format
	IDs    []tool.ID
	Issues []Issue
}

// OK reports whether the file had no issues.
func (r Result) OK() bool {
	return len(r.Issues) == 0
}

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}
