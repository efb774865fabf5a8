package idlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"rokit/internal/domain"
	"rokit/internal/tool"
)

const opLoad = "idlist.load"

type entry struct {
	line int
	text string
}

type tomlList struct {
	Tools []string `toml:"tools"`
}

// Load reads and validates the tool ids listed in path.
func Load(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, domain.FileNotFound(opLoad, path)
		}
		return Result{}, domain.FromIO(opLoad, err)
	}
	return Parse(path, FormatForPath(path), data)
}

// Parse validates an id list already read into memory.
func Parse(path string, format Format, data []byte) (Result, error) {
	if !utf8.Valid(data) {
		return Result{}, domain.InvalidUTF8(opLoad)
	}

	var (
		entries []entry
		err     error
	)
	switch format {
	case FormatJSON:
		entries, err = decodeJSON(data)
	case FormatTOML:
		entries, err = decodeTOML(data)
	default:
		format = FormatText
		entries = decodeText(data)
	}
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Path:   path,
		Format: format,
		IDs:    make([]tool.ID, 0, len(entries)),
	}
	seen := make(map[tool.Key]tool.ID, len(entries))
	for _, e := range entries {
		id, err := tool.ParseID(e.text)
		if err != nil {
			result.Issues = append(result.Issues, Issue{
				Line:  e.line,
				Entry: e.text,
				Kind:  IssueInvalid,
				Err:   err,
			})
			continue
		}
		if first, ok := seen[id.Key()]; ok {
			result.Issues = append(result.Issues, Issue{
				Line:  e.line,
				Entry: e.text,
				Kind:  IssueDuplicate,
				Err:   fmt.Errorf("duplicate of %s", first),
			})
			continue
		}
		seen[id.Key()] = id
		result.IDs = append(result.IDs, id)
	}
	return result, nil
}

func decodeText(data []byte) []entry {
	lines := strings.Split(string(data), "\n")
	entries := make([]entry, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(stripComment(line))
		if line == "" {
			continue
		}
		entries = append(entries, entry{line: i + 1, text: line})
	}
	return entries
}

// stripComment drops a '#' comment that starts the line or follows whitespace.
// A '#' inside an entry is kept so the id is validated as written.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
			return line[:i]
		}
	}
	return line
}

func decodeJSON(data []byte) ([]entry, error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.FromJSON(opLoad, err)
	}
	return indexed(raw), nil
}

func decodeTOML(data []byte) ([]entry, error) {
	var payload tomlList
	if err := toml.Unmarshal(data, &payload); err != nil {
		return nil, domain.FromTOML(opLoad, err)
	}
	return indexed(payload.Tools), nil
}

func indexed(raw []string) []entry {
	entries := make([]entry, 0, len(raw))
	for i, text := range raw {
		entries = append(entries, entry{line: i + 1, text: text})
	}
	return entries
}
