package app

import (
	"rokit/internal/tool"
)

// ParsedID is the inspection view of one parsed tool id.
type ParsedID struct {
	Input     string `json:"input"`
	Provider  string `json:"provider"`
	Author    string `json:"author"`
	Name      string `json:"name"`
	Canonical string `json:"canonical"`
	Key       string `json:"key"`
}

func newParsedID(input string, id tool.ID) ParsedID {
	return ParsedID{
		Input:     input,
		Provider:  id.Provider().String(),
		Author:    id.Author(),
		Name:      id.Name(),
		Canonical: id.String(),
		Key:       id.Key().String(),
	}
}

// Parse parses every input, stopping at the first invalid one.
func (a *App) Parse(inputs []string) ([]ParsedID, error) {
	out := make([]ParsedID, 0, len(inputs))
	for _, input := range inputs {
		id, err := tool.ParseID(input)
		if err != nil {
			return nil, err
		}
		out = append(out, newParsedID(input, id))
	}
	return out, nil
}

// Sort parses inputs, drops case-insensitive duplicates keeping the first
// spelling, and returns the ids in canonical order.
func (a *App) Sort(inputs []string) ([]tool.ID, error) {
	ids := make([]tool.ID, 0, len(inputs))
	for _, input := range inputs {
		id, err := tool.ParseID(input)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	ids = tool.DedupeIDs(ids)
	tool.SortIDs(ids)
	return ids, nil
}
