package model

import (
	"encoding/json"
	"fmt"
)

// Book is a surveyed title together with the number of library
// systems holding it. Not-found books carry a SystemCount of zero.
type Book struct {
	Title       string     `json:"title"`
	Authors     AuthorList `json:"authors,omitempty"`
	SystemCount int        `json:"systemCount"`
}

// AuthorList is a book's author names. The source documents encode
// authors as either a bare string or an array of strings, so the
// unmarshaler accepts both.
type AuthorList []string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AuthorList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*a = nil
		return nil
	}
	if data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("author string: %w", err)
		}
		*a = AuthorList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("author list: %w", err)
	}
	*a = AuthorList(many)
	return nil
}
