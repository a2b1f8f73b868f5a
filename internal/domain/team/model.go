package team

import (
	"fmt"
	"strings"
)

// Club is immutable reference data for one football club.
type Club struct {
	ID    int64
	Code  int64 // badge asset code, distinct from ID upstream
	Name  string
	Short string
}

func (c Club) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("club id must be greater than zero")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("club name is required")
	}

	return nil
}

// ByID builds a lookup index over a club list.
func ByID(clubs []Club) map[int64]Club {
	out := make(map[int64]Club, len(clubs))
	for _, c := range clubs {
		out[c.ID] = c
	}
	return out
}
