package fplapi

import (
	"strconv"
	"strings"
)

// decimal is a float the FPL API serializes as a JSON string ("4.5").
// Absent, empty, null, or non-numeric values decode to 0.0 rather than
// failing the whole payload.
type decimal float64

func (d *decimal) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(string(data))
	if value == "" || value == "null" {
		*d = 0
		return nil
	}
	value = strings.Trim(value, `"`)
	if value == "" {
		*d = 0
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*d = 0
		return nil
	}
	*d = decimal(parsed)
	return nil
}

type bootstrapEnvelope struct {
	Elements []elementItem `json:"elements"`
	Teams    []teamItem    `json:"teams"`
	Events   []eventItem   `json:"events"`
}

type elementItem struct {
	ID            int64   `json:"id"`
	WebName       string  `json:"web_name"`
	Team          int64   `json:"team"`
	ElementType   int     `json:"element_type"`
	NowCost       int64   `json:"now_cost"`
	Form          decimal `json:"form"`
	PointsPerGame decimal `json:"points_per_game"`
	Status        string  `json:"status"`
	TotalPoints   int     `json:"total_points"`
	Photo         string  `json:"photo"`
}

type teamItem struct {
	ID        int64  `json:"id"`
	Code      int64  `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type eventItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
	IsNext    bool   `json:"is_next"`
	Finished  bool   `json:"finished"`
}

type fixtureItem struct {
	Event           *int64 `json:"event"`
	TeamH           int64  `json:"team_h"`
	TeamA           int64  `json:"team_a"`
	TeamHDifficulty int    `json:"team_h_difficulty"`
	TeamADifficulty int    `json:"team_a_difficulty"`
}
