package gameweek

// Gameweek marks one scoring round of the season. The upstream event feed
// flags at most one round as current and one as next.
type Gameweek struct {
	ID        int64
	Name      string
	IsCurrent bool
	IsNext    bool
	Finished  bool
}

// NextID returns the id of the round flagged as next, or 0 when no round is
// flagged. 0 propagates into difficulty lookups as "unknown gameweek", which
// resolves to the neutral rating.
func NextID(gameweeks []Gameweek) int64 {
	for _, gw := range gameweeks {
		if gw.IsNext {
			return gw.ID
		}
	}
	return 0
}
