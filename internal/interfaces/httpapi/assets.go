package httpapi

import (
	"fmt"

	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
	"github.com/riskibarqy/fpl-advisor/internal/domain/team"
)

const (
	faceURLFormat  = "https://resources.premierleague.com/premierleague/photos/players/40x40/p%s.png"
	badgeURLFormat = "https://resources.premierleague.com/premierleague/badges/70/t%d.png"
	// Served when the upstream photo reference is absent or unusable.
	placeholderFaceURL = "https://upload.wikimedia.org/wikipedia/commons/8/89/Portrait_Placeholder.png"
)

func faceURL(p player.Player) string {
	code := p.PhotoCode()
	if code == "" {
		return placeholderFaceURL
	}
	return fmt.Sprintf(faceURLFormat, code)
}

func badgeURL(club team.Club) string {
	if club.Code <= 0 {
		return ""
	}
	return fmt.Sprintf(badgeURLFormat, club.Code)
}
