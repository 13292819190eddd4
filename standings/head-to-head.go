package standings

import (
	"gorm.io/gorm"
)

// HeadToHead is the lifetime pairwise aggregate between two teams, season
// independent.
type HeadToHead struct {
	Team1Id        int `json:"team1_id"`
	Team2Id        int `json:"team2_id"`
	MatchesPlayed  int `json:"matches_played"`
	Team1Wins      int `json:"team1_wins"`
	Team2Wins      int `json:"team2_wins"`
	Team1NetPoints int `json:"team1_net_points"`
	Team2NetPoints int `json:"team2_net_points"`
}

type headToHeadRow struct {
	TeamAId        int
	TeamBId        int
	TotalMatches   int
	TeamAWins      int
	TeamBWins      int
	TeamANetPoints int
	TeamBNetPoints int
}

// GetHeadToHead queries the pairwise aggregate source. When the two teams
// have never met the input ids are echoed back with all-zero totals.
func GetHeadToHead(db *gorm.DB, team1Id int, team2Id int) (*HeadToHead, error) {
	var row headToHeadRow
	result := db.Raw(`SELECT * FROM cpl.get_lifetime_head_to_head(?, ?)`, team1Id, team2Id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return &HeadToHead{Team1Id: team1Id, Team2Id: team2Id}, nil
	}
	return &HeadToHead{
		Team1Id:        row.TeamAId,
		Team2Id:        row.TeamBId,
		MatchesPlayed:  row.TotalMatches,
		Team1Wins:      row.TeamAWins,
		Team2Wins:      row.TeamBWins,
		Team1NetPoints: row.TeamANetPoints,
		Team2NetPoints: row.TeamBNetPoints,
	}, nil
}
