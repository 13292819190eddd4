// Package standings holds the derived views over completed matches: the
// ranked league table, the lifetime head-to-head aggregate and the rule that
// wires the top two ranked teams into the season's Final.
package standings

import (
	"cpl/metrics"
	"cpl/repository"
	"time"

	"gorm.io/gorm"
)

// RawStandingRow is one row of the ranked-standings source. The source is the
// ranking authority; rows arrive already ordered.
type RawStandingRow struct {
	TeamId          int    `json:"team_id"`
	TeamName        string `json:"team_name"`
	MatchesPlayed   int    `json:"matches_played"`
	Wins            int    `json:"wins"`
	Points          int    `json:"points"`
	NetPoints       int    `json:"net_points"`
	HeadToHeadWins  int    `json:"head_to_head_wins"`
	IsWinner        bool   `json:"is_winner"`
}

type LeagueTableStanding struct {
	TeamId         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Points         int    `json:"points"`
	NetPoints      int    `json:"net_points"`
	HeadToHeadWins int    `json:"head_to_head_wins"`
}

type LeagueTable struct {
	WinnerId     *int                    `json:"winner_id"`
	SeasonStatus repository.SeasonStatus `json:"season_status"`
	Standings    []LeagueTableStanding   `json:"standings"`
}

// ComputeLeagueTable assembles the league table from raw source rows. Row
// order is preserved as-is. When more than one row carries the winner flag
// the last one wins; that matches the source iteration order and is pinned
// by tests rather than corrected here.
func ComputeLeagueTable(rows []RawStandingRow, status repository.SeasonStatus) *LeagueTable {
	table := &LeagueTable{
		SeasonStatus: status,
		Standings:    make([]LeagueTableStanding, 0, len(rows)),
	}
	for _, row := range rows {
		table.Standings = append(table.Standings, LeagueTableStanding{
			TeamId:         row.TeamId,
			TeamName:       row.TeamName,
			MatchesPlayed:  row.MatchesPlayed,
			Wins:           row.Wins,
			Points:         row.Points,
			NetPoints:      row.NetPoints,
			HeadToHeadWins: row.HeadToHeadWins,
		})
		if row.IsWinner {
			winnerId := row.TeamId
			table.WinnerId = &winnerId
		}
	}
	return table
}

// FetchRows queries the ranked-standings source for the season. A season with
// no matches yields an empty slice, not an error.
func FetchRows(db *gorm.DB, seasonId int) ([]RawStandingRow, error) {
	start := time.Now()
	rows := make([]RawStandingRow, 0)
	result := db.Raw(`SELECT * FROM cpl.get_league_table(?)`, seasonId).Scan(&rows)
	metrics.LeagueTableQueryDuration.Observe(time.Since(start).Seconds())
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// GetLeagueTable fetches the season's ranked rows and assembles the table.
// Season existence is the caller's concern; here "no rows" means an empty
// league stage.
func GetLeagueTable(db *gorm.DB, season *repository.Season) (*LeagueTable, error) {
	rows, err := FetchRows(db, season.Id)
	if err != nil {
		return nil, err
	}
	return ComputeLeagueTable(rows, season.Status), nil
}
