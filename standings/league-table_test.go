package standings

import (
	"cpl/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLeagueTableEmpty(t *testing.T) {
	table := ComputeLeagueTable([]RawStandingRow{}, repository.SeasonStatusUpcoming)
	assert.NotNil(t, table)
	assert.Empty(t, table.Standings)
	assert.Nil(t, table.WinnerId)
	assert.Equal(t, repository.SeasonStatusUpcoming, table.SeasonStatus)
}

func TestComputeLeagueTablePreservesSourceOrder(t *testing.T) {
	rows := []RawStandingRow{
		{TeamId: 3, TeamName: "team3", MatchesPlayed: 2, Wins: 2, Points: 4, NetPoints: 10},
		{TeamId: 1, TeamName: "team1", MatchesPlayed: 2, Wins: 1, Points: 2, NetPoints: -2},
		{TeamId: 2, TeamName: "team2", MatchesPlayed: 2, Wins: 0, Points: 0, NetPoints: -8},
	}
	table := ComputeLeagueTable(rows, repository.SeasonStatusOngoing)
	assert.Len(t, table.Standings, 3)
	// the source is the ranking authority, rows must never be reordered here
	assert.Equal(t, 3, table.Standings[0].TeamId)
	assert.Equal(t, 1, table.Standings[1].TeamId)
	assert.Equal(t, 2, table.Standings[2].TeamId)
	assert.Equal(t, 4, table.Standings[0].Points)
	assert.Equal(t, -8, table.Standings[2].NetPoints)
	assert.Nil(t, table.WinnerId)
}

func TestComputeLeagueTableWinnerFlag(t *testing.T) {
	rows := []RawStandingRow{
		{TeamId: 1, TeamName: "team1", Points: 4},
		{TeamId: 2, TeamName: "team2", Points: 2, IsWinner: true},
	}
	table := ComputeLeagueTable(rows, repository.SeasonStatusCompleted)
	assert.NotNil(t, table.WinnerId)
	assert.Equal(t, 2, *table.WinnerId)
}

func TestComputeLeagueTableLastWinnerFlagWins(t *testing.T) {
	// a malformed source marking two winners resolves to the later row
	rows := []RawStandingRow{
		{TeamId: 1, TeamName: "team1", IsWinner: true},
		{TeamId: 2, TeamName: "team2"},
		{TeamId: 3, TeamName: "team3", IsWinner: true},
	}
	table := ComputeLeagueTable(rows, repository.SeasonStatusCompleted)
	assert.NotNil(t, table.WinnerId)
	assert.Equal(t, 3, *table.WinnerId)
}
