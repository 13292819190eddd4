package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    MatchStatus
		to      MatchStatus
		allowed bool
	}{
		{MatchStatusNotStarted, MatchStatusNotStarted, true},
		{MatchStatusNotStarted, MatchStatusInProgress, true},
		{MatchStatusNotStarted, MatchStatusCompleted, true},
		{MatchStatusInProgress, MatchStatusNotStarted, true},
		{MatchStatusInProgress, MatchStatusInProgress, true},
		{MatchStatusInProgress, MatchStatusCompleted, true},
		{MatchStatusCompleted, MatchStatusCompleted, true},
		{MatchStatusCompleted, MatchStatusNotStarted, false},
		{MatchStatusCompleted, MatchStatusInProgress, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.allowed, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}
