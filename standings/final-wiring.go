package standings

import (
	"cpl/metrics"
	"cpl/utils"

	"gorm.io/gorm"
)

type leagueCompletion struct {
	Total   int
	Pending int
}

// SyncFinalMatchTeams back-fills the season's reserved Final with the two
// top-ranked teams once every league match is completed. Until then, and when
// fewer than two teams have actually played, it is a silent no-op; both are
// expected steady states rather than errors.
//
// The caller runs this inside the same transaction as the match update that
// triggered it. The season row is locked first so two league matches
// completing concurrently serialize on the check-then-write sequence.
func SyncFinalMatchTeams(tx *gorm.DB, seasonId int) error {
	metrics.FinalSyncChecksTotal.Inc()

	result := tx.Exec(`SELECT id FROM cpl.seasons WHERE id = ? FOR UPDATE`, seasonId)
	if result.Error != nil {
		return result.Error
	}

	var completion leagueCompletion
	countQuery := `
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(CASE WHEN status <> 'COMPLETED' THEN 1 ELSE 0 END), 0) AS pending
		FROM cpl.matches
		WHERE season_id = ?
		  AND category = 'LEAGUE'
		  AND void = false`
	result = tx.Raw(countQuery, seasonId).Scan(&completion)
	if result.Error != nil {
		return result.Error
	}
	if completion.Total == 0 || completion.Pending > 0 {
		return nil
	}

	rows, err := FetchRows(tx, seasonId)
	if err != nil {
		return err
	}
	ranked := utils.Filter(rows, func(row RawStandingRow) bool {
		return row.MatchesPlayed > 0
	})
	if len(ranked) < 2 {
		return nil
	}
	team1Id, team2Id := ranked[0].TeamId, ranked[1].TeamId
	if team1Id == team2Id {
		return nil
	}

	// Conditional single-row write: only the earliest outstanding Final is
	// touched, so re-running with unchanged standings rewrites the same pair.
	updateQuery := `
		UPDATE cpl.matches
		SET team1 = ?,
		    team2 = ?,
		    updated_at = now()
		WHERE id = (
			SELECT id
			FROM cpl.matches
			WHERE season_id = ?
			  AND category = 'FINAL'
			  AND void = false
			  AND status <> 'COMPLETED'
			ORDER BY "order" ASC
			LIMIT 1
		)`
	result = tx.Exec(updateQuery, team1Id, team2Id, seasonId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		metrics.FinalTeamsAssignedTotal.Inc()
	}
	return nil
}
