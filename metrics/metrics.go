package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var FinalSyncChecksTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cpl_final_sync_checks_total",
	Help: "Number of times a league match completion triggered the final-match wiring check",
})

var FinalTeamsAssignedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cpl_final_teams_assigned_total",
	Help: "Number of times the final match's teams were written from league standings",
})

var LeagueTableQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "cpl_league_table_query_duration_seconds",
	Help: "Duration of ranked-standings source queries",
	Buckets: []float64{
		0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2,
	},
})

var StatsUpsertRowsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cpl_match_stat_upsert_rows_total",
	Help: "Number of per-player match stat lines written through the upsert path",
})
