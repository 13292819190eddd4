package standings_test

import (
	"cpl/app_error"
	"cpl/config"
	"cpl/repository"
	"cpl/service"
	"cpl/standings"
	"errors"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	// uses pool to try to connect to Docker
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=cpl",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "cpl.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		return config.Migrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	// the aggregate functions normally come in through the migrations command
	for _, file := range []string{"../migrations/1.sql", "../migrations/2.sql", "../migrations/3.sql"} {
		migration, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("Could not read migration %s: %s", file, err)
		}
		if x := db.Exec(string(migration)); x.Error != nil {
			log.Fatalf("Could not apply migration %s: %s", file, x.Error)
		}
	}

	// as of go1.15 testing.M returns the exit code of m.Run(), so it is safe to use defer here
	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM cpl.match_stats")
	db.Exec("DELETE FROM cpl.rosters")
	db.Exec("DELETE FROM cpl.matches")
	db.Exec("DELETE FROM cpl.seasons")
	db.Exec("DELETE FROM cpl.teams")
	db.Exec("DELETE FROM cpl.players")
	db.Exec("DELETE FROM cpl.countries")
}

func SetUp() (*repository.Season, []*repository.Team) {
	season := &repository.Season{
		Name:   "season1",
		Status: repository.SeasonStatusOngoing,
	}
	if err := db.Create(season).Error; err != nil {
		log.Fatalf("Error creating season: %v", err)
	}
	teams := []*repository.Team{
		{Name: "team1"},
		{Name: "team2"},
		{Name: "team3"},
	}
	if err := db.Create(teams).Error; err != nil {
		log.Fatalf("Error creating teams: %v", err)
	}
	return season, teams
}

func createMatch(t *testing.T, svc *service.MatchService, season *repository.Season, category repository.MatchCategory, team1 *int, team2 *int) *repository.Match {
	t.Helper()
	match, err := svc.Create(&repository.Match{
		Team1:         team1,
		Team2:         team2,
		ScheduledDate: time.Now(),
		Category:      category,
		SeasonId:      season.Id,
	}, nil)
	if err != nil {
		t.Fatalf("Error creating match: %v", err)
	}
	return match
}

func completeMatch(t *testing.T, svc *service.MatchService, matchId int, outcome repository.MatchOutcome, netPoints int) *repository.Match {
	t.Helper()
	status := repository.MatchStatusCompleted
	match, err := svc.Update(matchId, &repository.MatchUpdate{
		Status:    &status,
		Outcome:   &outcome,
		NetPoints: &netPoints,
	})
	if err != nil {
		t.Fatalf("Error completing match: %v", err)
	}
	return match
}

func TestFinalWiringAssignsTopTwoTeams(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	svc := service.NewMatchService(db)

	m1 := createMatch(t, svc, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	m2 := createMatch(t, svc, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[2].Id)
	m3 := createMatch(t, svc, season, repository.MatchCategoryLeague, &teams[1].Id, &teams[2].Id)
	final := createMatch(t, svc, season, repository.MatchCategoryFinal, nil, nil)
	assert.Nil(t, final.Team1)
	assert.Nil(t, final.Team2)

	completeMatch(t, svc, m1.Id, repository.MatchOutcomeTeam1Won, 5)
	completeMatch(t, svc, m2.Id, repository.MatchOutcomeTeam1Won, 3)

	// league stage still has a pending match, the final must stay untouched
	reloaded, err := svc.GetById(final.Id)
	assert.NoError(t, err)
	assert.Nil(t, reloaded.Team1)
	assert.Nil(t, reloaded.Team2)

	completeMatch(t, svc, m3.Id, repository.MatchOutcomeTeam1Won, 4)

	// team1: 2 wins, team2: 1 win, team3: 0 wins
	reloaded, err = svc.GetById(final.Id)
	assert.NoError(t, err)
	assert.NotNil(t, reloaded.Team1)
	assert.NotNil(t, reloaded.Team2)
	assert.Equal(t, teams[0].Id, *reloaded.Team1)
	assert.Equal(t, teams[1].Id, *reloaded.Team2)
}

func TestFinalWiringIsIdempotent(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	svc := service.NewMatchService(db)

	m1 := createMatch(t, svc, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	m2 := createMatch(t, svc, season, repository.MatchCategoryLeague, &teams[1].Id, &teams[2].Id)
	final := createMatch(t, svc, season, repository.MatchCategoryFinal, nil, nil)

	completeMatch(t, svc, m1.Id, repository.MatchOutcomeTeam1Won, 5)
	completeMatch(t, svc, m2.Id, repository.MatchOutcomeTeam1Won, 2)

	err := db.Transaction(func(tx *gorm.DB) error {
		return standings.SyncFinalMatchTeams(tx, season.Id)
	})
	assert.NoError(t, err)

	reloaded, err := svc.GetById(final.Id)
	assert.NoError(t, err)
	assert.Equal(t, teams[0].Id, *reloaded.Team1)
	assert.Equal(t, teams[1].Id, *reloaded.Team2)
}

func TestFinalWiringLeavesCompletedFinalAlone(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	svc := service.NewMatchService(db)

	m1 := createMatch(t, svc, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	final := createMatch(t, svc, season, repository.MatchCategoryFinal, &teams[0].Id, &teams[1].Id)

	completeMatch(t, svc, final.Id, repository.MatchOutcomeTeam2Won, -3)
	// the league match completes after the final already did; the wiring runs
	// but must not rewrite a completed final
	completeMatch(t, svc, m1.Id, repository.MatchOutcomeTeam1Won, 5)

	reloaded, err := svc.GetById(final.Id)
	assert.NoError(t, err)
	assert.Equal(t, teams[0].Id, *reloaded.Team1)
	assert.Equal(t, teams[1].Id, *reloaded.Team2)
	assert.Equal(t, repository.MatchStatusCompleted, reloaded.Status)
}

func TestLeagueTableRanking(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	matchService := service.NewMatchService(db)
	seasonService := service.NewSeasonService(db)

	m1 := createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	m2 := createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[2].Id)
	m3 := createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[1].Id, &teams[2].Id)
	final := createMatch(t, matchService, season, repository.MatchCategoryFinal, nil, nil)

	completeMatch(t, matchService, m1.Id, repository.MatchOutcomeTeam1Won, 5)
	completeMatch(t, matchService, m2.Id, repository.MatchOutcomeTeam1Won, 3)
	completeMatch(t, matchService, m3.Id, repository.MatchOutcomeTeam1Won, 4)

	table, err := seasonService.GetLeagueTable(season.Id)
	assert.NoError(t, err)
	assert.Len(t, table.Standings, 3)
	assert.Nil(t, table.WinnerId)
	assert.Equal(t, repository.SeasonStatusOngoing, table.SeasonStatus)

	assert.Equal(t, teams[0].Id, table.Standings[0].TeamId)
	assert.Equal(t, 4, table.Standings[0].Points)
	assert.Equal(t, 8, table.Standings[0].NetPoints)

	assert.Equal(t, teams[1].Id, table.Standings[1].TeamId)
	assert.Equal(t, 2, table.Standings[1].Points)
	assert.Equal(t, -1, table.Standings[1].NetPoints)

	assert.Equal(t, teams[2].Id, table.Standings[2].TeamId)
	assert.Equal(t, 0, table.Standings[2].Points)
	assert.Equal(t, -7, table.Standings[2].NetPoints)

	// the wired final decides the winner flag once it completes
	completeMatch(t, matchService, final.Id, repository.MatchOutcomeTeam2Won, -2)
	table, err = seasonService.GetLeagueTable(season.Id)
	assert.NoError(t, err)
	assert.NotNil(t, table.WinnerId)
	assert.Equal(t, teams[1].Id, *table.WinnerId)
}

func TestLeagueTableEmptySeason(t *testing.T) {
	season, _ := SetUp()
	defer TearDown()
	seasonService := service.NewSeasonService(db)

	table, err := seasonService.GetLeagueTable(season.Id)
	assert.NoError(t, err)
	assert.Empty(t, table.Standings)
	assert.Nil(t, table.WinnerId)
	assert.Equal(t, repository.SeasonStatusOngoing, table.SeasonStatus)
}

func TestLeagueTableIgnoresVoidedMatches(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	matchService := service.NewMatchService(db)
	seasonService := service.NewSeasonService(db)

	m1 := createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	completeMatch(t, matchService, m1.Id, repository.MatchOutcomeTeam1Won, 5)

	table, err := seasonService.GetLeagueTable(season.Id)
	assert.NoError(t, err)
	assert.Len(t, table.Standings, 2)

	err = matchService.Delete(m1.Id)
	assert.NoError(t, err)

	table, err = seasonService.GetLeagueTable(season.Id)
	assert.NoError(t, err)
	assert.Empty(t, table.Standings)

	_, err = matchService.GetById(m1.Id)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestStatsUpsert(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	matchService := service.NewMatchService(db)

	match := createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	players := []*repository.Player{
		{FirstName: "first", LastName: "player"},
		{FirstName: "second", LastName: "player"},
	}
	if err := db.Create(players).Error; err != nil {
		t.Fatalf("Error creating players: %v", err)
	}

	// submitted out of player order, read back sorted
	stats, err := matchService.UpsertStats(match.Id, []*repository.MatchStat{
		{PlayerId: players[1].Id, CoinsPocketed: 4, ShotsTaken: 12},
		{PlayerId: players[0].Id, CoinsPocketed: 7, ShotsTaken: 20},
	})
	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, players[0].Id, stats[0].PlayerId)
	assert.Equal(t, 7, stats[0].CoinsPocketed)
	assert.Equal(t, players[1].Id, stats[1].PlayerId)

	// re-submitting overwrites the counters instead of stacking rows
	stats, err = matchService.UpsertStats(match.Id, []*repository.MatchStat{
		{PlayerId: players[0].Id, CoinsPocketed: 9, CoinsFined: 1},
	})
	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, 9, stats[0].CoinsPocketed)
	assert.Equal(t, 1, stats[0].CoinsFined)
	assert.Equal(t, 0, stats[0].ShotsTaken)

	_, err = matchService.UpsertStats(match.Id, []*repository.MatchStat{
		{PlayerId: players[0].Id},
		{PlayerId: players[0].Id},
	})
	assert.True(t, app_error.IsKind(err, app_error.KindValidation))

	_, err = matchService.UpsertStats(99999, []*repository.MatchStat{
		{PlayerId: players[0].Id},
	})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestHeadToHead(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	matchService := service.NewMatchService(db)
	statsService := service.NewStatsService(db)

	_, err := statsService.GetHeadToHead(teams[0].Id, teams[0].Id)
	assert.True(t, app_error.IsKind(err, app_error.KindValidation))

	// never met: ids echoed back with zero totals
	h2h, err := statsService.GetHeadToHead(teams[0].Id, teams[2].Id)
	assert.NoError(t, err)
	assert.Equal(t, teams[0].Id, h2h.Team1Id)
	assert.Equal(t, teams[2].Id, h2h.Team2Id)
	assert.Equal(t, 0, h2h.MatchesPlayed)

	m1 := createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	m2 := createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[1].Id, &teams[0].Id)
	completeMatch(t, matchService, m1.Id, repository.MatchOutcomeTeam1Won, 5)
	completeMatch(t, matchService, m2.Id, repository.MatchOutcomeTeam1Won, 2)

	h2h, err = statsService.GetHeadToHead(teams[0].Id, teams[1].Id)
	assert.NoError(t, err)
	assert.Equal(t, 2, h2h.MatchesPlayed)
	assert.Equal(t, 1, h2h.Team1Wins)
	assert.Equal(t, 1, h2h.Team2Wins)
	// m1 from team1's perspective +5, m2 from team2's perspective +2
	assert.Equal(t, 3, h2h.Team1NetPoints)
	assert.Equal(t, -3, h2h.Team2NetPoints)
}

func TestNextOrder(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	matchService := service.NewMatchService(db)

	order, err := matchService.GetNextOrder(season.Id)
	assert.NoError(t, err)
	assert.Equal(t, 1, order)

	createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[1].Id, &teams[2].Id)

	order, err = matchService.GetNextOrder(season.Id)
	assert.NoError(t, err)
	assert.Equal(t, 3, order)

	db.Model(&repository.Season{}).Where("id = ?", season.Id).Update("status", repository.SeasonStatusCompleted)
	_, err = matchService.GetNextOrder(season.Id)
	assert.True(t, app_error.IsKind(err, app_error.KindValidation))

	_, err = matchService.GetNextOrder(99999)
	assert.True(t, app_error.IsKind(err, app_error.KindValidation))
}

func TestCreateMatchValidation(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	matchService := service.NewMatchService(db)

	_, err := matchService.Create(&repository.Match{
		Team1:         &teams[0].Id,
		Team2:         &teams[0].Id,
		ScheduledDate: time.Now(),
		Category:      repository.MatchCategoryLeague,
		SeasonId:      season.Id,
	}, nil)
	assert.True(t, app_error.IsKind(err, app_error.KindValidation))

	_, err = matchService.Create(&repository.Match{
		Team1:         &teams[0].Id,
		ScheduledDate: time.Now(),
		Category:      repository.MatchCategoryLeague,
		SeasonId:      season.Id,
	}, nil)
	assert.True(t, app_error.IsKind(err, app_error.KindValidation))

	createMatch(t, matchService, season, repository.MatchCategoryFinal, nil, nil)
	_, err = matchService.Create(&repository.Match{
		ScheduledDate: time.Now(),
		Category:      repository.MatchCategoryFinal,
		SeasonId:      season.Id,
	}, nil)
	assert.True(t, app_error.IsKind(err, app_error.KindConflict))

	// an explicit order must not bypass the season check
	order := 7
	_, err = matchService.Create(&repository.Match{
		Team1:         &teams[0].Id,
		Team2:         &teams[1].Id,
		ScheduledDate: time.Now(),
		Category:      repository.MatchCategoryLeague,
		SeasonId:      99999,
	}, &order)
	assert.True(t, app_error.IsKind(err, app_error.KindValidation))
}

func TestLeagueTableExcludesVoidedTeams(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	matchService := service.NewMatchService(db)
	seasonService := service.NewSeasonService(db)

	m1 := createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	completeMatch(t, matchService, m1.Id, repository.MatchOutcomeTeam1Won, 5)

	teamService := service.NewTeamService(db)
	err := teamService.Delete(teams[1].Id)
	assert.NoError(t, err)

	// the voided team drops out of the table, its completed match still
	// counts toward the opponent's totals
	table, err := seasonService.GetLeagueTable(season.Id)
	assert.NoError(t, err)
	assert.Len(t, table.Standings, 1)
	assert.Equal(t, teams[0].Id, table.Standings[0].TeamId)
	assert.Equal(t, 1, table.Standings[0].MatchesPlayed)
	assert.Equal(t, 2, table.Standings[0].Points)
}

func TestCompletedMatchIsTerminal(t *testing.T) {
	season, teams := SetUp()
	defer TearDown()
	matchService := service.NewMatchService(db)

	m1 := createMatch(t, matchService, season, repository.MatchCategoryLeague, &teams[0].Id, &teams[1].Id)
	completeMatch(t, matchService, m1.Id, repository.MatchOutcomeTeam1Won, 5)

	netPoints := 10
	_, err := matchService.Update(m1.Id, &repository.MatchUpdate{NetPoints: &netPoints})
	assert.True(t, app_error.IsKind(err, app_error.KindValidation))
}
