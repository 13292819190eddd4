package config

import (
	model "cpl/repository"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var enumQueries = []string{
	`CREATE TYPE cpl.match_category AS ENUM ('LEAGUE', 'FINAL')`,
	`CREATE TYPE cpl.match_status AS ENUM ('NOT_STARTED', 'IN_PROGRESS', 'COMPLETED')`,
	`CREATE TYPE cpl.match_outcome AS ENUM ('TEAM1_WON', 'TEAM2_WON')`,
	`CREATE TYPE cpl.toss_outcome AS ENUM ('TEAM1', 'TEAM2')`,
	`CREATE TYPE cpl.season_status AS ENUM ('UPCOMING', 'ONGOING', 'COMPLETED')`,
}

func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "cpl.",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate brings the schema, enum types and tables up to date. The aggregate
// functions (league table, head to head) and the foreign keys live in the
// numbered migration files and are applied by the migrations command.
func Migrate(db *gorm.DB) error {
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS cpl`)
	if x.Error != nil {
		return x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return x.Error
		}
	}

	return db.AutoMigrate(
		&model.Country{},
		&model.Player{},
		&model.Team{},
		&model.Season{},
		&model.Match{},
		&model.MatchStat{},
		&model.Roster{},
	)
}
