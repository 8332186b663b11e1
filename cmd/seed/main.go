package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/seekwell-dev/job-board/backend/internal/config"
	"github.com/seekwell-dev/job-board/backend/internal/domain"
	"github.com/seekwell-dev/job-board/backend/internal/repository"
	"github.com/seekwell-dev/job-board/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var userCount int
	var jobCount int

	flag.IntVar(&userCount, "users", 10, "number of random users to insert")
	flag.IntVar(&jobCount, "jobs", 20, "number of random jobs to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.RunMigrations(ctx); err != nil {
		logger.Error("unable to run database migrations", "error", err)
		return
	}

	users, err := seed.InsertRandomUsers(repo, userCount, cfg.Seed.User.Password)
	if err != nil {
		logger.Error("unable to insert random users", "error", err)
		return
	}

	employers := make([]*domain.User, 0, len(users))
	for _, user := range users {
		if user.Role == domain.RoleEmployer {
			employers = append(employers, user)
		}
	}

	if len(employers) == 0 {
		logger.Warn("no employers among seeded users, skipping jobs")
		return
	}

	if err := seed.InsertRandomJobs(repo, employers, jobCount); err != nil {
		logger.Error("unable to insert random jobs", "error", err)
		return
	}

	logger.Info("seeding finished", "users", len(users), "jobs", jobCount)
}
