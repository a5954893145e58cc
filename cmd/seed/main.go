// Package main provides development data seeding for enrolld: one sphere,
// one event with spaces, sessions on the agenda, enrollment windows, and a
// few users with slot grants. Idempotent; safe to run repeatedly.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"ludamus.io/enrolld/ent"
	"ludamus.io/enrolld/internal/config"
	"ludamus.io/enrolld/internal/infrastructure"
	"ludamus.io/enrolld/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	logger.Info("Starting data seeding...")
	if err := seed(ctx, db.EntClient); err != nil {
		return err
	}
	logger.Info("Data seeding completed successfully")
	return nil
}

func seed(ctx context.Context, client *ent.Client) error {
	now := time.Now().Truncate(time.Hour)

	sphere, err := client.Sphere.Create().
		SetName("Ludamus").
		SetHost("localhost").
		SetIsOpen(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Sphere already exists, skipping seed")
			return nil
		}
		return fmt.Errorf("create sphere: %w", err)
	}

	event, err := client.Event.Create().
		SetSphereID(sphere.ID).
		SetName("Summer Game Fest").
		SetSlug("summer-game-fest").
		SetStartTime(now.Add(14 * 24 * time.Hour)).
		SetEndTime(now.Add(17 * 24 * time.Hour)).
		SetPublicationTime(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	mainHall, err := client.Space.Create().
		SetEventID(event.ID).
		SetName("Main Hall").
		SetSlug("main-hall").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create space: %w", err)
	}
	sideRoom, err := client.Space.Create().
		SetEventID(event.ID).
		SetName("Side Room").
		SetSlug("side-room").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create space: %w", err)
	}

	sessions := []struct {
		title string
		slug  string
		limit int
		age   int
		space int64
		start time.Duration
		hours int
	}{
		{"Opening Megagame", "opening-megagame", 24, 0, mainHall.ID, 14 * 24 * time.Hour, 4},
		{"Horror One-Shot", "horror-one-shot", 6, 18, sideRoom.ID, 14*24*time.Hour + 5*time.Hour, 3},
		{"Family Board Games", "family-board-games", 12, 0, sideRoom.ID, 15 * 24 * time.Hour, 2},
	}
	for _, s := range sessions {
		row, err := client.Session.Create().
			SetEventID(event.ID).
			SetTitle(s.title).
			SetSlug(s.slug).
			SetParticipantsLimit(s.limit).
			SetMinAge(s.age).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session %s: %w", s.slug, err)
		}
		start := now.Add(s.start)
		if _, err := client.AgendaItem.Create().
			SetSessionID(row.ID).
			SetSpaceID(s.space).
			SetStartTime(start).
			SetEndTime(start.Add(time.Duration(s.hours) * time.Hour)).
			SetSessionConfirmed(true).
			Save(ctx); err != nil {
			return fmt.Errorf("create agenda item for %s: %w", s.slug, err)
		}
		logger.Info("Seeded session", zap.String("slug", s.slug))
	}

	open, err := client.EnrollmentConfig.Create().
		SetEventID(event.ID).
		SetName("early birds").
		SetStartTime(now.Add(-time.Hour)).
		SetEndTime(now.Add(7 * 24 * time.Hour)).
		SetPercentageSlots(50).
		SetMaxWaitlistSessions(3).
		SetBannerText("Early-bird enrollment: half the seats, waitlists open.").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create open config: %w", err)
	}

	restricted, err := client.EnrollmentConfig.Create().
		SetEventID(event.ID).
		SetName("members").
		SetStartTime(now.Add(-time.Hour)).
		SetEndTime(now.Add(14 * 24 * time.Hour)).
		SetPercentageSlots(100).
		SetRestrictToConfiguredUsers(true).
		SetMaxWaitlistSessions(5).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create restricted config: %w", err)
	}

	manager, err := client.User.Create().
		SetName("Ada Example").
		SetSlug("ada").
		SetEmail("ada@example.com").
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if _, err := client.User.Create().
		SetName("Kid Example").
		SetSlug("ada-kid").
		SetIsActive(true).
		SetManagerID(manager.ID).
		SetBirthDate(now.AddDate(-12, 0, 0)).
		Save(ctx); err != nil {
		return fmt.Errorf("create connected user: %w", err)
	}

	if _, err := client.UserEnrollmentConfig.Create().
		SetConfigID(restricted.ID).
		SetUserEmail("ada@example.com").
		SetAllowedSlots(2).
		Save(ctx); err != nil {
		return fmt.Errorf("create user grant: %w", err)
	}
	if _, err := client.DomainEnrollmentConfig.Create().
		SetConfigID(restricted.ID).
		SetDomain("example.com").
		SetAllowedSlotsPerUser(1).
		Save(ctx); err != nil {
		return fmt.Errorf("create domain grant: %w", err)
	}

	logger.Info("Seeded event",
		zap.String("event", event.Slug),
		zap.Int64("open_config", open.ID),
		zap.Int64("restricted_config", restricted.ID),
	)
	return nil
}
