package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/emrgen/wikt/internal/cache"
	"github.com/emrgen/wikt/internal/compress"
	"github.com/emrgen/wikt/internal/config"
	"github.com/emrgen/wikt/internal/entry"
	"github.com/emrgen/wikt/internal/relation"
	"github.com/emrgen/wikt/internal/store"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app wires the store, the relation vocabulary and the entry repository.
type app struct {
	cfg        *config.Config
	store      *store.GormStore
	vocabulary *relation.Vocabulary
	repository *entry.Repository
	close      func()
}

func newApp() (*app, error) {
	cfg := config.LoadConfig()
	config.SetupLogger(cfg.Log)

	db, err := config.OpenDb(cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	gormStore := store.NewGormStore(db)
	vocabulary := relation.NewVocabulary(gormStore)

	closers := []func() error{sqlDB.Close}
	opts := []entry.Option{entry.WithReserve(cfg.Reserve)}
	if cfg.Redis.Enabled {
		codec, err := compress.New(cfg.Cache.Compression)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		client := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		closers = append(closers, client.Close)
		opts = append(opts, entry.WithCache(cache.NewRedisPageCache(client, codec, cfg.Cache.TTL)))
	}

	return &app{
		cfg:        cfg,
		store:      gormStore,
		vocabulary: vocabulary,
		repository: entry.NewRepository(gormStore, vocabulary, opts...),
		close: func() {
			for _, c := range closers {
				if err := c(); err != nil {
					logrus.Warnf("close: %v", err)
				}
			}
		},
	}, nil
}

// newReadyApp returns an app with the relation vocabulary loaded.
func newReadyApp(ctx context.Context) (*app, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}

	if err := a.vocabulary.Rebuild(ctx); err != nil {
		a.close()
		return nil, err
	}
	if a.vocabulary.Drift() {
		color.Yellow("relation_type is out of date, run 'wikt relation reconcile'")
	}

	return a, nil
}

func checkMissingFlags(cmd *cobra.Command, flags []string) bool {
	var missingFlags []string
	var providedFlags []string
	for _, required := range flags {
		if !cmd.Flag(required).Changed {
			missingFlags = append(missingFlags, required)
		} else {
			value := cmd.Flag(required).Value.String()
			providedFlags = append(providedFlags, fmt.Sprintf("--%s=%s", required, value))
		}
	}

	if len(missingFlags) > 0 {
		var msg string
		for _, f := range missingFlags {
			msg += fmt.Sprintf("--%s ", f)
		}

		color.Red("missing: %s\n", msg)
		if len(providedFlags) > 0 {
			color.Yellow("provided: %s\n", strings.Join(providedFlags, " "))
		}
		return true
	}

	return false
}
