package main

import (
	"fmt"

	"github.com/satzlabs/satz/internal/config"
	"github.com/satzlabs/satz/internal/database"
	"github.com/satzlabs/satz/internal/review"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	return cfg, nil
}

// openStore connects to the configured database. The returned function
// closes the connection.
func openStore() (*review.DBStore, func(), *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	closeDB := func() {
		_ = db.Close()
	}
	return review.NewDBStore(db), closeDB, cfg, nil
}
