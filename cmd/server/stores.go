package main

import (
	"context"
	"fmt"

	"github.com/rohits-web03/chainnotes/internal/config"
	"github.com/rohits-web03/chainnotes/internal/logging"
	"github.com/rohits-web03/chainnotes/internal/repositories"
	"github.com/rohits-web03/chainnotes/internal/repositories/memstore"
	"github.com/rohits-web03/chainnotes/internal/services"
)

type stores struct {
	users services.UserStore
	notes services.NoteStore
	todos services.TodoStore
	txs   services.TransactionStore
	close func() error
}

// openStores returns Postgres-backed stores, migrated to the latest schema,
// or the in-memory store when DB_URL is "memory".
func openStores(ctx context.Context, cfg *config.Config, log logging.Logger) (*stores, error) {
	if cfg.DB.URL == config.MemoryDB {
		log.Warn(ctx, "using in-memory store; data is lost on restart")
		mem := memstore.New()
		return &stores{
			users: mem.Users(),
			notes: mem.Notes(),
			todos: mem.Todos(),
			txs:   mem.Transactions(),
			close: func() error { return nil },
		}, nil
	}

	db, err := repositories.Open(cfg.DB.URL)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if err := repositories.Migrate(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info(ctx, "database ready")

	return &stores{
		users: repositories.NewUserRepository(db),
		notes: repositories.NewNoteRepository(db),
		todos: repositories.NewTodoRepository(db),
		txs:   repositories.NewTransactionRepository(db),
		close: sqlDB.Close,
	}, nil
}
