package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelRelation is the last relation the steps create; its presence means the schema is complete.
const sentinelRelation = "public.idx_freight_searches_delivery_window"

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         BIGSERIAL   PRIMARY KEY,
  name       TEXT        NOT NULL,
  surname    TEXT        NOT NULL,
  email      TEXT        NOT NULL UNIQUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_freights",
		SQL: `CREATE TABLE IF NOT EXISTS freights (
  id            BIGSERIAL      PRIMARY KEY,
  price         NUMERIC(12, 2) NOT NULL CHECK (price >= 0),
  pickup_code   BIGINT         NOT NULL,
  delivery_code BIGINT         NOT NULL,
  pickup_date   DATE           NOT NULL,
  delivery_date DATE           NOT NULL,
  created_at    TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_freight_searches",
		SQL: `CREATE TABLE IF NOT EXISTS freight_searches (
  id                 BIGSERIAL      PRIMARY KEY,
  user_id            BIGINT         NOT NULL REFERENCES users (id),
  min_price          NUMERIC(12, 2) CHECK (min_price >= 0),
  max_price          NUMERIC(12, 2),
  pickup_code        BIGINT,
  delivery_code      BIGINT,
  pickup_date_from   DATE,
  pickup_date_to     DATE,
  delivery_date_from DATE,
  delivery_date_to   DATE,
  created_at         TIMESTAMPTZ    NOT NULL DEFAULT now(),
  CONSTRAINT freight_searches_price_range CHECK (min_price IS NULL OR max_price IS NULL OR min_price <= max_price),
  CONSTRAINT freight_searches_pickup_window CHECK (pickup_date_from IS NULL OR pickup_date_to IS NULL OR pickup_date_from <= pickup_date_to),
  CONSTRAINT freight_searches_delivery_window CHECK (delivery_date_from IS NULL OR delivery_date_to IS NULL OR delivery_date_from <= delivery_date_to)
);`,
	},
	{
		Name: "create_index_freight_searches_keyset",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_freight_searches_keyset ON freight_searches (created_at DESC, id DESC);`,
	},
	{
		Name: "create_index_freight_searches_route",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_freight_searches_route ON freight_searches (pickup_code, delivery_code);`,
	},
	{
		Name: "create_index_freight_searches_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_freight_searches_user_id ON freight_searches (user_id);`,
	},
	{
		Name: "create_index_freight_searches_delivery_code",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_freight_searches_delivery_code ON freight_searches (delivery_code) WHERE delivery_code IS NOT NULL;`,
	},
	{
		Name: "create_index_freight_searches_min_price",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_freight_searches_min_price ON freight_searches (min_price) WHERE min_price IS NOT NULL;`,
	},
	{
		Name: "create_index_freight_searches_max_price",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_freight_searches_max_price ON freight_searches (max_price) WHERE max_price IS NOT NULL;`,
	},
	{
		Name: "create_index_freight_searches_pickup_window",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_freight_searches_pickup_window ON freight_searches (pickup_date_from, pickup_date_to) WHERE pickup_date_from IS NOT NULL OR pickup_date_to IS NOT NULL;`,
	},
	{
		Name: "create_index_freight_searches_delivery_window",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_freight_searches_delivery_window ON freight_searches (delivery_date_from, delivery_date_to) WHERE delivery_date_from IS NOT NULL OR delivery_date_to IS NOT NULL;`,
	},
}

// EnsureMigrated checks for the sentinel relation and runs the migration steps if it is missing.
// Every step is idempotent, so a half-applied schema is completed on the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()
	log := slog.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "event", "db_migration_check", "status", "starting")

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelRelation).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"event", "db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel relation: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel relation: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			"event", "db_migration_skip",
			"status", "success",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "event", "db_migration_start", "status", "in_progress", "steps", len(steps))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"event", "db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"event", "db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success",
		"event", "db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
