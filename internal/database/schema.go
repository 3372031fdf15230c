package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Bootstrap creates the three application tables when they do not exist yet.
// Statements are idempotent so restarting the server against an existing
// database is safe. owner_id, user_id and space_id are soft references:
// no FOREIGN KEY constraints, matching how the handlers treat them.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			username      VARCHAR(80)  NOT NULL,
			email         VARCHAR(120) NOT NULL,
			password_hash VARCHAR(128) NOT NULL,
			role          VARCHAR(20)  NOT NULL DEFAULT 'user',
			created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_users_email (email)
		)`,
		`CREATE TABLE IF NOT EXISTS spaces (
			id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name           VARCHAR(120)  NOT NULL,
			description    TEXT          NOT NULL,
			location       VARCHAR(200)  NOT NULL,
			price_per_hour DECIMAL(10,2) NOT NULL,
			owner_id       BIGINT UNSIGNED NOT NULL,
			created_at     DATETIME      NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id        BIGINT UNSIGNED NOT NULL,
			space_id       BIGINT UNSIGNED NOT NULL,
			start_time     DATETIME    NOT NULL,
			end_time       DATETIME    NOT NULL,
			status         VARCHAR(20) NOT NULL DEFAULT 'pending',
			payment_status VARCHAR(20) NOT NULL DEFAULT 'unpaid',
			created_at     DATETIME    NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
