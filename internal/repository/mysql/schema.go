package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// Statements use IF NOT EXISTS so repeated startups are no-ops. The
// foreign key cascades deletes: removing a user removes their
// addresses at the database level.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100),
		email VARCHAR(100) UNIQUE,
		password VARCHAR(255),
		phone VARCHAR(15)
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT,
		street VARCHAR(255),
		city VARCHAR(100),
		postal_code VARCHAR(10),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
}

func provisionSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
