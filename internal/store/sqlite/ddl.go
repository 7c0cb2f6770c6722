package sqlite

import "database/sql"

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS Leads (
		Id INTEGER PRIMARY KEY,
		Name TEXT NOT NULL,
		Email TEXT NOT NULL,
		Stage TEXT NOT NULL,
		CreatedAt TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Opportunities (
		Id INTEGER PRIMARY KEY,
		LeadId INTEGER NOT NULL,
		LeadName TEXT NOT NULL,
		Amount REAL NOT NULL,
		Stage TEXT NOT NULL,
		Probability INTEGER NOT NULL,
		CreatedAt TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS BlogPosts (
		Id INTEGER PRIMARY KEY,
		Title TEXT NOT NULL,
		Content TEXT NOT NULL,
		FeaturedImage TEXT NOT NULL DEFAULT '',
		Tags TEXT NOT NULL DEFAULT '',
		Categories TEXT NOT NULL DEFAULT '',
		Timestamp TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS History (
		Id INTEGER PRIMARY KEY,
		Type TEXT NOT NULL,
		Topic TEXT NOT NULL,
		Content TEXT NOT NULL,
		Timestamp TEXT NOT NULL
	)`,
}

// EnsureSchema creates the collection tables when absent.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
