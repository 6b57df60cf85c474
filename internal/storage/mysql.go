package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"unitlite/internal/domain"
)

// MySQLStorage keeps run history in a MySQL database instead of the JSON
// file. Selected when a DSN is configured (UNITLITE_DB_DSN).
type MySQLStorage struct {
	dsn string
}

// NewMySQLStorage returns a Storage backed by the given MySQL DSN
func NewMySQLStorage(dsn string) *MySQLStorage {
	return &MySQLStorage{dsn: dsn}
}

// Save inserts a run row plus one detail row per failure/error.
func (s *MySQLStorage) Save(summary domain.RunSummary, details []domain.FailureDetail) error {
	return s.SaveOutput(buildOutput(summary, details))
}

// SaveOutput writes the full output as a new run.
func (s *MySQLStorage) SaveOutput(output *domain.RunOutput) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (tests, failures, errors, duration_seconds, created_at) VALUES (?, ?, ?, ?, ?)`,
		output.Meta.Tests, output.Meta.Failures, output.Meta.Errors,
		output.Meta.DurationSeconds, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, d := range output.Details {
		_, err := tx.Exec(
			`INSERT INTO run_failures (run_id, test_name, kind, message, file, line, resolved) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, d.TestName, d.Kind, d.Message, d.File, d.Line, d.Resolved,
		)
		if err != nil {
			return fmt.Errorf("insert failure detail: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// Load reads the most recent run and its failure details.
func (s *MySQLStorage) Load() (*domain.RunOutput, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var output domain.RunOutput
	var runID int64
	var created time.Time
	var seconds float64
	row := db.QueryRow(`SELECT id, tests, failures, errors, duration_seconds, created_at FROM runs ORDER BY id DESC LIMIT 1`)
	if err := row.Scan(&runID, &output.Meta.Tests, &output.Meta.Failures, &output.Meta.Errors, &seconds, &created); err != nil {
		return nil, fmt.Errorf("load last run: %w", err)
	}
	output.Meta.DurationSeconds = seconds
	output.Meta.Duration = time.Duration(seconds * float64(time.Second)).String()
	output.Meta.Timestamp = created.Format(time.RFC3339)

	rows, err := db.Query(`SELECT test_name, kind, message, file, line, resolved FROM run_failures WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("load failure details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.FailureDetail
		if err := rows.Scan(&d.TestName, &d.Kind, &d.Message, &d.File, &d.Line, &d.Resolved); err != nil {
			return nil, fmt.Errorf("scan failure detail: %w", err)
		}
		output.Details = append(output.Details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read failure details: %w", err)
	}
	return &output, nil
}

// open connects and makes sure the schema exists
func (s *MySQLStorage) open() (*sql.DB, error) {
	dsn := s.dsn
	if !strings.Contains(dsn, "parseTime") {
		if strings.Contains(dsn, "?") {
			dsn += "&parseTime=true"
		} else {
			dsn += "?parseTime=true"
		}
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := s.ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (s *MySQLStorage) ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			tests INT NOT NULL,
			failures INT NOT NULL,
			errors INT NOT NULL,
			duration_seconds DOUBLE NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_failures (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			run_id BIGINT NOT NULL,
			test_name VARCHAR(255) NOT NULL,
			kind VARCHAR(16) NOT NULL,
			message TEXT NOT NULL,
			file VARCHAR(512) NOT NULL,
			line INT NOT NULL,
			resolved BOOL NOT NULL DEFAULT FALSE,
			INDEX idx_run_failures_run (run_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
