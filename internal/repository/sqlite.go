package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/grantpilot/sectiond/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// Ensure SQLiteStore implements Store interface.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			company_id TEXT NOT NULL,
			section_type TEXT NOT NULL,
			text TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_company ON documents(company_id)`,
		`CREATE TABLE IF NOT EXISTS history (
			request_id TEXT PRIMARY KEY,
			company_id TEXT NOT NULL,
			section_type TEXT NOT NULL,
			generated_text TEXT NOT NULL,
			sources TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_company ON history(company_id, created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}
	return nil
}

// FindDocumentsByCompany returns all documents for a company in insertion order.
func (s *SQLiteStore) FindDocumentsByCompany(ctx context.Context, companyID string) ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.SelectContext(ctx, &docs,
		`SELECT id, company_id, section_type, text FROM documents WHERE company_id = ? ORDER BY rowid`,
		companyID)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// InsertDocument stores a document.
func (s *SQLiteStore) InsertDocument(ctx context.Context, doc *domain.Document) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, company_id, section_type, text) VALUES (?, ?, ?, ?)`,
		doc.ID, doc.CompanyID, doc.SectionType, doc.Text)
	return err
}

// InsertHistory durably appends a generation result.
func (s *SQLiteStore) InsertHistory(ctx context.Context, result *domain.GenerationResult) error {
	sources := result.Sources
	if sources == nil {
		sources = []string{}
	}
	encoded, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("failed to encode sources: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO history (request_id, company_id, section_type, generated_text, sources, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		result.RequestID, result.CompanyID, result.SectionType, result.GeneratedText, string(encoded), result.CreatedAt)
	return err
}

// ListHistory returns results for a company, newest first, truncated to limit.
func (s *SQLiteStore) ListHistory(ctx context.Context, companyID string, limit int) ([]domain.GenerationResult, error) {
	rows, err := s.db.QueryxContext(ctx,
		`SELECT request_id, company_id, section_type, generated_text, sources, created_at
		 FROM history WHERE company_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		companyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.GenerationResult
	for rows.Next() {
		var r domain.GenerationResult
		var sources string
		if err := rows.Scan(&r.RequestID, &r.CompanyID, &r.SectionType, &r.GeneratedText, &sources, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(sources), &r.Sources); err != nil {
			return nil, fmt.Errorf("failed to decode sources for %s: %w", r.RequestID, err)
		}
		if r.Sources == nil {
			r.Sources = []string{}
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
