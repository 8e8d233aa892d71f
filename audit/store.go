// Package audit checks the links of a generated site: it scans the output
// HTML, records every page and link in SQLite, verifies internal targets
// against the file tree, optionally probes external URLs, and writes a
// markdown summary.
package audit

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Page is one scanned HTML document.
type Page struct {
	URL       string
	FilePath  string
	Title     string
	LinkCount int
}

// Link is one anchor found on a page. Status is meaningful only when Checked
// is true; status 0 means the connection failed outright.
type Link struct {
	Source  string
	Target  string
	Text    string
	Kind    string // "internal" or "external"
	Status  int
	Checked bool
}

// Totals aggregates link counts for the summary.
type Totals struct {
	Pages          int
	Links          int
	Internal       int
	External       int
	BrokenInternal int
	BrokenExternal int
	Unchecked      int
}

// Store wraps the audit SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the audit database at path, ensures the data
// directory exists, and runs schema setup.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL plus a busy timeout so a concurrent summary read never sees
	// SQLITE_BUSY; synchronous=NORMAL is safe with WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS pages (
    url TEXT PRIMARY KEY,
    file_path TEXT,
    title TEXT,
    link_count INTEGER DEFAULT 0,
    last_scanned TEXT
);
CREATE TABLE IF NOT EXISTS links (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_url TEXT NOT NULL,
    target_url TEXT NOT NULL,
    link_text TEXT,
    link_type TEXT CHECK(link_type IN ('internal', 'external')),
    http_status INTEGER,
    last_checked TEXT,
    UNIQUE(source_url, target_url, link_text)
);
CREATE TABLE IF NOT EXISTS check_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    target_url TEXT NOT NULL,
    http_status INTEGER,
    response_time_ms INTEGER,
    checked_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_url);
CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_url);
CREATE INDEX IF NOT EXISTS idx_links_status ON links(http_status);
CREATE INDEX IF NOT EXISTS idx_history_url ON check_history(target_url);
CREATE INDEX IF NOT EXISTS idx_history_time ON check_history(checked_at);
`)
	return err
}

// ResetScan clears page and link data; each scan rebuilds from scratch.
// Check history is kept.
func (s *Store) ResetScan() error {
	if _, err := s.db.Exec(`DELETE FROM links`); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM pages`)
	return err
}

// SavePage upserts one scanned page.
func (s *Store) SavePage(p Page, scannedAt time.Time) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO pages (url, file_path, title, link_count, last_scanned)
		 VALUES (?, ?, ?, ?, ?)`,
		p.URL, p.FilePath, p.Title, p.LinkCount, scannedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// SaveLink upserts one link occurrence.
func (s *Store) SaveLink(l Link, checkedAt time.Time) error {
	var status, checked interface{}
	if l.Checked {
		status = l.Status
		checked = checkedAt.UTC().Format(time.RFC3339)
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO links (source_url, target_url, link_text, link_type, http_status, last_checked)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		l.Source, l.Target, l.Text, l.Kind, status, checked,
	)
	return err
}

// ExternalTargets returns the distinct external URLs to probe, sorted.
func (s *Store) ExternalTargets() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT target_url FROM links WHERE link_type = 'external' ORDER BY target_url`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var targets []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

// MarkChecked records the HTTP status on every link row pointing at target
// and appends a check_history entry with the response time.
func (s *Store) MarkChecked(target string, status, responseMS int, at time.Time) error {
	ts := at.UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(
		`UPDATE links SET http_status = ?, last_checked = ? WHERE target_url = ?`,
		status, ts, target,
	); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO check_history (target_url, http_status, response_time_ms, checked_at)
		 VALUES (?, ?, ?, ?)`,
		target, status, responseMS, ts,
	)
	return err
}

// Totals computes the summary counts.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	queries := []struct {
		dst *int
		q   string
	}{
		{&t.Pages, `SELECT COUNT(*) FROM pages`},
		{&t.Links, `SELECT COUNT(*) FROM links`},
		{&t.Internal, `SELECT COUNT(*) FROM links WHERE link_type='internal'`},
		{&t.External, `SELECT COUNT(*) FROM links WHERE link_type='external'`},
		{&t.BrokenInternal, `SELECT COUNT(*) FROM links WHERE link_type='internal' AND http_status=404`},
		{&t.BrokenExternal, `SELECT COUNT(*) FROM links WHERE link_type='external' AND http_status IN (0, 404, 410)`},
		{&t.Unchecked, `SELECT COUNT(*) FROM links WHERE link_type='external' AND http_status IS NULL`},
	}
	for _, q := range queries {
		if err := s.db.QueryRow(q.q).Scan(q.dst); err != nil {
			return Totals{}, err
		}
	}
	return t, nil
}

// BrokenLinks returns links whose last check failed hard (404, 410, or no
// connection), ordered by status then source.
func (s *Store) BrokenLinks() ([]Link, error) {
	return s.queryLinks(
		`SELECT source_url, target_url, link_text, link_type, http_status
		 FROM links
		 WHERE http_status IN (0, 404, 410)
		 ORDER BY http_status, source_url`)
}

// WarnLinks returns links with suspicious but not definitively dead statuses
// (403, 429, 5xx).
func (s *Store) WarnLinks() ([]Link, error) {
	return s.queryLinks(
		`SELECT source_url, target_url, link_text, link_type, http_status
		 FROM links
		 WHERE http_status = 403 OR http_status = 429 OR http_status >= 500
		 ORDER BY http_status, source_url`)
}

func (s *Store) queryLinks(query string) ([]Link, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var links []Link
	for rows.Next() {
		var l Link
		var status sql.NullInt64
		if err := rows.Scan(&l.Source, &l.Target, &l.Text, &l.Kind, &status); err != nil {
			return nil, err
		}
		if status.Valid {
			l.Status = int(status.Int64)
			l.Checked = true
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
