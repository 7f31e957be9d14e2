package store

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore keeps each key as one row in a kv table. Meant for deployments
// where the demo runs behind a shared database instead of a local file.
type MySQLStore struct {
	DB *sql.DB
}

// OpenMySQL connects with the given DSN and ensures the kv table exists.
func OpenMySQL(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql store: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping mysql store: %w", err)
	}
	s := &MySQLStore{DB: db}
	if err := s.ensureTable(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MySQLStore) ensureTable() error {
	ddl := `
CREATE TABLE IF NOT EXISTS kv_entries (
	k VARCHAR(191) NOT NULL PRIMARY KEY,
	v MEDIUMTEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := s.DB.Exec(ddl)
	return err
}

func (s *MySQLStore) Get(key string) ([]byte, bool, error) {
	var v string
	err := s.DB.QueryRow(`SELECT v FROM kv_entries WHERE k = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func (s *MySQLStore) Put(key string, value []byte) error {
	_, err := s.DB.Exec(`
		INSERT INTO kv_entries (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)
	`, key, string(value))
	return err
}

func (s *MySQLStore) Delete(key string) error {
	_, err := s.DB.Exec(`DELETE FROM kv_entries WHERE k = ?`, key)
	return err
}
