package sqlite

import (
	"context"
	"database/sql"

	"resourcedex/internal/domain"
)

// snapshotTx wraps the transaction used to replace a snapshot
type snapshotTx struct {
	tx *sql.Tx
}

func (s *Store) beginTx(ctx context.Context) (*snapshotTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &snapshotTx{tx: tx}, nil
}

// clear removes every stored record and returns how many there were
func (t *snapshotTx) clear() (int, error) {
	res, err := t.tx.Exec(`DELETE FROM records`)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// insertRecord stores a record at its dataset position
func (t *snapshotTx) insertRecord(position int, r domain.Record) error {
	_, err := t.tx.Exec(`
		INSERT INTO records (position, category, subcategory, name, type, cost, description, url, skill_level, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, position, r.Category, r.Subcategory, r.Name, r.Type, r.Cost, r.Description, r.URL, r.SkillLevel, r.Priority)
	return err
}

// setMeta upserts a metadata entry
func (t *snapshotTx) setMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

func (t *snapshotTx) commit() error {
	return t.tx.Commit()
}

func (t *snapshotTx) rollback() {
	_ = t.tx.Rollback()
}
