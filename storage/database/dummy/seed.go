package dummydb

import (
	"embed"
	"encoding/json"
	"path"

	"github.com/pkg/errors"
)

//go:embed seed/*.json
var seedFS embed.FS

// seed loads the embedded sample data into every table.
// It is read once; mutations are never written back.
func (db *DB) seed() error {
	if err := loadSeed("students.json", db.student); err != nil {
		return err
	}
	if err := loadSeed("fees.json", db.fee); err != nil {
		return err
	}
	if err := loadSeed("payments.json", db.payment); err != nil {
		return err
	}
	if err := loadSeed("invoices.json", db.invoice); err != nil {
		return err
	}
	return loadSeed("reminders.json", db.reminder)
}

func loadSeed[T any](name string, tbl *table[T]) error {
	data, err := seedFS.ReadFile(path.Join("seed", name))
	if err != nil {
		return errors.Wrapf(err, "reading seed %s", name)
	}
	var rows []T
	if err = json.Unmarshal(data, &rows); err != nil {
		return errors.Wrapf(err, "decoding seed %s", name)
	}
	tbl.load(rows)
	return nil
}
