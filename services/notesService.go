package services

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
)

// NotesService persists the device-local scratchpad: a small key-value
// table of free-text notes read at view mount and written on explicit
// save. It lives outside the domain cache and never syncs to the
// remote store.
type NotesService struct {
	db *goqu.Database
}

func NewNotesService(db *goqu.Database) *NotesService {
	return &NotesService{db: db}
}

// Get reads the note under key. The second return is false when no
// note has been saved yet.
func (s *NotesService) Get(key string) (string, bool, error) {
	var body string
	found, err := s.db.From("scratchpad").
		Select("body").
		Where(goqu.C("note_key").Eq(key)).
		ScanVal(&body)
	if err != nil {
		return "", false, fmt.Errorf("reading note %q: %v", key, err)
	}
	return body, found, nil
}

// Save upserts the note under key.
func (s *NotesService) Save(key, body string) error {
	insert := s.db.Insert("scratchpad").
		Rows(goqu.Record{
			"note_key":        key,
			"body":            body,
			"datetime_update": time.Now().UTC().Format(time.RFC3339),
		}).
		OnConflict(goqu.DoUpdate("note_key", goqu.Record{
			"body":            body,
			"datetime_update": time.Now().UTC().Format(time.RFC3339),
		})).
		Executor()
	if _, err := insert.Exec(); err != nil {
		return fmt.Errorf("saving note %q: %v", key, err)
	}
	return nil
}

// Delete removes the note under key. Deleting a missing note is fine.
func (s *NotesService) Delete(key string) error {
	del := s.db.Delete("scratchpad").
		Where(goqu.C("note_key").Eq(key)).
		Executor()
	if _, err := del.Exec(); err != nil {
		return fmt.Errorf("deleting note %q: %v", key, err)
	}
	return nil
}
