package initializers

import (
	"database/sql"
	"log"
	"os"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/mattn/go-sqlite3"
)

var Scratchpad *goqu.Database

// ConnectScratchpad opens the local notes database, a single SQLite
// file next to the binary unless SCRATCHPAD_PATH says otherwise.
func ConnectScratchpad() {
	path := os.Getenv("SCRATCHPAD_PATH")
	if path == "" {
		path = "scratchpad.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS scratchpad (
		note_key TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		datetime_update TEXT NOT NULL
	)`)
	if err != nil {
		log.Fatal(err)
	}

	Scratchpad = goqu.New("sqlite3", db)
}
