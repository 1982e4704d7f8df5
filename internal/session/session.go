// Package session persists the client-side bookkeeping that must survive a
// restart: the synthetic ID counters and the modified/liked ID sets. It
// never persists content — the cache is rebuilt from the API on launch.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"postdeck/internal/track"
)

const dbFileName = "session.sqlite"

type Store struct {
	Dir string
}

// State is the persisted shape, applied onto fresh tracker instances on
// load. Best effort: a missing or unreadable db yields zero state, never an
// error the caller must die on.
type State struct {
	NextPostID    int
	NextCommentID int
	ModifiedIDs   []int
	LikedIDs      []int
}

func (s Store) Ensure() error {
	if s.Dir == "" {
		return errors.New("session: empty state dir")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) path() string {
	return filepath.Join(s.Dir, dbFileName)
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.path())
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS counters (
			k TEXT PRIMARY KEY,
			v INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS modified_posts (
			id INTEGER PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS liked_comments (
			id INTEGER PRIMARY KEY
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("session migrate: %w", err)
		}
	}
	return nil
}

// Load reads the persisted state. A fresh or missing db returns the zero
// State.
func (s Store) Load(ctx context.Context) (State, error) {
	db, err := s.open(ctx)
	if err != nil {
		return State{}, err
	}
	defer db.Close()

	var st State
	rows, err := db.QueryContext(ctx, `SELECT k, v FROM counters`)
	if err != nil {
		return State{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var k string
		var v int
		if err := rows.Scan(&k, &v); err != nil {
			return State{}, err
		}
		switch k {
		case "next_post_id":
			st.NextPostID = v
		case "next_comment_id":
			st.NextCommentID = v
		}
	}
	if err := rows.Err(); err != nil {
		return State{}, err
	}

	st.ModifiedIDs, err = readIDs(ctx, db, "modified_posts")
	if err != nil {
		return State{}, err
	}
	st.LikedIDs, err = readIDs(ctx, db, "liked_comments")
	if err != nil {
		return State{}, err
	}
	return st, nil
}

func readIDs(ctx context.Context, db *sql.DB, table string) ([]int, error) {
	rows, err := db.QueryContext(ctx, `SELECT id FROM `+table+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Save writes the current tracker state in one transaction, replace-all.
func (s Store) Save(ctx context.Context, posts, comments *track.Allocator, modified *track.Modified, liked *track.Liked) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	counters := map[string]int{
		"next_post_id":    posts.Peek(),
		"next_comment_id": comments.Peek(),
	}
	for k, v := range counters {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO counters(k, v) VALUES(?, ?)`, k, strconv.Itoa(v)); err != nil {
			return err
		}
	}

	if err := writeIDs(ctx, tx, "modified_posts", modified.IDs()); err != nil {
		return err
	}
	if err := writeIDs(ctx, tx, "liked_comments", liked.IDs()); err != nil {
		return err
	}
	return tx.Commit()
}

func writeIDs(ctx context.Context, tx *sql.Tx, table string, ids map[int]bool) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return err
	}
	for id := range ids {
		if _, err := tx.ExecContext(ctx, `INSERT INTO `+table+`(id) VALUES(?)`, id); err != nil {
			return err
		}
	}
	return nil
}

// Apply pushes loaded state onto fresh trackers. Counters only ever move
// forward, so replaying an old file cannot hand out a reused ID.
func (st State) Apply(posts, comments *track.Allocator, modified *track.Modified, liked *track.Liked) {
	if st.NextPostID > 0 {
		posts.RaiseFloor(st.NextPostID - 1)
	}
	if st.NextCommentID > 0 {
		comments.RaiseFloor(st.NextCommentID - 1)
	}
	for _, id := range st.ModifiedIDs {
		modified.Mark(id)
	}
	for _, id := range st.LikedIDs {
		liked.Set(id, true)
	}
}
