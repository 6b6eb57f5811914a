// Package session owns the locally persisted login state: a single-slot
// durable store holding zero or one session record, observable as a live
// stream. The record is replaced or cleared as a whole; partial rows in
// storage normalize to "no session".
package session

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/hbv501g/forumapp/internal/client/migrations"
	"github.com/hbv501g/forumapp/internal/client/models"
	"github.com/hbv501g/forumapp/internal/dbx"
	"github.com/hbv501g/forumapp/internal/logging"
	"github.com/hbv501g/forumapp/internal/streamx"
)

const (
	keySessionID = "session_id"
	keyUserID    = "user_id"
	keyUsername  = "username"
	keyEmail     = "email"
)

// Store is the durable session slot. Readers observe the latest value via
// Watch; writers replace the whole record through Save and Clear.
type Store struct {
	db  *sql.DB
	log logging.Logger
	hub *streamx.Hub[*models.Session]
}

// RunMigrations brings the client database schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// NewStore wraps an open client database. The latest persisted session (if
// any) seeds the stream, so subscribers see the pre-existing login state.
func NewStore(ctx context.Context, db *sql.DB, log logging.Logger) *Store {
	s := &Store{db: db, log: log.With("component", "session")}
	s.hub = streamx.NewHub(s.load(ctx, NewSQLiteRepository(db)))
	return s
}

// Current returns the active session, or nil when none exists. Storage read
// failures normalize to nil: a session that cannot be read is no session.
func (s *Store) Current(ctx context.Context) *models.Session {
	return s.load(ctx, NewSQLiteRepository(s.db))
}

// CurrentID returns the active session's identifier, or "" when none exists.
func (s *Store) CurrentID(ctx context.Context) string {
	if sess := s.Current(ctx); sess != nil {
		return sess.SessionID
	}
	return ""
}

// Save persists the session record in a single transaction and then notifies
// subscribers. No session is observable until the write has committed.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		for key, value := range map[string]string{
			keySessionID: sess.SessionID,
			keyUserID:    sess.UserID,
			keyUsername:  sess.Username,
			keyEmail:     sess.Email,
		} {
			if err := repo.Set(ctx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.hub.Publish(&sess)
	return nil
}

// Clear removes the persisted record and notifies subscribers.
func (s *Store) Clear(ctx context.Context) error {
	if err := NewSQLiteRepository(s.db).Clear(ctx); err != nil {
		return err
	}
	s.hub.Publish(nil)
	return nil
}

// Watch returns a live stream of the session slot. The current value is
// replayed on subscription; every Save/Clear re-emits. The channel closes
// when ctx is done.
func (s *Store) Watch(ctx context.Context) <-chan *models.Session {
	return s.hub.Subscribe(ctx)
}

// load reads the record fields and assembles a session. All four fields must
// be present and non-empty; anything partial, and any read failure, counts
// as no session.
func (s *Store) load(ctx context.Context, repo *SQLiteRepository) *models.Session {
	fields, err := repo.All(ctx)
	if err != nil {
		s.log.Warn(ctx, "session read failed, treating as logged out", "error", err)
		return nil
	}

	sess := models.Session{
		SessionID: fields[keySessionID],
		UserID:    fields[keyUserID],
		Username:  fields[keyUsername],
		Email:     fields[keyEmail],
	}
	if sess.SessionID == "" || sess.UserID == "" || sess.Username == "" || sess.Email == "" {
		return nil
	}
	return &sess
}
