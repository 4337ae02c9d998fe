package signallog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signals"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS signals (
	signal_id      TEXT PRIMARY KEY,
	profile_id     TEXT NOT NULL,
	type           TEXT NOT NULL,
	option_id      TEXT,
	prompt         TEXT,
	topic          TEXT,
	archetype_hint TEXT,
	score          INTEGER,
	polarity       TEXT,
	set_id         TEXT,
	weight         REAL NOT NULL,
	neutral        INTEGER NOT NULL DEFAULT 0,
	option_ids     TEXT,
	topics         TEXT,
	created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_signals_profile_created
ON signals(profile_id, created_at DESC);
`

// #endregion schema

// #region store

// Store is a local append-only signal log in SQLite. It implements the same
// emit/fetch contracts as the remote genome engine so the trainer can run
// standalone; rows are never updated or deleted.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region submit

// Submit appends one signal row. Implements signals.Emitter.
func (s *Store) Submit(ctx context.Context, profileID string, sig signals.Signal) error {
	id := sig.ID
	if id == "" {
		id = uuid.NewString()
	}
	ts := sig.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	optionIDs, err := marshalList(sig.Data.OptionIDs)
	if err != nil {
		return fmt.Errorf("marshal option ids: %w", err)
	}
	topics, err := marshalList(sig.Data.Topics)
	if err != nil {
		return fmt.Errorf("marshal topics: %w", err)
	}

	neutral := 0
	if sig.Data.Neutral {
		neutral = 1
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO signals
		 (signal_id, profile_id, type, option_id, prompt, topic, archetype_hint,
		  score, polarity, set_id, weight, neutral, option_ids, topics, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		profileID,
		string(sig.Type),
		nullIfEmpty(sig.Data.OptionID),
		nullIfEmpty(sig.Data.Prompt),
		nullIfEmpty(sig.Data.Topic),
		nullIfEmpty(sig.Data.ArchetypeHint),
		sig.Data.Score,
		nullIfEmpty(string(sig.Data.Polarity)),
		nullIfEmpty(sig.Data.SetID),
		sig.Weight,
		neutral,
		optionIDs,
		topics,
		ts.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert signal: %w", err)
	}
	return nil
}

// #endregion submit

// #region recent

// Recent returns up to limit signals for a profile, newest first.
func (s *Store) Recent(ctx context.Context, profileID string, limit int) ([]signals.Signal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT signal_id, type, option_id, prompt, topic, archetype_hint,
		        score, polarity, set_id, weight, neutral, option_ids, topics, created_at
		 FROM signals
		 WHERE profile_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		profileID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query signals: %w", err)
	}
	defer rows.Close()

	var out []signals.Signal
	for rows.Next() {
		sig, err := scanSignal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sig)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate signals: %w", err)
	}
	return out, nil
}

// Count returns the total number of signals logged for a profile.
func (s *Store) Count(ctx context.Context, profileID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM signals WHERE profile_id = ?`, profileID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count signals: %w", err)
	}
	return n, nil
}

// #endregion recent

// #region scan

func scanSignal(rows *sql.Rows) (signals.Signal, error) {
	var (
		sig        signals.Signal
		typ        string
		optionID   sql.NullString
		prompt     sql.NullString
		topic      sql.NullString
		hint       sql.NullString
		score      sql.NullInt64
		polarity   sql.NullString
		setID      sql.NullString
		neutral    int
		optionIDs  sql.NullString
		topics     sql.NullString
		createdStr string
	)
	err := rows.Scan(&sig.ID, &typ, &optionID, &prompt, &topic, &hint,
		&score, &polarity, &setID, &sig.Weight, &neutral, &optionIDs, &topics, &createdStr)
	if err != nil {
		return signals.Signal{}, fmt.Errorf("scan signal: %w", err)
	}

	sig.Type = signals.Type(typ)
	sig.Data.OptionID = optionID.String
	sig.Data.Prompt = prompt.String
	sig.Data.Topic = topic.String
	sig.Data.ArchetypeHint = hint.String
	sig.Data.Score = int(score.Int64)
	sig.Data.Polarity = signals.Polarity(polarity.String)
	sig.Data.SetID = setID.String
	sig.Data.Neutral = neutral != 0

	if optionIDs.Valid && optionIDs.String != "" {
		if err := json.Unmarshal([]byte(optionIDs.String), &sig.Data.OptionIDs); err != nil {
			return signals.Signal{}, fmt.Errorf("parse option ids: %w", err)
		}
	}
	if topics.Valid && topics.String != "" {
		if err := json.Unmarshal([]byte(topics.String), &sig.Data.Topics); err != nil {
			return signals.Signal{}, fmt.Errorf("parse topics: %w", err)
		}
	}

	ts, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return signals.Signal{}, fmt.Errorf("parse created_at: %w", err)
	}
	sig.Timestamp = ts

	return sig, nil
}

// #endregion scan

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func marshalList(items []string) (interface{}, error) {
	if len(items) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// #endregion helpers
