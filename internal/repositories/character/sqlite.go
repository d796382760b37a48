package character

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

const selectColumns = `id, user_id, name, level, current_hp, max_hp, class, subclass,
	stats, abilities, equipment, skills, created_at`

// SQLiteConfig contains configuration for the SQLite character repository
type SQLiteConfig struct {
	// DB must already carry the players schema (see internal/sqlite.Open)
	DB *sql.DB
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a character repository over the players table
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	c := input.Character

	stats, err := json.Marshal(c.Stats)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal stats")
	}
	abilities, err := json.Marshal(c.Abilities)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal abilities")
	}
	equipment, err := json.Marshal(c.Equipment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal equipment")
	}
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal skills")
	}

	var subclass sql.NullString
	if c.Subclass != nil {
		subclass = sql.NullString{String: *c.Subclass, Valid: true}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO players (`+selectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.PlayerID,
		c.Name,
		c.Level,
		c.CurrentHP,
		c.MaxHP,
		c.Class,
		subclass,
		string(stats),
		string(abilities),
		string(equipment),
		string(skillsJSON),
		c.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("character with ID %s already exists", c.ID)
		}
		return nil, errors.Wrap(err, "failed to insert character")
	}

	return &CreateOutput{Character: c}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM players WHERE id = ?`, input.ID)

	c, err := scanCharacter(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &GetOutput{Character: c}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}
	if n == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM players WHERE user_id = ? ORDER BY created_at, id`, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	characters := make([]*dnd5e.Character, 0)
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan character")
		}
		characters = append(characters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListByPlayerIDOutput{Characters: characters}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row scanner) (*dnd5e.Character, error) {
	var (
		c                                   dnd5e.Character
		subclass                            sql.NullString
		stats, abilities, equipment, skills string
		createdAt                           string
	)

	if err := row.Scan(
		&c.ID,
		&c.PlayerID,
		&c.Name,
		&c.Level,
		&c.CurrentHP,
		&c.MaxHP,
		&c.Class,
		&subclass,
		&stats,
		&abilities,
		&equipment,
		&skills,
		&createdAt,
	); err != nil {
		return nil, err
	}

	if subclass.Valid {
		c.Subclass = &subclass.String
	}
	if err := json.Unmarshal([]byte(stats), &c.Stats); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(abilities), &c.Abilities); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(equipment), &c.Equipment); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(skills), &c.Skills); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = t

	return &c, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
