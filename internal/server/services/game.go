package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/neontetris/internal/common"
	"github.com/dmitrijs2005/neontetris/internal/dbx"
	"github.com/dmitrijs2005/neontetris/internal/logging"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/repomanager"
)

var ErrorInvalidScore = common.NewError(common.KindValidation, "Invalid score")

// GameService stores and returns save games. A save writes two records, the
// user's save blob with its clamped high score and the leaderboard entry with
// the raw score. Unless atomic is set they are written independently.
type GameService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	atomic      bool
	log         logging.Logger
}

func NewGameService(db *sql.DB, m repomanager.RepositoryManager, atomic bool, log logging.Logger) *GameService {
	return &GameService{
		db:          db,
		repomanager: m,
		atomic:      atomic,
		log:         log,
	}
}

// Save stores payload verbatim as the user's save data. It does not check
// that the user exists.
func (s *GameService) Save(ctx context.Context, payload []byte) error {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil || fields == nil {
		return common.ErrorMalformedRequest
	}

	var username string
	raw, ok := fields["username"]
	if !ok || json.Unmarshal(raw, &username) != nil || username == "" {
		return common.ErrorValidation
	}

	// The payload is stored whatever the score holds; an unreadable score
	// counts as zero for both projections.
	score, err := ParseScore(fields["score"])
	if err != nil {
		s.log.Debug(ctx, "unreadable score saved as zero", "username", username, "score", string(fields["score"]))
		score = 0
	}
	highScore := max(score, 0)

	write := func(ctx context.Context, db dbx.DBTX) error {
		n, err := s.repomanager.Users(db).UpdateSave(ctx, username, payload, highScore)
		if err != nil {
			return fmt.Errorf("error saving game: %w", err)
		}
		if n == 0 {
			s.log.Debug(ctx, "save for unregistered user", "username", username)
		}
		if err := s.repomanager.Leaderboard(db).Upsert(ctx, username, score); err != nil {
			return fmt.Errorf("error updating leaderboard: %w", err)
		}
		return nil
	}

	if s.atomic {
		return dbx.WithTx(ctx, s.db, nil, write)
	}
	return write(ctx, s.db)
}

// Load returns the user's last save, or nil when the user is unknown or has
// never saved.
func (s *GameService) Load(ctx context.Context, username string) (json.RawMessage, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading game: %w", err)
	}
	return user.SaveData, nil
}

// ParseScore reads the score field of a save. Absent, null, false, "" and 0
// all mean zero. Numbers and numeric strings are truncated toward zero.
func ParseScore(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, nil
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, ErrorInvalidScore
	}

	var f float64
	switch t := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if !t {
			return 0, nil
		}
		return 0, ErrorInvalidScore
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, ErrorInvalidScore
		}
		f = n
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, ErrorInvalidScore
		}
		f = n
	default:
		return 0, ErrorInvalidScore
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrorInvalidScore
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, ErrorInvalidScore
	}
	return int64(f), nil
}
