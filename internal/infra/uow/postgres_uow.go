package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"smart-parking/internal/infra/db"
	"smart-parking/internal/infra/readstore"
	"smart-parking/internal/infra/repository"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/pkg/pgconv"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxRetries = 3

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxBeginner is the part of *pgxpool.Pool the unit of work needs.
type TxBeginner interface {
	db.DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool TxBeginner
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{pool: pool}
}

func newPostgresUoW(pool TxBeginner) *PostgresUoW {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, newPgTx(u.pool))
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newPgTx(pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	switch pgconv.PgErrorCode(err) {
	case pgconv.CodeSerializationFailure, pgconv.CodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	lotRepo      shared.LotRepository
	spotRepo     shared.SpotRepository
	userRepo     shared.UserRepository
	commandReads shared.CommandReads
}

func newPgTx(dbtx db.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) Lots() shared.LotRepository {
	if t.lotRepo == nil {
		t.lotRepo = repository.NewLotRepository(t.dbtx)
	}
	return t.lotRepo
}

func (t *pgTx) Spots() shared.SpotRepository {
	if t.spotRepo == nil {
		t.spotRepo = repository.NewSpotRepository(t.dbtx)
	}
	return t.spotRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	lots  *readstore.LotReadStore
	spots *readstore.SpotReadStore
	users *readstore.UserReadStore
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{
		lots:  readstore.NewLotReadStore(dbtx),
		spots: readstore.NewSpotReadStore(dbtx),
		users: readstore.NewUserReadStore(dbtx),
	}
}

func (r *commandReads) LotByID(ctx context.Context, id uuid.UUID) (*shared.LotSnapshot, error) {
	row, err := r.lots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.LotSnapshot{
		ID:            row.ID,
		Name:          row.Name,
		Location:      row.Location,
		TotalCapacity: row.TotalCapacity,
		Description:   row.Description,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func (r *commandReads) LotIDs(ctx context.Context) ([]uuid.UUID, error) {
	return r.lots.IDs(ctx)
}

func (r *commandReads) SpotByID(ctx context.Context, id uuid.UUID) (*shared.SpotSnapshot, error) {
	view, err := r.spots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.SpotSnapshot{
		ID:          view.ID,
		LotID:       view.LotID,
		Label:       view.Label,
		Status:      view.Status,
		Floor:       view.Floor,
		Section:     view.Section,
		LastUpdated: view.LastUpdated,
		CreatedAt:   view.CreatedAt,
	}, nil
}

func (r *commandReads) SpotsByLot(ctx context.Context, lotID uuid.UUID) ([]*shared.SpotSnapshot, error) {
	views, err := r.spots.ListByLot(ctx, lotID)
	if err != nil {
		return nil, err
	}
	out := make([]*shared.SpotSnapshot, 0, len(views))
	for _, v := range views {
		out = append(out, &shared.SpotSnapshot{
			ID:          v.ID,
			LotID:       v.LotID,
			Label:       v.Label,
			Status:      v.Status,
			Floor:       v.Floor,
			Section:     v.Section,
			LastUpdated: v.LastUpdated,
			CreatedAt:   v.CreatedAt,
		})
	}
	return out, nil
}

func (r *commandReads) SpotLabelExists(ctx context.Context, lotID uuid.UUID, label string) (bool, error) {
	return r.spots.LabelExists(ctx, lotID, label)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	view, hash, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &shared.UserCredentials{
		ID:           view.ID,
		Name:         view.Name,
		Email:        view.Email,
		Role:         view.Role,
		PasswordHash: hash,
	}, nil
}
