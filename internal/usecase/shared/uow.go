package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/domain/spot"
	"smart-parking/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork hides the store. Repositories handed out through Tx are bound to
// the transaction (Within) or to the plain connection (WithDB).
type UnitOfWork interface {
	// Within: full transaction for multi-step writes, retried on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single-statement writes without an explicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: validation reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Lots() LotRepository
	Spots() SpotRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	LotByID(ctx context.Context, id uuid.UUID) (*LotSnapshot, error)
	LotIDs(ctx context.Context) ([]uuid.UUID, error)
	SpotByID(ctx context.Context, id uuid.UUID) (*SpotSnapshot, error)
	SpotsByLot(ctx context.Context, lotID uuid.UUID) ([]*SpotSnapshot, error)
	SpotLabelExists(ctx context.Context, lotID uuid.UUID, label string) (bool, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
}

type LotRepository interface {
	Create(ctx context.Context, l *lot.Lot) error
	Update(ctx context.Context, l *lot.Lot) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type SpotRepository interface {
	Create(ctx context.Context, s *spot.Spot) error
	CreateBatch(ctx context.Context, spots []*spot.Spot) error
	UpdateStatus(ctx context.Context, s *spot.Spot) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByLot(ctx context.Context, lotID uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	DeleteAll(ctx context.Context) error
}
