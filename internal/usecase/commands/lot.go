package commands

//go:generate mockgen -source=lot.go -destination=../../../tests/mock/commands/lot_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateLotInput struct {
	Name          string
	Location      string
	TotalCapacity int
	Description   *string
	// Section overrides the label prefix of the generated spots.
	Section *string
}

type LotCommands interface {
	Create(ctx context.Context, in CreateLotInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p lot.Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type lotCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewLotCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) LotCommands {
	return &lotCommandsImpl{uow: uow, clock: clk, logger: logger}
}

// Create stores the lot and its auto-generated spots as one unit.
func (uc *lotCommandsImpl) Create(ctx context.Context, in CreateLotInput) (uuid.UUID, error) {
	now := uc.clock.Now()
	l, err := lot.NewLot(lot.Params{
		Name:          in.Name,
		Location:      in.Location,
		TotalCapacity: in.TotalCapacity,
		Description:   in.Description,
	}, now)
	if err != nil {
		return uuid.Nil, err
	}

	spots, err := lot.ProvisionSpots(l, in.Section, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lots().Create(ctx, l); err != nil {
			return err
		}
		return tx.Spots().CreateBatch(ctx, spots)
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "create parking lot")
	}

	uc.logger.Info("parking lot created",
		slog.String("lot_id", l.ID().String()),
		slog.Int("spots", len(spots)))
	return l.ID(), nil
}

func (uc *lotCommandsImpl) Update(ctx context.Context, id uuid.UUID, p lot.Patch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().LotByID(ctx, id)
		if err != nil {
			return lotLookupErr(err)
		}

		l := snap.ToDomain()
		if err := l.ApplyPatch(p, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Lots().Update(ctx, l); err != nil {
			return lotLookupErr(err)
		}
		return nil
	})
}

// Delete removes the spots first so no spot outlives its lot even on stores
// without cascading deletes.
func (uc *lotCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().LotByID(ctx, id); err != nil {
			return lotLookupErr(err)
		}

		removed, err := tx.Spots().DeleteByLot(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Lots().Delete(ctx, id); err != nil {
			return lotLookupErr(err)
		}

		uc.logger.Info("parking lot deleted",
			slog.String("lot_id", id.String()),
			slog.Int64("spots_removed", removed))
		return nil
	})
}

func lotLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrLotNotFound
	}
	return err
}
