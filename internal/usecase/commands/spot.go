package commands

//go:generate mockgen -source=spot.go -destination=../../../tests/mock/commands/spot_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"smart-parking/internal/domain/spot"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/pkg/random"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSpotInput struct {
	LotID   uuid.UUID
	Label   string
	Status  *string
	Floor   *string
	Section *string
}

type SpotCommands interface {
	Create(ctx context.Context, in CreateSpotInput) (uuid.UUID, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Simulate randomly flips spots of one lot and returns the ones it touched.
	Simulate(ctx context.Context, lotID uuid.UUID) ([]*shared.SpotSnapshot, error)
	// SimulateAll runs Simulate for every lot that has spots.
	SimulateAll(ctx context.Context) (int, error)
}

type spotCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	simulator *spot.Simulator
	observer  SimulationObserver
	logger    *slog.Logger
}

func NewSpotCommands(uow shared.UnitOfWork, clk clock.Clock, rnd random.Source, observer SimulationObserver, logger *slog.Logger) SpotCommands {
	if observer == nil {
		observer = noopObserver{}
	}
	return &spotCommandsImpl{
		uow:       uow,
		clock:     clk,
		simulator: spot.NewSimulator(rnd),
		observer:  observer,
		logger:    logger,
	}
}

func (uc *spotCommandsImpl) Create(ctx context.Context, in CreateSpotInput) (uuid.UUID, error) {
	s, err := spot.NewSpot(spot.Params{
		LotID:   in.LotID,
		Label:   in.Label,
		Status:  in.Status,
		Floor:   in.Floor,
		Section: in.Section,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().LotByID(ctx, in.LotID); err != nil {
			return lotLookupErr(err)
		}

		taken, err := tx.Reads().SpotLabelExists(ctx, in.LotID, s.Label().String())
		if err != nil {
			return err
		}
		if taken {
			return errs.ErrSpotLabelConflict
		}

		// The unique index still catches a concurrent insert of the same label.
		if err := tx.Spots().Create(ctx, s); err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.ErrSpotLabelConflict
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.ErrLotNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID(), nil
}

// SetStatus validates the status before touching the store.
func (uc *spotCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	st, err := spot.NewStatus(status)
	if err != nil {
		return err
	}

	return uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SpotByID(ctx, id)
		if err != nil {
			return spotLookupErr(err)
		}

		s := snap.ToDomain()
		if err := s.ChangeStatus(st, uc.clock.Now()); err != nil {
			return err
		}
		return spotLookupErr(tx.Spots().UpdateStatus(ctx, s))
	})
}

func (uc *spotCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return spotLookupErr(tx.Spots().Delete(ctx, id))
	})
}

// Simulate persists every touched spot on its own. There is no cross-spot
// transaction: a concurrent status write on the same spot may win.
func (uc *spotCommandsImpl) Simulate(ctx context.Context, lotID uuid.UUID) ([]*shared.SpotSnapshot, error) {
	snaps, err := uc.uow.CommandReads().SpotsByLot(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, errs.ErrNoSpotsForLot
	}

	updated := make([]*shared.SpotSnapshot, 0, len(snaps))
	for _, snap := range snaps {
		status, ok := uc.simulator.Next()
		if !ok {
			continue
		}

		s := snap.ToDomain()
		if err := s.ChangeStatus(status, uc.clock.Now()); err != nil {
			return nil, err
		}

		err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Spots().UpdateStatus(ctx, s)
		})
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// deleted while the run was in progress
				uc.logger.Warn("simulated spot vanished", slog.String("spot_id", s.ID().String()))
				continue
			}
			return nil, errs.Wrap(err, "simulate spot update")
		}
		updated = append(updated, shared.SpotSnapshotFrom(s))
	}

	uc.observer.ObserveSimulation(lotID, len(updated))
	return updated, nil
}

func (uc *spotCommandsImpl) SimulateAll(ctx context.Context) (int, error) {
	lotIDs, err := uc.uow.CommandReads().LotIDs(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, id := range lotIDs {
		updated, err := uc.Simulate(ctx, id)
		if err != nil {
			if errs.Is(err, errs.ErrNoSpotsForLot) {
				continue
			}
			return total, err
		}
		total += len(updated)
	}
	return total, nil
}

func spotLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrSpotNotFound
	}
	return err
}
