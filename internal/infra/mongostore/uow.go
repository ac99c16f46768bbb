package mongostore

import (
	"context"
	"log/slog"

	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUoW runs units of work either in a multi-document transaction (needs a
// replica set) or with best-effort compensation of inserted documents.
type MongoUoW struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
	logger       *slog.Logger
}

func NewMongoUoW(client *mongo.Client, db *mongo.Database, transactions bool, logger *slog.Logger) *MongoUoW {
	return &MongoUoW{client: client, db: db, transactions: transactions, logger: logger}
}

func (u *MongoUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.transactions {
		return u.withinTransaction(ctx, fn)
	}

	undo := &undoLog{}
	err := fn(ctx, newMongoTx(u.db, undo))
	if err == nil {
		return nil
	}

	if rbErr := undo.rollback(context.WithoutCancel(ctx), u.db); rbErr != nil {
		u.logger.Error("compensation failed, store may hold partial writes",
			slog.Int("lots", len(undo.lots)),
			slog.Int("spots", len(undo.spots)),
			slog.String("error", rbErr.Error()))
		return errs.Wrapf(err, "compensation failed: %v", rbErr)
	}
	if len(undo.lots)+len(undo.spots) > 0 {
		u.logger.Warn("unit of work compensated",
			slog.Int("lots", len(undo.lots)),
			slog.Int("spots", len(undo.spots)))
	}
	return err
}

func (u *MongoUoW) withinTransaction(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	sess, err := u.client.StartSession()
	if err != nil {
		return errs.Wrap(err, "failed to start mongo session")
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc, newMongoTx(u.db, nil))
	})
	return err
}

func (u *MongoUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, newMongoTx(u.db, nil))
}

func (u *MongoUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.db)
}

type mongoTx struct {
	db   *mongo.Database
	undo *undoLog

	lotRepo      *LotRepository
	spotRepo     *SpotRepository
	userRepo     *UserRepository
	commandReads *commandReads
}

func newMongoTx(db *mongo.Database, undo *undoLog) *mongoTx {
	return &mongoTx{db: db, undo: undo}
}

func (t *mongoTx) Lots() shared.LotRepository {
	if t.lotRepo == nil {
		t.lotRepo = NewLotRepository(t.db)
		t.lotRepo.undo = t.undo
	}
	return t.lotRepo
}

func (t *mongoTx) Spots() shared.SpotRepository {
	if t.spotRepo == nil {
		t.spotRepo = NewSpotRepository(t.db)
		t.spotRepo.undo = t.undo
	}
	return t.spotRepo
}

func (t *mongoTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = NewUserRepository(t.db)
	}
	return t.userRepo
}

func (t *mongoTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.db)
	}
	return t.commandReads
}

type commandReads struct {
	lots  *LotReadStore
	spots *SpotReadStore
	users *UserReadStore
}

func newCommandReads(db *mongo.Database) *commandReads {
	return &commandReads{
		lots:  NewLotReadStore(db),
		spots: NewSpotReadStore(db),
		users: NewUserReadStore(db),
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
	var doc spotDocument
	if err := r.spots.spots.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, wrapMongoErr("failed to find parking spot", err)
	}
	return spotSnapshot(&doc), nil
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

func spotSnapshot(doc *spotDocument) *shared.SpotSnapshot {
	return &shared.SpotSnapshot{
		ID:          parseID(doc.ID),
		LotID:       parseID(doc.LotID),
		Label:       doc.Label,
		Status:      doc.Status,
		Floor:       doc.Floor,
		Section:     doc.Section,
		LastUpdated: doc.LastUpdated,
		CreatedAt:   doc.CreatedAt,
	}
}
