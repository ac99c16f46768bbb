package mongostore

import (
	"context"
	"sync"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/domain/spot"
	"smart-parking/internal/domain/user"
	"smart-parking/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// undoLog remembers inserted document ids so a failed unit of work can be
// compensated when multi-document transactions are unavailable.
type undoLog struct {
	mu    sync.Mutex
	lots  []string
	spots []string
}

func (u *undoLog) addLot(id string) {
	if u == nil {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lots = append(u.lots, id)
}

func (u *undoLog) addSpots(ids ...string) {
	if u == nil {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.spots = append(u.spots, ids...)
}

// rollback deletes spots before lots so no spot is left without its lot.
func (u *undoLog) rollback(ctx context.Context, db *mongo.Database) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.spots) > 0 {
		if _, err := db.Collection(spotsCollection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": u.spots}}); err != nil {
			return err
		}
	}
	if len(u.lots) > 0 {
		if _, err := db.Collection(lotsCollection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": u.lots}}); err != nil {
			return err
		}
	}
	return nil
}

type LotRepository struct {
	coll *mongo.Collection
	undo *undoLog
}

func NewLotRepository(db *mongo.Database) *LotRepository {
	return &LotRepository{coll: db.Collection(lotsCollection)}
}

func (r *LotRepository) Create(ctx context.Context, l *lot.Lot) error {
	doc := lotToDocument(l)
	r.undo.addLot(doc.ID)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return wrapMongoErr("failed to create parking lot", err)
	}
	return nil
}

func (r *LotRepository) Update(ctx context.Context, l *lot.Lot) error {
	doc := lotToDocument(l)
	set := bson.M{
		"name":          doc.Name,
		"location":      doc.Location,
		"totalCapacity": doc.TotalCapacity,
		"updatedAt":     doc.UpdatedAt,
	}
	if doc.Description != nil {
		set["description"] = *doc.Description
	}

	res, err := r.coll.UpdateByID(ctx, doc.ID, bson.M{"$set": set})
	if err != nil {
		return wrapMongoErr("failed to update parking lot", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete does not cascade. Callers remove the lot's spots first.
func (r *LotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return wrapMongoErr("failed to delete parking lot", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return wrapMongoErr("failed to delete parking lots", err)
	}
	return nil
}

type SpotRepository struct {
	coll *mongo.Collection
	undo *undoLog
}

func NewSpotRepository(db *mongo.Database) *SpotRepository {
	return &SpotRepository{coll: db.Collection(spotsCollection)}
}

func (r *SpotRepository) Create(ctx context.Context, s *spot.Spot) error {
	doc := spotToDocument(s)
	r.undo.addSpots(doc.ID)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return wrapMongoErr("failed to create parking spot", err)
	}
	return nil
}

func (r *SpotRepository) CreateBatch(ctx context.Context, spots []*spot.Spot) error {
	if len(spots) == 0 {
		return nil
	}

	docs := make([]any, 0, len(spots))
	ids := make([]string, 0, len(spots))
	for _, s := range spots {
		doc := spotToDocument(s)
		docs = append(docs, doc)
		ids = append(ids, doc.ID)
	}
	// Record before inserting: an ordered insert may fail half way.
	r.undo.addSpots(ids...)

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return wrapMongoErr("failed to create parking spots", err)
	}
	return nil
}

func (r *SpotRepository) UpdateStatus(ctx context.Context, s *spot.Spot) error {
	res, err := r.coll.UpdateByID(ctx, s.ID().String(), bson.M{"$set": bson.M{
		"status":      s.Status().String(),
		"lastUpdated": s.LastUpdated(),
	}})
	if err != nil {
		return wrapMongoErr("failed to update parking spot status", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("parking spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return wrapMongoErr("failed to delete parking spot", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr("parking spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) DeleteByLot(ctx context.Context, lotID uuid.UUID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"lotId": lotID.String()})
	if err != nil {
		return 0, wrapMongoErr("failed to delete parking spots of lot", err)
	}
	return res.DeletedCount, nil
}

func (r *SpotRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return wrapMongoErr("failed to delete parking spots", err)
	}
	return nil
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.coll.InsertOne(ctx, userToDocument(u)); err != nil {
		return wrapMongoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return wrapMongoErr("failed to delete users", err)
	}
	return nil
}
