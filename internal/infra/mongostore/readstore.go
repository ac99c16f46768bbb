package mongostore

import (
	"context"

	"smart-parking/internal/domain/spot"
	"smart-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LotReadStore struct {
	lots  *mongo.Collection
	spots *mongo.Collection
}

func NewLotReadStore(db *mongo.Database) *LotReadStore {
	return &LotReadStore{
		lots:  db.Collection(lotsCollection),
		spots: db.Collection(spotsCollection),
	}
}

func (r *LotReadStore) List(ctx context.Context) ([]*queries.LotRow, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.lots.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrapMongoErr("failed to list parking lots", err)
	}
	var docs []lotDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, wrapMongoErr("failed to decode parking lots", err)
	}

	counts, err := r.availableCounts(ctx, nil)
	if err != nil {
		return nil, err
	}

	out := make([]*queries.LotRow, 0, len(docs))
	for i := range docs {
		out = append(out, toLotRow(&docs[i], counts[docs[i].ID]))
	}
	return out, nil
}

func (r *LotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LotRow, error) {
	var doc lotDocument
	if err := r.lots.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, wrapMongoErr("failed to find parking lot", err)
	}

	counts, err := r.availableCounts(ctx, &doc.ID)
	if err != nil {
		return nil, err
	}
	return toLotRow(&doc, counts[doc.ID]), nil
}

func (r *LotReadStore) IDs(ctx context.Context) ([]uuid.UUID, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1})
	cur, err := r.lots.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrapMongoErr("failed to list parking lot ids", err)
	}
	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, wrapMongoErr("failed to decode parking lot ids", err)
	}

	ids := make([]uuid.UUID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, parseID(d.ID))
	}
	return ids, nil
}

// availableCounts groups AVAILABLE spots per lot, optionally for a single lot.
func (r *LotReadStore) availableCounts(ctx context.Context, lotID *string) (map[string]int, error) {
	match := bson.M{"status": spot.StatusAvailable.String()}
	if lotID != nil {
		match["lotId"] = *lotID
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$lotId", "count": bson.M{"$sum": 1}}}},
	}

	cur, err := r.spots.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapMongoErr("failed to count available spots", err)
	}
	var groups []struct {
		LotID string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, wrapMongoErr("failed to decode available spot counts", err)
	}

	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.LotID] = g.Count
	}
	return counts, nil
}

func toLotRow(doc *lotDocument, available int) *queries.LotRow {
	return &queries.LotRow{
		ID:             parseID(doc.ID),
		Name:           doc.Name,
		Location:       doc.Location,
		TotalCapacity:  doc.TotalCapacity,
		Description:    doc.Description,
		AvailableCount: available,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

type SpotReadStore struct {
	lots  *mongo.Collection
	spots *mongo.Collection
}

func NewSpotReadStore(db *mongo.Database) *SpotReadStore {
	return &SpotReadStore{
		lots:  db.Collection(lotsCollection),
		spots: db.Collection(spotsCollection),
	}
}

// ListByLot relies on the default binary string ordering, i.e. A10 before A2.
func (r *SpotReadStore) ListByLot(ctx context.Context, lotID uuid.UUID) ([]*queries.SpotView, error) {
	opts := options.Find().SetSort(bson.D{{Key: "label", Value: 1}})
	cur, err := r.spots.Find(ctx, bson.M{"lotId": lotID.String()}, opts)
	if err != nil {
		return nil, wrapMongoErr("failed to list parking spots", err)
	}
	var docs []spotDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, wrapMongoErr("failed to decode parking spots", err)
	}

	out := make([]*queries.SpotView, 0, len(docs))
	for i := range docs {
		out = append(out, toSpotView(&docs[i]))
	}
	return out, nil
}

func (r *SpotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpotDetailView, error) {
	var doc spotDocument
	if err := r.spots.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, wrapMongoErr("failed to find parking spot", err)
	}

	var owner lotDocument
	err := r.lots.FindOne(ctx, bson.M{"_id": doc.LotID},
		options.FindOne().SetProjection(bson.M{"name": 1, "location": 1})).Decode(&owner)
	if err != nil {
		// orphaned spot: report it as missing like the postgres join does
		return nil, wrapMongoErr("failed to find parking lot of spot", err)
	}

	return &queries.SpotDetailView{
		SpotView:    *toSpotView(&doc),
		LotName:     owner.Name,
		LotLocation: owner.Location,
	}, nil
}

func (r *SpotReadStore) LabelExists(ctx context.Context, lotID uuid.UUID, label string) (bool, error) {
	n, err := r.spots.CountDocuments(ctx, bson.M{"lotId": lotID.String(), "label": label}, options.Count().SetLimit(1))
	if err != nil {
		return false, wrapMongoErr("failed to check spot label", err)
	}
	return n > 0, nil
}

func toSpotView(doc *spotDocument) *queries.SpotView {
	return &queries.SpotView{
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

type UserReadStore struct {
	users *mongo.Collection
}

func NewUserReadStore(db *mongo.Database) *UserReadStore {
	return &UserReadStore{users: db.Collection(usersCollection)}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, _, err := r.findOne(ctx, bson.M{"_id": id.String()})
	return view, err
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserReadStore) findOne(ctx context.Context, filter bson.M) (*queries.AuthorizedUserView, string, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, "", wrapMongoErr("failed to find user", err)
	}
	return &queries.AuthorizedUserView{
		ID:    parseID(doc.ID),
		Name:  doc.Name,
		Email: doc.Email,
		Role:  doc.Role,
	}, doc.PasswordHash, nil
}
