package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// lineDoc is the stored shape of a cart line. The hex ObjectID becomes the
// opaque line id the rest of the system sees.
type lineDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	CoffeeID          string             `bson:"coffee_id,omitempty"`
	Title             string             `bson:"title"`
	Size              string             `bson:"size"`
	BasePrice         float64            `bson:"base_price"`
	ExtraShot         bool               `bson:"extra_shot"`
	ExtraAromaEnabled bool               `bson:"extra_aroma_enabled"`
	SelectedAroma     string             `bson:"selected_aroma,omitempty"`
	Quantity          int                `bson:"quantity"`
	TotalPrice        float64            `bson:"total_price"`
	CreatedAt         time.Time          `bson:"created_at"`
	Image             string             `bson:"image,omitempty"`
}

func (d lineDoc) toDomain() domain.CartLine {
	return domain.CartLine{
		ID:                d.ID.Hex(),
		CoffeeID:          d.CoffeeID,
		Title:             d.Title,
		Size:              d.Size,
		BasePrice:         d.BasePrice,
		ExtraShot:         d.ExtraShot,
		ExtraAromaEnabled: d.ExtraAromaEnabled,
		SelectedAroma:     d.SelectedAroma,
		Quantity:          d.Quantity,
		TotalPrice:        d.TotalPrice,
		CreatedAt:         d.CreatedAt,
		Image:             d.Image,
	}
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) LineRepository {
	return &mongoRepository{collection: db.Collection("cart")}
}

func (m *mongoRepository) Insert(ctx context.Context, line domain.CartLine) (string, error) {
	doc := lineDoc{
		CoffeeID:          line.CoffeeID,
		Title:             line.Title,
		Size:              line.Size,
		BasePrice:         line.BasePrice,
		ExtraShot:         line.ExtraShot,
		ExtraAromaEnabled: line.ExtraAromaEnabled,
		SelectedAroma:     line.SelectedAroma,
		Quantity:          line.Quantity,
		TotalPrice:        line.TotalPrice,
		CreatedAt:         time.Now().UTC(),
		Image:             line.Image,
	}

	res, err := m.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert cart line: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (m *mongoRepository) Get(ctx context.Context, id string) (*domain.CartLine, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrLineNotFound
	}

	var doc lineDoc
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLineNotFound
		}
		return nil, fmt.Errorf("failed to get cart line: %w", err)
	}

	line := doc.toDomain()
	return &line, nil
}

// List returns the whole cart ordered newest first, the order the cart
// screen displays.
func (m *mongoRepository) List(ctx context.Context) ([]domain.CartLine, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}
	defer cursor.Close(ctx)

	var lines []domain.CartLine
	for cursor.Next(ctx) {
		var doc lineDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode cart line: %w", err)
		}
		lines = append(lines, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor iteration error: %w", err)
	}

	return lines, nil
}

func (m *mongoRepository) UpdateQuantity(ctx context.Context, id string, quantity int, totalPrice float64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrLineNotFound
	}

	update := bson.M{"$set": bson.M{
		"quantity":    quantity,
		"total_price": totalPrice,
	}}

	res, err := m.collection.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("failed to update cart line quantity: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (m *mongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrLineNotFound
	}

	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrLineNotFound
	}
	return nil
}

// DeleteMany removes the given lines as one bulk write, the checkout path's
// batched clear. Unknown ids are skipped rather than failing the batch.
func (m *mongoRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		models = append(models, mongo.NewDeleteOneModel().SetFilter(bson.M{"_id": oid}))
	}
	if len(models) == 0 {
		return nil
	}

	_, err := m.collection.BulkWrite(ctx, models)
	if err != nil {
		return fmt.Errorf("failed to bulk delete cart lines: %w", err)
	}
	return nil
}

func (m *mongoRepository) CreateIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}

	_, err := m.collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
