package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/divinedekor/decor-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an operation targets a gallery item that
// does not exist.
var ErrNotFound = errors.New("gallery item not found")

type GalleryRepo struct {
	col *mongo.Collection
}

func NewGalleryRepo(col *mongo.Collection) *GalleryRepo {
	return &GalleryRepo{col: col}
}

func (r *GalleryRepo) Insert(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("insert gallery item: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return item, nil
}

// ListRanked returns one page of items ordered by their category's position
// in the fixed taxonomy, computed in the aggregation so the database sorts
// before skip/limit. Unknown categories rank after all known ones.
func (r *GalleryRepo) ListRanked(ctx context.Context, skip, limit int64) ([]models.GalleryItem, error) {
	lowered := make(bson.A, len(models.FileTypes))
	for i, t := range models.FileTypes {
		lowered[i] = strings.ToLower(t)
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.M{
			"sortOrder": bson.M{"$let": bson.M{
				"vars": bson.M{
					"rank": bson.M{"$indexOfArray": bson.A{lowered, bson.M{"$toLower": "$fileType"}}},
				},
				"in": bson.M{"$cond": bson.A{
					bson.M{"$eq": bson.A{"$$rank", -1}},
					len(models.FileTypes),
					"$$rank",
				}},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "sortOrder", Value: 1}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":       1,
			"filePath":  1,
			"fileType":  1,
			"likeCnt":   1,
			"createdAt": 1,
			"sortOrder": 1,
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer cur.Close(ctx)

	items := []models.GalleryItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode gallery page: %w", err)
	}
	return items, nil
}

func typeFilter(fileType string) bson.M {
	pattern := "^" + regexp.QuoteMeta(strings.TrimSpace(fileType)) + "$"
	return bson.M{"fileType": primitive.Regex{Pattern: pattern, Options: "i"}}
}

// ListByType returns one page of items whose fileType equals the given
// value case-insensitively, newest first.
func (r *GalleryRepo) ListByType(ctx context.Context, fileType string, skip, limit int64) ([]models.GalleryItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, typeFilter(fileType), opts)
	if err != nil {
		return nil, fmt.Errorf("list gallery by type: %w", err)
	}
	defer cur.Close(ctx)

	items := []models.GalleryItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode gallery page: %w", err)
	}
	return items, nil
}

func (r *GalleryRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *GalleryRepo) CountByType(ctx context.Context, fileType string) (int64, error) {
	return r.col.CountDocuments(ctx, typeFilter(fileType))
}

// IncrementLike bumps likeCnt by one with a single $inc and returns the
// updated document. A malformed id is propagated as a plain error, not
// mapped to ErrNotFound.
func (r *GalleryRepo) IncrementLike(ctx context.Context, id string) (*models.GalleryItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse gallery id %q: %w", id, err)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.GalleryItem
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"likeCnt": 1}},
		opts,
	).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("increment like: %w", err)
	}
	return &item, nil
}
