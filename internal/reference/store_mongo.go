// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/etnoflora/internal/platform/apperr"
	"github.com/taibuivan/etnoflora/internal/platform/database/schema"
	"github.com/taibuivan/etnoflora/internal/platform/dberr"
)

// MongoRepository implements [Repository] on a MongoDB collection holding one
// self-contained document per reference.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository binds the repository to the references collection.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(schema.Reference.Collection)}
}

func (repository *MongoRepository) Insert(context context.Context, record *Reference) (*Reference, error) {
	now := time.Now().UTC()
	record.ID = primitive.NilObjectID
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.Status == "" {
		record.Status = StatusPending
	}

	result, err := repository.collection.InsertOne(context, record)
	if err != nil {
		return nil, dberr.Wrap(err, "insert_reference")
	}

	record.ID = result.InsertedID.(primitive.ObjectID)
	return record, nil
}

func (repository *MongoRepository) GetByID(context context.Context, id string) (*Reference, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	record := &Reference{}
	err = repository.collection.
		FindOne(context, bson.M{schema.Reference.ID: objectID}).
		Decode(record)
	if err != nil {
		return nil, dberr.Wrap(err, "get_reference")
	}

	return record, nil
}

func (repository *MongoRepository) Replace(context context.Context, id string, record *Reference) (*Reference, error) {
	// Load the current document first: the identifier, creation timestamp,
	// and curation status survive a content replacement.
	current, err := repository.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	record.ID = current.ID
	record.CreatedAt = current.CreatedAt
	record.Status = current.Status
	record.UpdatedAt = time.Now().UTC()

	result, err := repository.collection.ReplaceOne(context,
		bson.M{schema.Reference.ID: current.ID}, record)
	if err != nil {
		return nil, dberr.Wrap(err, "replace_reference")
	}
	if result.MatchedCount == 0 {
		// Deleted between the read and the write.
		return nil, dberr.ErrNotFound
	}

	return record, nil
}

func (repository *MongoRepository) SetStatus(context context.Context, id string, status Status) (*Reference, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		schema.Reference.Status:    status,
		schema.Reference.UpdatedAt: time.Now().UTC(),
	}}
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	record := &Reference{}
	err = repository.collection.
		FindOneAndUpdate(context, bson.M{schema.Reference.ID: objectID}, update, after).
		Decode(record)
	if err != nil {
		return nil, dberr.Wrap(err, "set_reference_status")
	}

	return record, nil
}

func (repository *MongoRepository) Delete(context context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := repository.collection.DeleteOne(context, bson.M{schema.Reference.ID: objectID})
	if err != nil {
		return dberr.Wrap(err, "delete_reference")
	}
	if result.DeletedCount == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *MongoRepository) Count(context context.Context) (int, error) {
	total, err := repository.collection.CountDocuments(context, bson.M{})
	if err != nil {
		return 0, dberr.Wrap(err, "count_references")
	}
	return int(total), nil
}

func (repository *MongoRepository) Search(ctx context.Context, filter SearchFilter, limit, offset int) ([]*Reference, int, error) {
	query := BuildSearchQuery(filter)

	var (
		records []*Reference
		total   int64
	)

	// The count and the page fetch are independent reads; they may observe
	// slightly different states under concurrent writes.
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		n, err := repository.collection.CountDocuments(groupCtx, query)
		if err != nil {
			return dberr.Wrap(err, "count_search")
		}
		total = n
		return nil
	})

	group.Go(func() error {
		findOptions := options.Find().
			SetSort(bson.D{{Key: schema.Reference.CreatedAt, Value: -1}}).
			SetSkip(int64(offset)).
			SetLimit(int64(limit))

		cursor, err := repository.collection.Find(groupCtx, query, findOptions)
		if err != nil {
			return dberr.Wrap(err, "search_references")
		}
		defer cursor.Close(groupCtx)

		if err := cursor.All(groupCtx, &records); err != nil {
			return dberr.Wrap(err, "decode_search_results")
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	return records, int(total), nil
}

// # Search Query Builder

// BuildSearchQuery converts the optional filters into a conjunctive query
// restricted to approved records.
//
// Community and plant names match as case-insensitive substrings (the plant
// predicate is an OR across the scientific and vernacular name arrays), while
// state and municipality match anchored (exact, case-insensitive). Filter
// values are escaped so regex metacharacters in user input are matched as
// literal text.
func BuildSearchQuery(filter SearchFilter) bson.M {
	query := bson.M{schema.Reference.Status: string(StatusApproved)}

	if filter.Community != "" {
		query[schema.Reference.CommunityName] = substringMatch(filter.Community)
	}

	if filter.Plant != "" {
		pattern := substringMatch(filter.Plant)
		query["$or"] = bson.A{
			bson.M{schema.Reference.PlantScientificNames: pattern},
			bson.M{schema.Reference.PlantVernacularNames: pattern},
		}
	}

	if filter.State != "" {
		query[schema.Reference.CommunityState] = exactMatch(filter.State)
	}

	if filter.Municipality != "" {
		query[schema.Reference.CommunityMunicipality] = exactMatch(filter.Municipality)
	}

	return query
}

// substringMatch builds a case-insensitive substring predicate from literal text.
func substringMatch(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

// exactMatch builds an anchored case-insensitive predicate from literal text.
func exactMatch(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}

// parseObjectID converts a client-supplied hex identifier, rejecting
// malformed values before they reach the driver.
func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.Unprocessable("Invalid reference identifier")
	}
	return objectID, nil
}
