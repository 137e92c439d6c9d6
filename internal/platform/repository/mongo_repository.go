package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const documentIDKey = "_id"

// MongoRepository is the document Repository implementation built on the MongoDB driver.
type MongoRepository[T any] struct {
	coll *mongo.Collection
	def  Schema
	now  func() time.Time
}

// NewMongoRepository builds a document repository over the collection named by def.
func NewMongoRepository[T any](client *mongo.Client, database string, def Schema) *MongoRepository[T] {
	return &MongoRepository[T]{
		coll: client.Database(database).Collection(def.Name),
		def:  def,
		// BSON datetimes carry millisecond precision
		now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// Get fetches a document by id. Ids that are not valid ObjectIDs are reported as ErrNotFound.
func (r *MongoRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, ok := ParseObjectID(id)
	if !ok {
		return nil, ErrNotFound
	}
	var raw bson.M
	if err := r.coll.FindOne(ctx, bson.D{{Key: documentIDKey, Value: oid}}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToExternal[T](raw)
}

// GetAll returns every document in insertion order.
func (r *MongoRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.GetByFilters(ctx, nil, 0, 0)
}

// GetByFilters runs an equality query sorted by _id, which follows insertion order.
func (r *MongoRepository[T]) GetByFilters(ctx context.Context, filters Fields, offset, limit int) ([]T, error) {
	if err := r.def.checkFilters(filters); err != nil {
		return nil, err
	}
	query, ok := r.native(filters)
	if !ok {
		return []T{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: documentIDKey, Value: 1}})
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}
	return ToExternalList[T](raws)
}

// Create inserts a document. Enum values are stored as strings, and each timestamp the
// caller does not supply is stamped with the current UTC time.
func (r *MongoRepository[T]) Create(ctx context.Context, data Fields) (*T, error) {
	if err := r.def.checkWrite(data); err != nil {
		return nil, err
	}
	doc, ok := r.native(data)
	if !ok {
		return nil, fmt.Errorf("%w on %s", ErrInvalidReference, r.def.Name)
	}
	now := r.now()
	for _, key := range []string{"created_at", "updated_at"} {
		if _, ok := data[key]; !ok {
			doc[key] = now
		}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return nil, err
	}
	doc[documentIDKey] = res.InsertedID
	return ToExternal[T](doc)
}

// Update applies data with $set and returns the post-update document.
// updated_at is re-stamped unless the caller supplies it.
func (r *MongoRepository[T]) Update(ctx context.Context, id string, data Fields) (*T, error) {
	if err := r.def.checkWrite(data); err != nil {
		return nil, err
	}
	oid, ok := ParseObjectID(id)
	if !ok {
		return nil, ErrNotFound
	}
	if len(data) == 0 {
		return r.Get(ctx, id)
	}
	set, ok := r.native(data)
	if !ok {
		return nil, fmt.Errorf("%w on %s", ErrInvalidReference, r.def.Name)
	}
	if _, ok := data["updated_at"]; !ok {
		set["updated_at"] = r.now()
	}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: documentIDKey, Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete removes a document and returns its prior state.
func (r *MongoRepository[T]) Delete(ctx context.Context, id string) (*T, error) {
	oid, ok := ParseObjectID(id)
	if !ok {
		return nil, ErrNotFound
	}
	var raw bson.M
	if err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: documentIDKey, Value: oid}}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToExternal[T](raw)
}

// native converts external values into document values. The primary key is renamed to _id,
// and it and every reference field are parsed into ObjectIDs.
func (r *MongoRepository[T]) native(data Fields) (bson.M, bool) {
	doc := make(bson.M, len(data))
	for key, value := range data {
		switch {
		case key == r.def.PrimaryKey:
			id, ok := toDocumentID(value)
			if !ok {
				return nil, false
			}
			doc[documentIDKey] = id
		case r.def.isReference(key):
			id, ok := toDocumentID(value)
			if !ok {
				return nil, false
			}
			doc[key] = id
		default:
			doc[key] = coerceEnum(value)
		}
	}
	return doc, true
}

// ToExternal maps a raw document onto T: _id becomes id and every ObjectID value is rendered
// as its hex string. A nil document yields nil.
func ToExternal[T any](raw bson.M) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	doc := make(bson.M, len(raw))
	for key, value := range raw {
		if key == documentIDKey {
			key = "id"
		}
		if oid, ok := value.(bson.ObjectID); ok {
			value = FromObjectID(oid)
		}
		doc[key] = value
	}

	b, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var out T
	if err := bson.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &out, nil
}

// ToExternalList applies ToExternal to each document. A nil or empty input yields an empty slice.
func ToExternalList[T any](raws []bson.M) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := ToExternal[T](raw)
		if err != nil {
			return nil, err
		}
		if v != nil {
			out = append(out, *v)
		}
	}
	return out, nil
}
