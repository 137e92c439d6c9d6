package repository

import (
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FromUint renders a relational primary key as an external identifier.
func FromUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// FromUintPtr renders a nullable relational reference as an external identifier.
func FromUintPtr(id *uint) *string {
	if id == nil {
		return nil
	}
	s := FromUint(*id)
	return &s
}

// ParseUint converts an external identifier into a relational key.
// It reports false for anything that is not a positive decimal integer.
func ParseUint(id string) (uint, bool) {
	n, err := strconv.ParseUint(id, 10, strconv.IntSize)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// FromObjectID renders a document identifier as an external identifier.
func FromObjectID(id bson.ObjectID) string {
	return id.Hex()
}

// ParseObjectID converts an external identifier into a document identifier.
// It reports false when id is not a 24 character hex string.
func ParseObjectID(id string) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, false
	}
	return oid, true
}

// toRelationalID converts a reference value supplied in external form into a relational key.
// nil stays nil so that nullable references can be cleared or filtered with IS NULL.
func toRelationalID(v any) (any, bool) {
	switch id := v.(type) {
	case nil:
		return nil, true
	case string:
		return ParseUint(id)
	case *string:
		if id == nil {
			return nil, true
		}
		return ParseUint(*id)
	case uint, uint32, uint64, int, int32, int64:
		return id, true
	default:
		return nil, false
	}
}

// toDocumentID converts a reference value supplied in external form into an ObjectID.
func toDocumentID(v any) (any, bool) {
	switch id := v.(type) {
	case nil:
		return nil, true
	case string:
		return ParseObjectID(id)
	case *string:
		if id == nil {
			return nil, true
		}
		return ParseObjectID(*id)
	case bson.ObjectID:
		return id, true
	default:
		return nil, false
	}
}
