package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Model is the constraint satisfied by a pointer to a GORM model M that maps onto the
// external shape T.
type Model[T any, M any] interface {
	*M
	TableName() string
	ToEntity() T
}

// SQLRepository is the relational Repository implementation built on GORM.
type SQLRepository[T any, M any, PM Model[T, M]] struct {
	db     *gorm.DB
	def    Schema
	schema *schema.Schema
}

// NewSQLRepository builds a relational repository for the model M.
func NewSQLRepository[T any, M any, PM Model[T, M]](db *gorm.DB) (*SQLRepository[T, M, PM], error) {
	def, s, err := schemaOf[M]()
	if err != nil {
		return nil, err
	}
	return &SQLRepository[T, M, PM]{db: db, def: def, schema: s}, nil
}

// Get fetches a record by id. Non-numeric ids are reported as ErrNotFound.
func (r *SQLRepository[T, M, PM]) Get(ctx context.Context, id string) (*T, error) {
	pk, ok := ParseUint(id)
	if !ok {
		return nil, ErrNotFound
	}
	m, err := r.first(r.db.WithContext(ctx), pk)
	if err != nil {
		return nil, err
	}
	return r.external(m), nil
}

// GetAll returns every row ordered by primary key.
func (r *SQLRepository[T, M, PM]) GetAll(ctx context.Context) ([]T, error) {
	return r.GetByFilters(ctx, nil, 0, 0)
}

// GetByFilters builds a conjunctive equality predicate from filters.
func (r *SQLRepository[T, M, PM]) GetByFilters(ctx context.Context, filters Fields, offset, limit int) ([]T, error) {
	if err := r.def.checkFilters(filters); err != nil {
		return nil, err
	}
	where, ok := r.native(filters)
	if !ok {
		// a reference that cannot be a relational key matches nothing
		return []T{}, nil
	}

	q := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: r.def.PrimaryKey}})
	if len(where) > 0 {
		q = q.Where(map[string]any(where))
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []M
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for i := range rows {
		out = append(out, PM(&rows[i]).ToEntity())
	}
	return out, nil
}

// Create inserts a row built from data. Timestamps not supplied are filled by GORM at call time.
func (r *SQLRepository[T, M, PM]) Create(ctx context.Context, data Fields) (*T, error) {
	if err := r.def.checkWrite(data); err != nil {
		return nil, err
	}
	values, ok := r.native(data)
	if !ok {
		return nil, fmt.Errorf("%w on %s", ErrInvalidReference, r.def.Name)
	}

	m := new(M)
	rv := reflect.ValueOf(m).Elem()
	for key, value := range values {
		field := r.schema.LookUpField(key)
		if field == nil {
			return nil, fmt.Errorf("%w: %q on %s", ErrUnknownField, key, r.def.Name)
		}
		if err := field.Set(ctx, rv, value); err != nil {
			return nil, fmt.Errorf("set %s.%s: %w", r.def.Name, key, err)
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return r.external(m), nil
}

// Update merges data onto the row and re-reads it inside the same transaction.
func (r *SQLRepository[T, M, PM]) Update(ctx context.Context, id string, data Fields) (*T, error) {
	if err := r.def.checkWrite(data); err != nil {
		return nil, err
	}
	pk, ok := ParseUint(id)
	if !ok {
		return nil, ErrNotFound
	}
	values, ok := r.native(data)
	if !ok {
		return nil, fmt.Errorf("%w on %s", ErrInvalidReference, r.def.Name)
	}

	var updated *M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := r.first(tx, pk)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			updated = m
			return nil
		}
		if err := tx.Model(m).Updates(map[string]any(values)).Error; err != nil {
			return err
		}
		updated, err = r.first(tx, pk)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return r.external(updated), nil
}

// Delete removes the row and returns its prior state. Rows referencing it through
// ON DELETE CASCADE constraints are removed by the database.
func (r *SQLRepository[T, M, PM]) Delete(ctx context.Context, id string) (*T, error) {
	pk, ok := ParseUint(id)
	if !ok {
		return nil, ErrNotFound
	}

	var deleted *M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := r.first(tx, pk)
		if err != nil {
			return err
		}
		if err := tx.Delete(m).Error; err != nil {
			return err
		}
		deleted = m
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return r.external(deleted), nil
}

func (r *SQLRepository[T, M, PM]) first(tx *gorm.DB, pk uint) (*M, error) {
	m := new(M)
	err := tx.Where(clause.Eq{Column: clause.Column{Name: r.def.PrimaryKey}, Value: pk}).First(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// native converts external values into column values: enums to strings and reference
// ids to integer keys. It reports false when a reference id is malformed.
func (r *SQLRepository[T, M, PM]) native(data Fields) (Fields, bool) {
	out := make(Fields, len(data))
	for key, value := range data {
		if key == r.def.PrimaryKey || r.def.isReference(key) {
			id, ok := toRelationalID(value)
			if !ok {
				return nil, false
			}
			out[key] = id
			continue
		}
		out[key] = coerceEnum(value)
	}
	return out, true
}

func (r *SQLRepository[T, M, PM]) external(m *M) *T {
	e := PM(m).ToEntity()
	return &e
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
