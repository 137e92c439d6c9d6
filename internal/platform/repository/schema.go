package repository

import (
	"fmt"
	"sync"

	"gorm.io/gorm/schema"
)

// Schema describes an entity independently of the backend: its storage name (table or
// collection), the declared fields and which of them hold references to other entities.
type Schema struct {
	Name       string
	PrimaryKey string
	Fields     map[string]struct{}
	References map[string]struct{}
}

var schemaCache sync.Map

// schemaOf derives the Schema of a GORM model. Both backends share it, so the document
// collection is named after the model's table.
func schemaOf[M any]() (Schema, *schema.Schema, error) {
	s, err := schema.Parse(new(M), &schemaCache, schema.NamingStrategy{})
	if err != nil {
		return Schema{}, nil, fmt.Errorf("parse model schema: %w", err)
	}

	def := Schema{
		Name:       s.Table,
		PrimaryKey: "id",
		Fields:     make(map[string]struct{}, len(s.DBNames)),
		References: map[string]struct{}{},
	}
	if s.PrioritizedPrimaryField != nil {
		def.PrimaryKey = s.PrioritizedPrimaryField.DBName
	}
	for _, name := range s.DBNames {
		if name != def.PrimaryKey {
			def.Fields[name] = struct{}{}
		}
	}
	for _, rel := range s.Relationships.BelongsTo {
		for _, ref := range rel.References {
			if ref.ForeignKey != nil {
				def.References[ref.ForeignKey.DBName] = struct{}{}
			}
		}
	}
	return def, s, nil
}

func (s Schema) isReference(field string) bool {
	_, ok := s.References[field]
	return ok
}

// checkFilters accepts declared fields and the primary key.
func (s Schema) checkFilters(filters Fields) error {
	for key := range filters {
		if key == s.PrimaryKey {
			continue
		}
		if _, ok := s.Fields[key]; !ok {
			return fmt.Errorf("%w: %q on %s", ErrUnknownField, key, s.Name)
		}
	}
	return nil
}

// checkWrite accepts declared fields only; the primary key is assigned by the backend.
func (s Schema) checkWrite(data Fields) error {
	for key := range data {
		if key == s.PrimaryKey || key == "_id" {
			return fmt.Errorf("%w: %q on %s", ErrReadOnlyField, key, s.Name)
		}
		if _, ok := s.Fields[key]; !ok {
			return fmt.Errorf("%w: %q on %s", ErrUnknownField, key, s.Name)
		}
	}
	return nil
}
