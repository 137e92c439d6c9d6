package repository

import (
	"time"
)

// Test fixtures shared by the SQL and document repository tests.

type testKind string

func (k testKind) EnumValue() string { return string(k) }

type testOwner struct {
	ID        string    `bson:"id"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type testOwnerModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (testOwnerModel) TableName() string { return "owners" }

func (m *testOwnerModel) ToEntity() testOwner {
	return testOwner{ID: FromUint(m.ID), Email: m.Email, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

type testItem struct {
	ID        string    `bson:"id"`
	Name      string    `bson:"name"`
	Kind      testKind  `bson:"kind"`
	IsPublic  bool      `bson:"is_public"`
	OwnerID   *string   `bson:"owner_id"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type testItemModel struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"size:255;not null"`
	Kind      testKind        `gorm:"size:32"`
	IsPublic  bool            `gorm:"not null;default:false"`
	OwnerID   *uint           `gorm:"index"`
	Owner     *testOwnerModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (testItemModel) TableName() string { return "items" }

func (m *testItemModel) ToEntity() testItem {
	return testItem{
		ID:        FromUint(m.ID),
		Name:      m.Name,
		Kind:      m.Kind,
		IsPublic:  m.IsPublic,
		OwnerID:   FromUintPtr(m.OwnerID),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
