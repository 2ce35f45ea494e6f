package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for string list", src)
	}
}

// Spec is a single label/value pair describing a product attribute.
type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SpecList is stored as a JSON array in a text column, preserving order.
type SpecList []Spec

func (l SpecList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal specs: %w", err)
	}
	return string(b), nil
}

func (l *SpecList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for specs", src)
	}
}

// Product categories.
const (
	CategoryFeed  = "feed"
	CategoryCages = "cages"
	CategoryToys  = "toys"
	CategoryVet   = "vet"
)

// Product represents a catalog item. Prices are integer minor currency units.
// The slug is the public URL key and never changes after creation.
type Product struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Name        string     `json:"name" validate:"required,min=3,max=200"`
	Category    string     `json:"category" validate:"required,oneof=feed cages toys vet"`
	Price       int        `json:"price" validate:"gte=0"`
	OldPrice    *int       `json:"oldPrice,omitempty"`
	InStock     bool       `json:"inStock" gorm:"default:true"`
	Image       string     `json:"image" validate:"required"`
	Images      StringList `json:"images" gorm:"type:text"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Specs       SpecList   `json:"specs" gorm:"type:text"`
	Popular     bool       `json:"popular"`
	CreatedAt   time.Time  `json:"createdAt"`
}
