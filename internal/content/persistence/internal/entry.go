package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"atlas-cms/internal/content/domain"
)

// EntryData is the schemaless value column of an entry, serialized as JSON.
type EntryData map[string]any

func (v EntryData) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *EntryData) Scan(value any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return errors.New("unsupported type for EntryData")
	}
}

type Entry struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	ContentTypeID string    `json:"content_type_id" gorm:"index;not null"`
	Data          EntryData `json:"data" gorm:"type:jsonb"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Entry) TableName() string {
	return "entries"
}

func (e Entry) ToDomain() domain.Entry {
	return domain.Entry{
		ID:            domain.ID(e.ID),
		ContentTypeID: domain.ID(e.ContentTypeID),
		Data:          domain.EntryData(e.Data),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromEntry(value domain.Entry) Entry {
	return Entry{
		ID:            value.ID.String(),
		ContentTypeID: value.ContentTypeID.String(),
		Data:          EntryData(value.Data),
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}
