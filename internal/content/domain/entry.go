package domain

import (
	"time"

	"atlas-cms/internal/infra/utils"
)

// EntryData maps field identifiers to values. Its runtime shape is only
// trusted after passing through ContentType.Validate.
type EntryData map[string]any

// Entry is one record whose shape is determined at runtime by its content
// type's field definitions.
type Entry struct {
	ID            ID
	ContentTypeID ID
	Data          EntryData
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MergedData overlays partial on top of the stored data, so an update only
// has to carry the fields it changes.
func (e Entry) MergedData(partial EntryData) EntryData {
	merged := make(EntryData, len(e.Data)+len(partial))
	for key, value := range e.Data {
		merged[key] = value
	}
	for key, value := range partial {
		merged[key] = value
	}
	return merged
}

func NewEntryBuilder() *entryBuilder {
	return &entryBuilder{}
}

type entryBuilder struct {
	actions []entryHandler
}

type entryHandler func(e *Entry) error

func (b *entryBuilder) WithContentTypeID(id ID) *entryBuilder {
	b.actions = append(b.actions, func(e *Entry) error {
		e.ContentTypeID = id
		return nil
	})
	return b
}

func (b *entryBuilder) WithData(data EntryData) *entryBuilder {
	b.actions = append(b.actions, func(e *Entry) error {
		e.Data = data
		return nil
	})
	return b
}

func (b *entryBuilder) Build() (Entry, error) {
	now := time.Now()
	result := Entry{
		ID:        ID(utils.GenerateUUID()),
		Data:      EntryData{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Entry{}, err
		}
	}

	return result, nil
}
