package domain

import (
	"errors"

	"atlas-cms/internal/infra/utils"
)

type ID string

func (i ID) String() string {
	return string(i)
}

// FieldKind is the closed set of value kinds a field can declare. The
// validator matches on it exhaustively; adding a kind means adding a branch.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindRichText FieldKind = "richtext"
	FieldKindNumber   FieldKind = "number"
	FieldKindBoolean  FieldKind = "boolean"
	FieldKindDate     FieldKind = "date"
	FieldKindMedia    FieldKind = "media"
	FieldKindRelation FieldKind = "relation"
)

var fieldKinds = map[FieldKind]struct{}{
	FieldKindText:     {},
	FieldKindRichText: {},
	FieldKindNumber:   {},
	FieldKindBoolean:  {},
	FieldKindDate:     {},
	FieldKindMedia:    {},
	FieldKindRelation: {},
}

var (
	ErrInvalidFieldKind  = errors.New("invalid field kind")
	ErrInvalidIdentifier = errors.New("invalid field identifier")
)

func ParseFieldKind(value string) (FieldKind, error) {
	kind := FieldKind(value)
	if _, ok := fieldKinds[kind]; !ok {
		return "", ErrInvalidFieldKind
	}
	return kind, nil
}

// FieldMetadata carries kind-specific constraints (min, max, min_length,
// max_length, options, content_type for relations). Only the validator
// interprets it.
type FieldMetadata map[string]any

// Field describes one typed attribute of a content type. The identifier is
// the stable storage key; relabeling never touches stored entry data.
type Field struct {
	Identifier string
	Label      string
	Kind       FieldKind
	Required   bool
	Metadata   FieldMetadata
	Inactive   bool
}

func NewField(identifier, label string, kind FieldKind, required bool, metadata FieldMetadata) (Field, error) {
	if !utils.IsSlug(identifier) {
		return Field{}, ErrInvalidIdentifier
	}

	if _, ok := fieldKinds[kind]; !ok {
		return Field{}, ErrInvalidFieldKind
	}

	if label == "" {
		label = identifier
	}

	return Field{
		Identifier: identifier,
		Label:      label,
		Kind:       kind,
		Required:   required,
		Metadata:   metadata,
	}, nil
}

// Equal compares by identifier, the only stable part of a field.
func (f Field) Equal(other Field) bool {
	return f.Identifier == other.Identifier
}
