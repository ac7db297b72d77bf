package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"atlas-cms/internal/infra/utils"
)

const (
	RuleMissingRequiredField = "missing_required_field"
	RuleTypeMismatch         = "type_mismatch"
	RuleConstraintViolation  = "constraint_violation"
	RuleUnknownField         = "unknown_field"
)

const (
	ConstraintMin            = "min"
	ConstraintMax            = "max"
	ConstraintMinLength      = "min_length"
	ConstraintMaxLength      = "max_length"
	ConstraintOptions        = "options"
	ConstraintRelationTarget = "relation_target"
)

type ValidationError struct {
	Field      string `json:"field"`
	Rule       string `json:"rule"`
	Expected   string `json:"expected,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Message    string `json:"message"`
}

// ValidationErrors accumulates every problem of a payload so a caller can
// report them all in one round trip.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	messages := make([]string, len(v))
	for i, e := range v {
		messages[i] = e.Message
	}
	return strings.Join(messages, "; ")
}

func missingRequiredField(identifier string) ValidationError {
	return ValidationError{
		Field:   identifier,
		Rule:    RuleMissingRequiredField,
		Message: fmt.Sprintf("field %q is required", identifier),
	}
}

func typeMismatch(identifier string, kind FieldKind) ValidationError {
	return ValidationError{
		Field:    identifier,
		Rule:     RuleTypeMismatch,
		Expected: string(kind),
		Message:  fmt.Sprintf("field %q must be of kind %s", identifier, kind),
	}
}

func constraintViolation(identifier, constraint string) ValidationError {
	return ValidationError{
		Field:      identifier,
		Rule:       RuleConstraintViolation,
		Constraint: constraint,
		Message:    fmt.Sprintf("field %q violates constraint %s", identifier, constraint),
	}
}

func unknownField(key string) ValidationError {
	return ValidationError{
		Field:   key,
		Rule:    RuleUnknownField,
		Message: fmt.Sprintf("field %q is not defined on this content type", key),
	}
}

// RelationTargetViolation marks a relation value whose target entry does not
// resolve. The pure validator only checks shape; the gateway appends this
// after looking the target up.
func RelationTargetViolation(identifier string) ValidationError {
	return constraintViolation(identifier, ConstraintRelationTarget)
}

// Validate checks payload against the active fields of the content type and
// returns a coerced copy, or every error found. It never touches storage and
// validating the same payload twice yields the same result.
func (ct ContentType) Validate(payload EntryData) (EntryData, ValidationErrors) {
	var errs ValidationErrors

	validated := make(EntryData, len(payload))

	for _, field := range ct.ActiveFields() {
		value, present := payload[field.Identifier]
		if !present || value == nil {
			if field.Required {
				errs = append(errs, missingRequiredField(field.Identifier))
			}
			continue
		}

		coerced, fieldErrs := coerceValue(field, value)
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
			continue
		}

		validated[field.Identifier] = coerced
	}

	// Keys matching a soft-removed field are dropped, not rejected: historical
	// entry data must never block a later update. Only keys matching no field
	// definition at all count as unknown.
	defined := make(map[string]struct{}, len(ct.Fields))
	for _, field := range ct.Fields {
		defined[field.Identifier] = struct{}{}
	}

	unknown := make([]string, 0)
	for key := range payload {
		if _, ok := defined[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		errs = append(errs, unknownField(key))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return validated, nil
}

// RelationFields returns the active relation fields that are present in data,
// for the gateway to resolve their targets.
func (ct ContentType) RelationFields(data EntryData) []Field {
	result := make([]Field, 0)
	for _, field := range ct.ActiveFields() {
		if field.Kind != FieldKindRelation {
			continue
		}
		if _, present := data[field.Identifier]; present {
			result = append(result, field)
		}
	}
	return result
}

func coerceValue(field Field, value any) (any, ValidationErrors) {
	switch field.Kind {
	case FieldKindText, FieldKindRichText:
		return coerceText(field, value)
	case FieldKindNumber:
		return coerceNumber(field, value)
	case FieldKindBoolean:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, ValidationErrors{typeMismatch(field.Identifier, field.Kind)}
	case FieldKindDate:
		return coerceDate(field, value)
	case FieldKindMedia:
		return coerceMedia(field, value)
	case FieldKindRelation:
		if s, ok := value.(string); ok && utils.IsUUID(s) {
			return s, nil
		}
		return nil, ValidationErrors{typeMismatch(field.Identifier, field.Kind)}
	default:
		// Unreachable while the kind set stays closed
		return nil, ValidationErrors{typeMismatch(field.Identifier, field.Kind)}
	}
}

func coerceText(field Field, value any) (any, ValidationErrors) {
	s, ok := value.(string)
	if !ok {
		return nil, ValidationErrors{typeMismatch(field.Identifier, field.Kind)}
	}

	var errs ValidationErrors
	if minLength, ok := metadataNumber(field.Metadata, ConstraintMinLength); ok && len(s) < int(minLength) {
		errs = append(errs, constraintViolation(field.Identifier, ConstraintMinLength))
	}
	if maxLength, ok := metadataNumber(field.Metadata, ConstraintMaxLength); ok && len(s) > int(maxLength) {
		errs = append(errs, constraintViolation(field.Identifier, ConstraintMaxLength))
	}
	if options, ok := metadataOptions(field.Metadata); ok && !contains(options, s) {
		errs = append(errs, constraintViolation(field.Identifier, ConstraintOptions))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}

func coerceNumber(field Field, value any) (any, ValidationErrors) {
	number, ok := toFloat(value)
	if !ok {
		return nil, ValidationErrors{typeMismatch(field.Identifier, field.Kind)}
	}

	var errs ValidationErrors
	if minimum, ok := metadataNumber(field.Metadata, ConstraintMin); ok && number < minimum {
		errs = append(errs, constraintViolation(field.Identifier, ConstraintMin))
	}
	if maximum, ok := metadataNumber(field.Metadata, ConstraintMax); ok && number > maximum {
		errs = append(errs, constraintViolation(field.Identifier, ConstraintMax))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return number, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func coerceDate(field Field, value any) (any, ValidationErrors) {
	s, ok := value.(string)
	if !ok {
		return nil, ValidationErrors{typeMismatch(field.Identifier, field.Kind)}
	}

	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return s, nil
		}
	}

	return nil, ValidationErrors{typeMismatch(field.Identifier, field.Kind)}
}

func coerceMedia(field Field, value any) (any, ValidationErrors) {
	s, ok := value.(string)
	if !ok {
		return nil, ValidationErrors{typeMismatch(field.Identifier, field.Kind)}
	}

	if utils.IsUUID(s) {
		return s, nil
	}

	if parsed, err := url.Parse(s); err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		return s, nil
	}

	return nil, ValidationErrors{typeMismatch(field.Identifier, field.Kind)}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func metadataNumber(metadata FieldMetadata, key string) (float64, bool) {
	if metadata == nil {
		return 0, false
	}
	value, ok := metadata[key]
	if !ok {
		return 0, false
	}
	return toFloat(value)
}

func metadataOptions(metadata FieldMetadata) ([]string, bool) {
	if metadata == nil {
		return nil, false
	}
	value, ok := metadata[ConstraintOptions]
	if !ok {
		return nil, false
	}

	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result, true
	default:
		return nil, false
	}
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
