package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var ErrMaterialRefIsMalformed = errors.New("material reference must be an id, a numeric string or an object with an id")

// MaterialRef is an unresolved material reference as sent by a client: a
// number, a numeric string, or an object carrying an "id" member.
type MaterialRef struct {
	raw json.RawMessage
}

// MaterialRefFromJSON wraps a raw JSON value. Parsing is deferred until the
// collection is replaced so that every entry reports its own error.
func MaterialRefFromJSON(raw json.RawMessage) MaterialRef {
	return MaterialRef{raw: bytes.TrimSpace(raw)}
}

func MaterialRefFromID(id int64) MaterialRef {
	return MaterialRef{raw: json.RawMessage(strconv.FormatInt(id, 10))}
}

// ID parses the reference into a material id.
func (r MaterialRef) ID() (int64, error) {
	if len(r.raw) == 0 || string(r.raw) == "null" {
		return 0, ErrMaterialRefIsMalformed
	}

	switch r.raw[0] {
	case '{':
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(r.raw, &obj); err != nil || len(obj.ID) == 0 || obj.ID[0] == '{' {
			return 0, ErrMaterialRefIsMalformed
		}
		return MaterialRef{raw: obj.ID}.ID()
	case '"':
		var s string
		if err := json.Unmarshal(r.raw, &s); err != nil {
			return 0, ErrMaterialRefIsMalformed
		}
		return parseMaterialID(strings.TrimSpace(s))
	default:
		return parseMaterialID(string(r.raw))
	}
}

// String returns the reference as received, for error messages.
func (r MaterialRef) String() string {
	return string(r.raw)
}

func parseMaterialID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMaterialRefIsMalformed, s)
	}
	return id, nil
}

// ItemInput is one billed line before its material is resolved.
type ItemInput struct {
	Material MaterialRef
	Quantity int
	Fees     decimal.Decimal
}

// MeasurementInput is one measurement set before its material is resolved.
type MeasurementInput struct {
	Material   MaterialRef
	Dimensions kernel.Dimensions
	Notes      order.Notes
}

// Replacement says whether a child collection was sent at all. An absent
// collection is left untouched; a present one, even empty, replaces the
// stored collection.
type Replacement[T any] struct {
	Present bool
	Entries []T
}

// Replace marks entries as the new collection.
func Replace[T any](entries []T) Replacement[T] {
	return Replacement[T]{Present: true, Entries: entries}
}

// Keep leaves the stored collection as it is.
func Keep[T any]() Replacement[T] {
	return Replacement[T]{}
}

// CustomerData creates a customer inline with a job order.
type CustomerData struct {
	Name    string
	Phone   string
	Balance decimal.Decimal
	Points  int
}
