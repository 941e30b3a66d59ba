// Package identifier describes the human-readable identifiers handed out to
// customers, job orders, materials, sales and receipts: their formats, how they
// are generated and how legacy data seeds the counters.
package identifier

import (
	"fmt"
	"strconv"
	"strings"

	"atelier/internal/pkg/errs"
)

// Kind names one family of identifiers.
type Kind string

const (
	CustomerCode  Kind = "customer_code"
	OrderNumber   Kind = "job_order_number"
	MaterialSKU   Kind = "material_sku"
	SaleNumber    Kind = "sale_number"
	ReceiptNumber Kind = "receipt_number"
)

// Strategy is how a kind produces new values.
type Strategy int

const (
	// Sequence kinds are backed by a persisted, atomically incremented counter.
	Sequence Strategy = iota + 1
	// Random kinds draw digits and retry on collision.
	Random
)

const (
	orderPrefix   = "JO-"
	receiptPrefix = "RCP"
	salePrefix    = "SALE-"

	skuDigits  = 5
	saleDigits = 6
)

// Kinds lists every identifier kind.
func Kinds() []Kind {
	return []Kind{CustomerCode, OrderNumber, MaterialSKU, SaleNumber, ReceiptNumber}
}

func (k Kind) Validate() error {
	for _, known := range Kinds() {
		if k == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("identifier_kind", fmt.Errorf("%q is not a known kind", string(k)))
}

func (k Kind) Strategy() Strategy {
	switch k {
	case MaterialSKU, SaleNumber:
		return Random
	default:
		return Sequence
	}
}

// FormatSequence renders the n-th value of a sequence kind.
//
//	CustomerCode   7  -> "7"
//	OrderNumber    4  -> "JO-0004"
//	ReceiptNumber 12  -> "RCP012"
func (k Kind) FormatSequence(n int64) (string, error) {
	switch k {
	case CustomerCode:
		return strconv.FormatInt(n, 10), nil
	case OrderNumber:
		return fmt.Sprintf("%s%04d", orderPrefix, n), nil
	case ReceiptNumber:
		return fmt.Sprintf("%s%03d", receiptPrefix, n), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("identifier_kind",
			fmt.Errorf("%s is not a sequence kind", string(k)))
	}
}

// DigitSource yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type DigitSource interface {
	IntN(n int) int
}

// RandomCandidate draws one candidate value of a random kind.
//
//	MaterialSKU -> "04821"
//	SaleNumber  -> "SALE-903114"
func (k Kind) RandomCandidate(src DigitSource) (string, error) {
	switch k {
	case MaterialSKU:
		return digits(src, skuDigits), nil
	case SaleNumber:
		return salePrefix + digits(src, saleDigits), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("identifier_kind",
			fmt.Errorf("%s is not a random kind", string(k)))
	}
}

// SpaceSize is the number of distinct values a random kind can produce.
func (k Kind) SpaceSize() int64 {
	switch k {
	case MaterialSKU:
		return 100_000
	case SaleNumber:
		return 1_000_000
	default:
		return 0
	}
}

func digits(src DigitSource, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(byte('0' + src.IntN(10)))
	}
	return b.String()
}
