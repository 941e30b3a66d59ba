package order

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a priced line of a job order. Its total is always quantity × fees.
type Item struct {
	id          int64
	materialID  int64
	quantity    int
	fees        decimal.Decimal
	totalAmount decimal.Decimal
	isActive    bool
}

// NewItem validates a new line. The material must already be resolved to an
// existing catalog entry by the caller.
func NewItem(materialID int64, quantity int, fees decimal.Decimal) (*Item, error) {
	item := &Item{isActive: true}

	if err := errors.Join(
		validateMaterialID(materialID),
		item.setQuantity(quantity),
		item.setFees(fees),
	); err != nil {
		return nil, err
	}

	total := kernel.RoundMoney(item.fees.Mul(decimal.NewFromInt(int64(item.quantity))))
	if err := kernel.WithinMoneyRange("total_amount", total); err != nil {
		return nil, err
	}

	item.materialID = materialID
	item.totalAmount = total
	return item, nil
}

// RestoreItem rehydrates a persisted item without re-validating it.
func RestoreItem(id, materialID int64, quantity int, fees, totalAmount decimal.Decimal, isActive bool) *Item {
	return &Item{
		id:          id,
		materialID:  materialID,
		quantity:    quantity,
		fees:        fees,
		totalAmount: totalAmount,
		isActive:    isActive,
	}
}

func (i *Item) ID() int64                    { return i.id }
func (i *Item) MaterialID() int64            { return i.materialID }
func (i *Item) Quantity() int                { return i.quantity }
func (i *Item) Fees() decimal.Decimal        { return i.fees }
func (i *Item) TotalAmount() decimal.Decimal { return i.totalAmount }
func (i *Item) IsActive() bool               { return i.isActive }

// AssignID is called by the repository once the row is inserted.
func (i *Item) AssignID(id int64) {
	if i.id == 0 {
		i.id = id
	}
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setFees(fees decimal.Decimal) error {
	v, err := kernel.PositiveAmount("fees", fees)
	if err != nil {
		return err
	}
	i.fees = v
	return nil
}

func validateMaterialID(materialID int64) error {
	if materialID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("material", fmt.Errorf("%d is not a valid material id", materialID))
	}
	return nil
}
