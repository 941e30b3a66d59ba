package commands

import (
	"context"
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

const (
	itemsParam        = "job_order_items"
	measurementsParam = "job_order_measurements"
)

// ChildCollectionReplacer turns item and measurement inputs into order
// children. Every material reference must resolve to a stored material.
// Either all present collections are replaced or, on any error, none.
type ChildCollectionReplacer struct{}

// Replace resolves the present collections and swaps them onto o. Errors of
// all entries are joined and carry field paths such as
// "job_order_items[2].material".
func (ChildCollectionReplacer) Replace(
	ctx context.Context,
	materials ports.MaterialRepository,
	o *order.Order,
	items Replacement[ItemInput],
	measurements Replacement[MeasurementInput],
) error {
	resolver := materialResolver{repo: materials, known: map[int64]bool{}}

	var (
		builtItems        []*order.Item
		builtMeasurements []*order.Measurement
		errList           []error
	)

	if items.Present {
		builtItems = make([]*order.Item, 0, len(items.Entries))
		for i, in := range items.Entries {
			item, err := buildItem(ctx, resolver, in)
			if err != nil {
				errList = append(errList, errs.PrefixParam(fmt.Sprintf("%s[%d]", itemsParam, i), err))
				continue
			}
			builtItems = append(builtItems, item)
		}
	}

	if measurements.Present {
		builtMeasurements = make([]*order.Measurement, 0, len(measurements.Entries))
		for i, in := range measurements.Entries {
			m, err := buildMeasurement(ctx, resolver, in)
			if err != nil {
				errList = append(errList, errs.PrefixParam(fmt.Sprintf("%s[%d]", measurementsParam, i), err))
				continue
			}
			builtMeasurements = append(builtMeasurements, m)
		}
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	if items.Present {
		o.ReplaceItems(builtItems)
	}
	if measurements.Present {
		o.ReplaceMeasurements(builtMeasurements)
	}
	return nil
}

func buildItem(ctx context.Context, resolver materialResolver, in ItemInput) (*order.Item, error) {
	materialID, err := resolver.resolve(ctx, in.Material)
	if err != nil {
		return nil, err
	}
	return order.NewItem(materialID, in.Quantity, in.Fees)
}

func buildMeasurement(ctx context.Context, resolver materialResolver, in MeasurementInput) (*order.Measurement, error) {
	materialID, err := resolver.resolve(ctx, in.Material)
	if err != nil {
		return nil, err
	}

	values, err := kernel.NewMeasurements(in.Dimensions)
	if err != nil {
		return nil, err
	}
	return order.NewMeasurement(materialID, values, in.Notes)
}

// materialResolver remembers materials already found during one replacement.
type materialResolver struct {
	repo  ports.MaterialRepository
	known map[int64]bool
}

func (r materialResolver) resolve(ctx context.Context, ref MaterialRef) (int64, error) {
	id, err := ref.ID()
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("material", err)
	}
	if r.known[id] {
		return id, nil
	}

	if _, err = r.repo.Get(ctx, id); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return 0, errs.NewValueIsInvalidErrorWithCause("material", fmt.Errorf("material %d does not exist", id))
		}
		return 0, err
	}

	r.known[id] = true
	return id, nil
}
