package commands

import (
	"context"

	"atelier/internal/core/domain/model/identifier"
	"atelier/internal/core/domain/model/material"
)

type CreateMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
	allocator  IdentifierAllocator
}

func NewCreateMaterialCommandHandler(uowFactory MaterialUoWFactory, allocator IdentifierAllocator) CreateMaterialCommandHandler {
	return CreateMaterialCommandHandler{uowFactory: uowFactory, allocator: allocator}
}

func (h CreateMaterialCommandHandler) Handle(ctx context.Context, cmd CreateMaterialCommand) (*material.Material, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sku := cmd.SKU()
	if sku == "" {
		generated, err := h.allocator.Allocate(ctx, uow.IdentifierStore(), identifier.MaterialSKU)
		if err != nil {
			return nil, err
		}
		sku = generated
	}

	created, err := material.NewMaterial(sku, cmd.Name(), cmd.Measurements(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = uow.MaterialRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
