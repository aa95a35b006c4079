package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/ownership"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// authorizeCaller loads the ownership record keyed by (itemID, caller) and
// evaluates the owner-gate predicate on it. A caller without a live record,
// including any caller targeting a nonexistent item, is rejected with an
// UnauthorizedError. The predicate is re-evaluated on every gated call.
func authorizeCaller(
	ctx context.Context,
	records ports.OwnershipRepository,
	itemID kernel.ItemID,
	caller kernel.Identity,
) (*ownership.Record, error) {
	record, err := records.Get(ctx, itemID, caller)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewUnauthorizedErrorWithCause(caller.String(), itemID.Int64(), err)
	}
	if err != nil {
		return nil, err
	}

	if err := services.NewOwnershipAuthorizer().Authorize(record, itemID, caller); err != nil {
		return nil, err
	}

	return record, nil
}
