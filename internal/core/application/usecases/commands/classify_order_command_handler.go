package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"
)

// ClassifyOrderCommandHandler handles return-method classification.
// Automatic runs apply the threshold rules and respect a sticky manual
// basis; override runs go through the aggregate's validation and persist the
// order fields and the append-only audit record in one transaction.
//
// Example:
//
//	handler := NewClassifyOrderCommandHandler(uowFactory)
//	cmd, _ := NewClassifyOrderCommand(orderID, nil) // automatic run
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("classification failed: %w", err)
//	}
type ClassifyOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	classifier services.Classifier
}

// NewClassifyOrderCommandHandler creates a handler for classification runs.
// Requires an OrderUoWFactory for transactional persistence.
func NewClassifyOrderCommandHandler(uowFactory OrderUoWFactory) ClassifyOrderCommandHandler {
	return ClassifyOrderCommandHandler{
		uowFactory: uowFactory,
		classifier: services.NewClassifier(),
	}
}

// Handle classifies the order, automatically or by explicit override.
// Returns ErrNoOrderFound when the order does not exist. A no-op override
// (same classification) or a non-manager actor is rejected with a
// validation error and nothing is written.
func (h ClassifyOrderCommandHandler) Handle(ctx context.Context, cmd ClassifyOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	classifiedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	if override := cmd.Override(); override != nil {
		record, overrideErr := classifiedOrder.OverrideClassification(
			override.ActorID,
			override.ActorRole,
			override.NewClassification,
			override.Reason,
			time.Now().UTC(),
		)
		if overrideErr != nil {
			return overrideErr
		}

		if err = orderRepo.AddClassificationOverride(ctx, record); err != nil {
			return err
		}
	} else {
		classification := h.classifier.Classify(classifiedOrder.ItemCount(), classifiedOrder.TotalAmount())
		if err = classifiedOrder.ApplyAutoClassification(classification); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, classifiedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
