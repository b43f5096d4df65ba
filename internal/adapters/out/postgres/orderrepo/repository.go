package orderrepo

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bulkChunkSize bounds the IN (...) lists of bulk updates so batches of any
// size translate into statements of predictable cost.
const bulkChunkSize = 500

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Every column is written so
// fields cleared on the aggregate clear in the row too.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the orders with the given identifiers. A missing row
// surfaces as an ObjectNotFound error naming the first absent identifier.
func (r *GormOrderRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	rawIDs := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs[i] = id.Bytes()
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = true
	}
	for _, id := range ids {
		if !found[id.Bytes()] {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
	}

	return r.toDomainAll(dtos)
}

// GetAllInPendingRouting retrieves orders waiting for a transfer run to their
// processing branch, oldest first.
func (r *GormOrderRepository) GetAllInPendingRouting(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("routing_status = ?", order.RoutingPending.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllAwaitingCollection retrieves ready orders still on the collection
// shelf, oldest first.
func (r *GormOrderRepository) GetAllAwaitingCollection(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", order.Ready.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// UpdateAllByIDs applies one uniform move to a set of orders in bounded
// chunks. Each chunk's write is guarded by the expected statuses; a chunk
// touching fewer rows than it targeted returns ports.ErrBulkUpdateIncomplete
// so the enclosing transaction rolls back.
func (r *GormOrderRepository) UpdateAllByIDs(ctx context.Context, update ports.BulkOrderUpdate) error {
	values := map[string]any{"status": update.NewStatus.String()}
	if update.NewRoutingStatus != nil {
		values["routing_status"] = update.NewRoutingStatus.String()
	}
	if update.AssignedStage != nil {
		values["assigned_stage"] = update.AssignedStage.String()
	}
	if update.SortedAt != nil {
		values["sorted_at"] = *update.SortedAt
	}
	if update.EarliestDeliveryAt != nil {
		values["earliest_delivery_at"] = *update.EarliestDeliveryAt
	}
	if update.ArrivedAt != nil {
		values["arrived_at"] = *update.ArrivedAt
	}

	for chunk := range slices.Chunk(update.IDs, bulkChunkSize) {
		rawIDs := make([]uuid.UUID, len(chunk))
		for i, id := range chunk {
			rawIDs[i] = id.Bytes()
		}

		query := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id IN ?", rawIDs).
			Where("status = ?", update.ExpectedStatus.String())
		if update.ExpectedRoutingStatus != nil {
			query = query.Where("routing_status = ?", update.ExpectedRoutingStatus.String())
		}

		result := query.Updates(values)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected != int64(len(chunk)) {
			return ports.ErrBulkUpdateIncomplete
		}
	}

	return nil
}

// NextTagSequence atomically increments and returns the per-branch, per-day
// intake counter through an upsert, so concurrent intakes never share a
// sequence number.
func (r *GormOrderRepository) NextTagSequence(
	ctx context.Context,
	branchID kernel.UUID,
	day time.Time,
) (int64, error) {
	if err := branchID.Validate(); err != nil {
		return 0, err
	}

	var counter int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO tag_sequences (branch_id, day, counter)
		VALUES (?, ?, 1)
		ON CONFLICT (branch_id, day)
		DO UPDATE SET counter = tag_sequences.counter + 1
		RETURNING counter
	`, branchID.Bytes(), day.UTC().Format("20060102")).Row().Scan(&counter)
	if err != nil {
		return 0, err
	}

	return counter, nil
}

// IncrementPaid atomically adds amount to the order's paid total and returns
// the total after the increment, read under the row lock of the update.
func (r *GormOrderRepository) IncrementPaid(
	ctx context.Context,
	orderID kernel.UUID,
	amount kernel.Money,
) (kernel.Money, error) {
	if err := orderID.Validate(); err != nil {
		return kernel.ZeroMoney(), err
	}

	var total kernel.Money
	err := r.db.WithContext(ctx).Raw(`
		UPDATE orders
		SET paid_amount = paid_amount + ?::numeric
		WHERE id = ?
		RETURNING paid_amount
	`, amount, orderID.Bytes()).Row().Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return kernel.ZeroMoney(), errs.NewObjectNotFoundError("orderID", orderID.String())
	}
	if err != nil {
		return kernel.ZeroMoney(), err
	}

	return total, nil
}

// SetPaymentStatus persists a recomputed derived payment status.
func (r *GormOrderRepository) SetPaymentStatus(
	ctx context.Context,
	orderID kernel.UUID,
	status order.PaymentStatus,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID.Bytes()).
		Update("payment_status", status.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", orderID.String())
	}

	return nil
}

// AddPayment appends a ledger row for a received payment.
func (r *GormOrderRepository) AddPayment(ctx context.Context, record *order.PaymentRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := paymentFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddClassificationOverride appends a classification override audit record.
func (r *GormOrderRepository) AddClassificationOverride(
	ctx context.Context,
	record *order.ClassificationOverride,
) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := overrideFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		restored, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, restored)
	}
	return orders, nil
}
