package orders

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/inventory"
)

type AdminService struct {
	db  *gorm.DB
	inv *inventory.Service
	log *slog.Logger
}

func NewAdminService(db *gorm.DB, inv *inventory.Service, log *slog.Logger) *AdminService {
	return &AdminService{db: db, inv: inv, log: log}
}

type UpdateStatusInput struct {
	OrderID string
	Status  string // target status
	Actor   string // admin user id
	Note    string
}

// UpdateStatus moves an order along the fulfilment chain. The status write,
// the timeline entry and any stock restock happen in one transaction.
func (s *AdminService) UpdateStatus(ctx context.Context, in UpdateStatusInput) error {
	if in.OrderID == "" || in.Actor == "" {
		return ErrNotActionable
	}
	if !ValidStatus(in.Status) {
		return ErrInvalidTransition
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			First(&o, "id = ?", in.OrderID).Error; err != nil {
			return err
		}

		from := o.Status
		to := in.Status
		if !CanTransition(from, to) {
			return ErrInvalidTransition
		}

		now := time.Now()
		updates := map[string]any{
			"status":     to,
			"updated_at": now,
		}
		// COD settles on delivery.
		if to == StatusDelivered && o.PaymentMethod == PaymentCOD && !o.Paid {
			updates["paid"] = true
		}

		if err := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ? AND status = ?", o.ID, from). // optimistic guard
			Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Create(statusChangeEntry(o.ID, from, to, in.Actor, in.Note, now)).Error; err != nil {
			return err
		}

		if to == StatusCancelled {
			lines := make([]inventory.StockLine, 0, len(o.Items))
			for _, it := range o.Items {
				if it.ProductID == "" {
					continue
				}
				lines = append(lines, inventory.StockLine{ProductID: it.ProductID, Qty: it.Quantity})
			}
			if err := s.inv.RestockForCancelTx(ctx, tx, o.ID, lines); err != nil {
				return err
			}
		}

		return nil
	})
}

type BulkUpdateResult struct {
	ModifiedCount int
	SkippedIDs    []string // invalid transitions or missing orders
}

// BulkUpdateStatus applies the same target status to many orders. Orders that
// cannot take the transition are skipped, not failed; the caller gets the
// count of orders actually modified.
func (s *AdminService) BulkUpdateStatus(ctx context.Context, orderIDs []string, status, actor string) (BulkUpdateResult, error) {
	if !ValidStatus(status) {
		return BulkUpdateResult{}, ErrInvalidTransition
	}

	var res BulkUpdateResult
	for _, id := range orderIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		err := s.UpdateStatus(ctx, UpdateStatusInput{OrderID: id, Status: status, Actor: actor})
		switch {
		case err == nil:
			res.ModifiedCount++
		case errors.Is(err, ErrInvalidTransition), errors.Is(err, gorm.ErrRecordNotFound):
			res.SkippedIDs = append(res.SkippedIDs, id)
		default:
			return res, err
		}
	}

	s.log.LogAttrs(ctx, slog.LevelInfo, "bulk_status_update",
		slog.String("status", status),
		slog.Int("requested", len(orderIDs)),
		slog.Int("modified", res.ModifiedCount),
		slog.Int("skipped", len(res.SkippedIDs)),
	)
	return res, nil
}

// AddNote appends a free-text note to the order timeline.
func (s *AdminService) AddNote(ctx context.Context, orderID, actor, note string) (TimelineEntry, error) {
	note = strings.TrimSpace(note)
	if orderID == "" || note == "" {
		return TimelineEntry{}, ErrNotActionable
	}
	if actor == "" {
		actor = ActorSystem
	}

	var exists int64
	if err := s.db.WithContext(ctx).Model(&Order{}).Where("id = ?", orderID).Count(&exists).Error; err != nil {
		return TimelineEntry{}, err
	}
	if exists == 0 {
		return TimelineEntry{}, gorm.ErrRecordNotFound
	}

	e := TimelineEntry{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Kind:      TimelineNote,
		Actor:     actor,
		Note:      &note,
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return TimelineEntry{}, err
	}
	return e, nil
}

// MarkCodPaid settles a cash-on-delivery order manually, before delivery.
func (s *AdminService) MarkCodPaid(ctx context.Context, orderID, actor string) error {
	if orderID == "" {
		return ErrNotActionable
	}
	if actor == "" {
		actor = ActorSystem
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", orderID).Error; err != nil {
			return err
		}
		if o.PaymentMethod != PaymentCOD {
			return ErrNotCOD
		}
		if o.Paid {
			return ErrAlreadyPaid
		}

		now := time.Now()
		if err := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ? AND paid = ?", o.ID, false).
			Updates(map[string]any{"paid": true, "updated_at": now}).Error; err != nil {
			return err
		}

		msg := "COD payment collected"
		e := TimelineEntry{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			Kind:      TimelineEvent,
			Actor:     actor,
			Note:      &msg,
			CreatedAt: now,
		}
		return tx.WithContext(ctx).Create(&e).Error
	})
}

func statusChangeEntry(orderID, from, to, actor, note string, at time.Time) *TimelineEntry {
	if actor == "" {
		actor = ActorSystem
	}
	var notePtr *string
	if n := strings.TrimSpace(note); n != "" {
		notePtr = &n
	}
	return &TimelineEntry{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		Kind:       TimelineStatusChange,
		FromStatus: &from,
		ToStatus:   &to,
		Actor:      actor,
		Note:       notePtr,
		CreatedAt:  at,
	}
}
