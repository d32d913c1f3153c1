package inventory

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/metrics"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
)

type Service struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewService(db *gorm.DB, log *slog.Logger) *Service {
	return &Service{db: db, log: log}
}

type productRow struct {
	ID    string `gorm:"column:id"`
	Stock int    `gorm:"column:stock"`
}

// UpdateStock is the manual admin edit: read previous stock, write the new
// value and append exactly one ledger entry, all inside one transaction. A
// failed ledger write rolls back the stock write, so stock and ledger cannot
// diverge.
func (s *Service) UpdateStock(ctx context.Context, productID string, newStock int, actor, note string) (StockHistoryEntry, error) {
	if newStock < 0 {
		return StockHistoryEntry{}, ErrNegativeStock
	}
	if actor == "" {
		actor = "system"
	}

	var entry StockHistoryEntry
	err := withTxRetry(ctx, s.db, 3, func(tx *gorm.DB) error {
		var p productRow
		if err := tx.WithContext(ctx).
			Table("products").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", productID).
			Take(&p).Error; err != nil {
			return err
		}

		if err := tx.WithContext(ctx).
			Table("products").
			Where("id = ?", productID).
			Updates(map[string]any{
				"stock":      newStock,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		entry = newEntry(productID, ActionManualUpdate, p.Stock, newStock, actor, notePtr(note), nil)
		if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
			s.log.LogAttrs(ctx, slog.LevelError, "stock_ledger_write_failed",
				slog.String("product_id", productID),
				slog.Int("previous_stock", p.Stock),
				slog.Int("new_stock", newStock),
				slog.Any("err", err),
			)
			return apperr.PersistenceErr("Stock history could not be recorded.", err)
		}
		return nil
	})
	if err != nil {
		return StockHistoryEntry{}, err
	}
	metrics.StockUpdatesTotal.Inc()
	return entry, nil
}

type RecordChangeInput struct {
	ProductID     string
	Action        string
	PreviousStock int
	NewStock      int
	Actor         string
	Note          string
	OrderID       string
}

// RecordStockChange appends one ledger entry without touching the stock value.
// Callers must not assume the entry exists until this returns nil.
func (s *Service) RecordStockChange(ctx context.Context, in RecordChangeInput) (StockHistoryEntry, error) {
	actor := in.Actor
	if actor == "" {
		actor = "system"
	}
	action := in.Action
	if action == "" {
		action = ActionManualUpdate
	}
	var orderID *string
	if id := strings.TrimSpace(in.OrderID); id != "" {
		orderID = &id
	}

	entry := newEntry(in.ProductID, action, in.PreviousStock, in.NewStock, actor, notePtr(in.Note), orderID)
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return StockHistoryEntry{}, apperr.PersistenceErr("Stock history could not be recorded.", err)
	}
	return entry, nil
}

// History returns the full ledger for a product, newest first.
func (s *Service) History(ctx context.Context, productID string) ([]StockHistoryEntry, error) {
	var out []StockHistoryEntry
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out, "product_id = ?", productID).Error
	return out, err
}

type StockLine struct {
	ProductID string
	Qty       int
}

// DeductForOrderTx decrements stock for every line of an order inside the
// caller's transaction (no nested tx) and appends one ledger entry per
// product. Rows are locked in sorted id order to keep lock acquisition
// deterministic.
func (s *Service) DeductForOrderTx(ctx context.Context, tx *gorm.DB, orderID string, lines []StockLine) error {
	return s.applyLinesTx(ctx, tx, orderID, lines, ActionOrderDecrement, -1)
}

// RestockForCancelTx puts an order's quantities back when it is cancelled.
func (s *Service) RestockForCancelTx(ctx context.Context, tx *gorm.DB, orderID string, lines []StockLine) error {
	return s.applyLinesTx(ctx, tx, orderID, lines, ActionCancelRestock, +1)
}

// DeductForOrder: wrapper (retry + tx) for callers outside a transaction.
func (s *Service) DeductForOrder(ctx context.Context, orderID string, lines []StockLine) error {
	return withTxRetry(ctx, s.db, 3, func(tx *gorm.DB) error {
		return s.DeductForOrderTx(ctx, tx, orderID, lines)
	})
}

func (s *Service) applyLinesTx(ctx context.Context, tx *gorm.DB, orderID string, lines []StockLine, action string, sign int) error {
	if len(lines) == 0 {
		return nil
	}

	want := make(map[string]int, len(lines))
	for _, ln := range lines {
		q := ln.Qty
		if q < 1 {
			q = 1
		}
		want[ln.ProductID] += q
	}

	ids := make([]string, 0, len(want))
	for id := range want {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var rows []productRow
	if err := tx.WithContext(ctx).
		Table("products").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return err
	}

	avail := make(map[string]int, len(rows))
	for _, r := range rows {
		avail[r.ID] = r.Stock
	}

	if sign < 0 {
		var short []InsufficientStockItem
		for _, id := range ids {
			req := want[id]
			av, ok := avail[id]
			if !ok || av < req {
				short = append(short, InsufficientStockItem{ProductID: id, Requested: req, Available: av})
			}
		}
		if len(short) > 0 {
			return &InsufficientStockError{Items: short}
		}
	}

	for _, id := range ids {
		prev, ok := avail[id]
		if !ok {
			// cancelled order references a product deleted since; nothing to restock
			s.log.LogAttrs(ctx, slog.LevelWarn, "stock_adjust_missing_product",
				slog.String("product_id", id),
				slog.String("order_id", orderID),
			)
			continue
		}
		next := prev + sign*want[id]

		if err := tx.WithContext(ctx).
			Table("products").
			Where("id = ?", id).
			Updates(map[string]any{
				"stock":      next,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		oid := orderID
		entry := newEntry(id, action, prev, next, "system", nil, &oid)
		if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
			s.log.LogAttrs(ctx, slog.LevelError, "stock_ledger_write_failed",
				slog.String("product_id", id),
				slog.String("order_id", orderID),
				slog.Any("err", err),
			)
			return apperr.PersistenceErr("Stock history could not be recorded.", err)
		}
	}

	return nil
}

func notePtr(s string) *string {
	n := strings.TrimSpace(s)
	if n == "" {
		return nil
	}
	return &n
}

// --- retry helpers (deadlock/lock timeout) ---

func withTxRetry(ctx context.Context, db *gorm.DB, attempts int, fn func(tx *gorm.DB) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error

	for i := 0; i < attempts; i++ {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(tx)
		})
		if err == nil {
			return nil
		}
		lastErr = err

		if isRetryableMySQLError(err) && i < attempts-1 {
			time.Sleep(time.Duration(50*(i+1)) * time.Millisecond)
			continue
		}
		return err
	}
	return lastErr
}

func isRetryableMySQLError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1213: Deadlock found; 1205: Lock wait timeout
		return me.Number == 1213 || me.Number == 1205
	}
	return false
}
