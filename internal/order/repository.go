package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Filter narrows List. Zero-valued fields impose no predicate.
type Filter struct {
	Status Status
	UserID string
}

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	GetItems(ctx context.Context, orderID string) ([]Item, error)
	List(ctx context.Context, f Filter) ([]Order, error)
	ListByStatus(ctx context.Context, status Status) ([]Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

// Create inserts the order header and all its items in one transaction.
// The order row and its items appear together or not at all.
func (r *repo) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.OrderType == "" {
		o.OrderType = DefaultOrderType
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, total_amount, status, order_type, customization, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, o.UserID, o.TotalAmount, o.Status, o.OrderType, jsonArg(o.Customization), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO order_items (id, order_id, menu_item_id, quantity, price_at_time, line_no)
         VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("prepare order_items insert: %w", err)
	}
	defer stmt.Close()

	for i := range o.Items {
		it := &o.Items[i]
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.OrderID = o.ID
		it.LineNo = i + 1
		if _, err = stmt.ExecContext(ctx, it.ID, it.OrderID, it.MenuItemID, it.Quantity, it.PriceAtTime, it.LineNo); err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// jsonb parameters go over the wire as text; an empty blob becomes NULL.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

// GetByID returns the order with its items, or nil when no row matches.
func (r *repo) GetByID(ctx context.Context, orderID string) (*Order, error) {
	var (
		o      Order
		custom []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, total_amount, status, order_type, customization, created_at
         FROM orders WHERE id = $1`,
		orderID,
	).Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.OrderType, &custom, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order: %w", err)
	}
	o.Customization = custom

	items, err := r.GetItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repo) GetItems(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, order_id, menu_item_id, quantity, price_at_time, line_no
         FROM order_items WHERE order_id = $1 ORDER BY line_no`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("select order_items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.PriceAtTime, &it.LineNo); err != nil {
			return nil, fmt.Errorf("scan order_item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return items, nil
}

// List returns order headers newest first. Filter predicates are
// AND-combined; placeholders are numbered in the order the predicates
// are appended so each filter value binds to its own condition.
func (r *repo) List(ctx context.Context, f Filter) ([]Order, error) {
	query := `SELECT id, user_id, total_amount, status, order_type, customization, created_at FROM orders`

	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var (
			o      Order
			custom []byte
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.OrderType, &custom, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Customization = custom
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return orders, nil
}

func (r *repo) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	return r.List(ctx, Filter{Status: status})
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return r.List(ctx, Filter{UserID: userID})
}

// UpdateStatus overwrites the status unconditionally and returns the
// updated order, or nil when no row matches.
func (r *repo) UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error) {
	var (
		o      Order
		custom []byte
	)
	err := r.db.QueryRowContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2
         RETURNING id, user_id, total_amount, status, order_type, customization, created_at`,
		status, orderID,
	).Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.OrderType, &custom, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	o.Customization = custom
	return &o, nil
}

func (r *repo) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY status`,
	)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()

	var counts []StatusCount
	for rows.Next() {
		var c StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return counts, nil
}
