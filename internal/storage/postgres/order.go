package postgres

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oolio/order-intake/internal/domain/order"
)

const (
	insertOrderSQL = `INSERT INTO orders (order_id, customer_id, total_amount, items_count, created_at)
	VALUES ($1, $2, $3, $4, $5)`

	insertItemSQL = `INSERT INTO order_items (order_id, product_id, quantity, price)
	VALUES ($1, $2, $3, $4)`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL. Every
// Create runs in a single transaction with a deadline.
type OrderRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewOrderRepository returns an OrderRepository using the given pool. The
// timeout bounds the whole transaction, begin to commit; zero disables it.
func NewOrderRepository(pool *pgxpool.Pool, timeout time.Duration) *OrderRepository {
	return &OrderRepository{pool: pool, timeout: timeout}
}

// Create inserts the order header and one row per line item, in input order,
// atomically. On any failure the transaction is rolled back and no rows
// remain. The deferred rollback is a no-op after a successful commit.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	// Rollback after a successful commit returns pgx.ErrTxClosed and is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, insertOrderSQL,
		o.ID, o.CustomerID, o.Total, o.ItemsCount, o.CreatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "inserting order %q", o.ID)
	}

	for _, item := range o.Items {
		_, err = tx.Exec(ctx, insertItemSQL,
			o.ID, item.ProductID, item.Quantity, item.Price,
		)
		if err != nil {
			return errors.Wrapf(err, "inserting item %q for order %q", item.ProductID, o.ID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit transaction")
	}

	return nil
}
