package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/model"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage. Tests substitute
// a mock pool through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            brand TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
            variants JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            user_id BIGINT NOT NULL REFERENCES users(id),
            shipping_address JSONB NOT NULL,
            billing_address JSONB NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL,
            tax DOUBLE PRECISION NOT NULL,
            shipping DOUBLE PRECISION NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            payment_id TEXT NOT NULL DEFAULT '',
            tracking_number TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_lines (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            name TEXT NOT NULL,
            variant JSONB,
            quantity INTEGER NOT NULL CHECK (quantity > 0),
            price DOUBLE PRECISION NOT NULL,
            total DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS order_status_history (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            status TEXT NOT NULL,
            note TEXT NOT NULL DEFAULT '',
            changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS counters (
            name TEXT PRIMARY KEY,
            value BIGINT NOT NULL DEFAULT 0
        )`,
		`INSERT INTO counters (name, value) VALUES ('order_number', 0) ON CONFLICT (name) DO NOTHING`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_history_order ON order_status_history(order_id, changed_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, is_admin, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, is_admin, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, brand, description, price, stock, variants, created_at, updated_at
                   FROM products WHERE id=$1`
	var (
		p        model.Product
		variants []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Brand, &p.Description, &p.Price, &p.Stock, &variants, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if p.Variants, err = decodeVariants(variants); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, page, limit int) ([]model.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT id, name, brand, description, price, stock, variants, created_at, updated_at
                   FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var (
			p        model.Product
			variants []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Description, &p.Price, &p.Stock, &variants, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if p.Variants, err = decodeVariants(variants); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func decodeVariants(raw []byte) ([]model.Variant, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var variants []model.Variant
	if err := json.Unmarshal(raw, &variants); err != nil {
		return nil, fmt.Errorf("decode variants: %w", err)
	}
	return variants, nil
}

// --- OrderRepository implementation ---

// Place turns a draft into a persisted order inside a single transaction:
// per-line stock is locked and conditionally decremented, totals are computed
// from authoritative prices, and the order number comes from a persisted
// counter. Any failure rolls everything back, leaving stock untouched.
func (r *orderRepository) Place(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if len(draft.Lines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var (
			subtotal float64
			lines    = make([]model.OrderLine, 0, len(draft.Lines))
		)

		for _, req := range draft.Lines {
			const lockQuery = `SELECT name, price, stock, variants FROM products WHERE id=$1 FOR UPDATE`
			var (
				name     string
				price    float64
				stock    int
				variants []byte
			)
			if err := tx.QueryRow(ctx, lockQuery, req.ProductID).Scan(&name, &price, &stock, &variants); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("product %d: %w", req.ProductID, domainErrors.ErrNotFound)
				}
				return err
			}

			if stock < req.Quantity {
				return &domainErrors.InsufficientStockError{
					ProductID: req.ProductID,
					Requested: req.Quantity,
					Available: stock,
				}
			}

			ct, err := tx.Exec(ctx,
				`UPDATE products SET stock = stock - $2, updated_at = NOW() WHERE id=$1 AND stock >= $2`,
				req.ProductID, req.Quantity)
			if err != nil {
				return err
			}
			if ct.RowsAffected() != 1 {
				return &domainErrors.InsufficientStockError{
					ProductID: req.ProductID,
					Requested: req.Quantity,
					Available: stock,
				}
			}

			known, err := decodeVariants(variants)
			if err != nil {
				return err
			}
			authoritative := model.Product{Price: price, Variants: known}
			unit := authoritative.UnitPrice(req.Variant)
			lineTotal := unit * float64(req.Quantity)
			subtotal += lineTotal

			lines = append(lines, model.OrderLine{
				ProductID: req.ProductID,
				Name:      name,
				Variant:   req.Variant,
				Quantity:  req.Quantity,
				Price:     unit,
				Total:     lineTotal,
			})
		}

		tax := subtotal * draft.TaxRate
		total := subtotal + tax + draft.ShippingCost

		var seq int64
		if err := tx.QueryRow(ctx,
			`UPDATE counters SET value = value + 1 WHERE name='order_number' RETURNING value`).Scan(&seq); err != nil {
			return fmt.Errorf("next order number: %w", err)
		}
		number := fmt.Sprintf("%s%06d", draft.NumberPrefix, seq)

		paymentStatus := model.PaymentStatusPending
		if draft.PaymentID != "" {
			paymentStatus = model.PaymentStatusPaid
		}

		shippingJSON, err := json.Marshal(draft.ShippingAddress)
		if err != nil {
			return fmt.Errorf("encode shipping address: %w", err)
		}
		billingJSON, err := json.Marshal(draft.BillingAddress)
		if err != nil {
			return fmt.Errorf("encode billing address: %w", err)
		}

		created := &model.Order{
			Number:          number,
			UserID:          draft.UserID,
			Lines:           lines,
			ShippingAddress: draft.ShippingAddress,
			BillingAddress:  draft.BillingAddress,
			Subtotal:        subtotal,
			Tax:             tax,
			Shipping:        draft.ShippingCost,
			Total:           total,
			Status:          model.OrderStatusPending,
			PaymentMethod:   draft.PaymentMethod,
			PaymentStatus:   paymentStatus,
			PaymentID:       draft.PaymentID,
		}

		const insertOrder = `INSERT INTO orders
            (number, user_id, shipping_address, billing_address, subtotal, tax, shipping, total,
             status, payment_method, payment_status, payment_id)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
            RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder,
			number, draft.UserID, shippingJSON, billingJSON, subtotal, tax, draft.ShippingCost, total,
			created.Status, draft.PaymentMethod, paymentStatus, draft.PaymentID,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			return err
		}

		const insertLine = `INSERT INTO order_lines (order_id, product_id, name, variant, quantity, price, total)
                            VALUES ($1,$2,$3,$4,$5,$6,$7)`
		for _, line := range lines {
			var variantJSON []byte
			if line.Variant != nil {
				if variantJSON, err = json.Marshal(line.Variant); err != nil {
					return fmt.Errorf("encode variant: %w", err)
				}
			}
			if _, err := tx.Exec(ctx, insertLine,
				created.ID, line.ProductID, line.Name, variantJSON, line.Quantity, line.Price, line.Total); err != nil {
				return err
			}
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status, note)
                               VALUES ($1,$2,$3) RETURNING changed_at`
		var changedAt model.StatusChange
		changedAt.Status = model.OrderStatusPending
		changedAt.Note = "order placed"
		if err := tx.QueryRow(ctx, insertHistory, created.ID, changedAt.Status, changedAt.Note).Scan(&changedAt.ChangedAt); err != nil {
			return err
		}
		created.History = []model.StatusChange{changedAt}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, number, user_id, shipping_address, billing_address,
                          subtotal, tax, shipping, total, status, payment_method,
                          payment_status, payment_id, tracking_number, created_at, updated_at
                   FROM orders WHERE id=$1`
	var (
		o                         model.Order
		shippingJSON, billingJSON []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Number, &o.UserID, &shippingJSON, &billingJSON,
		&o.Subtotal, &o.Tax, &o.Shipping, &o.Total, &o.Status, &o.PaymentMethod,
		&o.PaymentStatus, &o.PaymentID, &o.TrackingNumber, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(shippingJSON, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping address: %w", err)
	}
	if err := json.Unmarshal(billingJSON, &o.BillingAddress); err != nil {
		return nil, fmt.Errorf("decode billing address: %w", err)
	}

	if o.Lines, err = r.loadLines(ctx, o.ID); err != nil {
		return nil, err
	}
	if o.History, err = r.loadHistory(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) loadLines(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	const query = `SELECT product_id, name, variant, quantity, price, total
                   FROM order_lines WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		var (
			line    model.OrderLine
			variant []byte
		)
		if err := rows.Scan(&line.ProductID, &line.Name, &variant, &line.Quantity, &line.Price, &line.Total); err != nil {
			return nil, err
		}
		if len(variant) > 0 {
			line.Variant = &model.Variant{}
			if err := json.Unmarshal(variant, line.Variant); err != nil {
				return nil, fmt.Errorf("decode variant: %w", err)
			}
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *orderRepository) loadHistory(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	const query = `SELECT status, note, changed_at
                   FROM order_status_history WHERE order_id=$1 ORDER BY changed_at, id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.StatusChange
	for rows.Next() {
		var entry model.StatusChange
		if err := rows.Scan(&entry.Status, &entry.Note, &entry.ChangedAt); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id=$1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT id, number, user_id, shipping_address, billing_address,
                          subtotal, tax, shipping, total, status, payment_method,
                          payment_status, payment_id, tracking_number, created_at, updated_at
                   FROM orders WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.storage.pool.Query(ctx, query, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var (
			o                         model.Order
			shippingJSON, billingJSON []byte
		)
		if err := rows.Scan(
			&o.ID, &o.Number, &o.UserID, &shippingJSON, &billingJSON,
			&o.Subtotal, &o.Tax, &o.Shipping, &o.Total, &o.Status, &o.PaymentMethod,
			&o.PaymentStatus, &o.PaymentID, &o.TrackingNumber, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(shippingJSON, &o.ShippingAddress); err != nil {
			return nil, 0, fmt.Errorf("decode shipping address: %w", err)
		}
		if err := json.Unmarshal(billingJSON, &o.BillingAddress); err != nil {
			return nil, 0, fmt.Errorf("decode billing address: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		if orders[i].Lines, err = r.loadLines(ctx, orders[i].ID); err != nil {
			return nil, 0, err
		}
	}
	return orders, total, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, note, trackingNumber string) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidStatusTransition
	}

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var current model.OrderStatus
		err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !current.CanTransitionTo(status) {
			return fmt.Errorf("%s -> %s: %w", current, status, domainErrors.ErrInvalidStatusTransition)
		}

		if trackingNumber != "" {
			_, err = tx.Exec(ctx,
				`UPDATE orders SET status=$1, tracking_number=$2, updated_at=NOW() WHERE id=$3`,
				status, trackingNumber, orderID)
		} else {
			_, err = tx.Exec(ctx,
				`UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`,
				status, orderID)
		}
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO order_status_history (order_id, status, note) VALUES ($1,$2,$3)`,
			orderID, status, note)
		return err
	})
}

// Cancel flips a pending or confirmed order to cancelled and restores every
// line's stock in the same transaction.
func (r *orderRepository) Cancel(ctx context.Context, orderID int64, note string) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var current model.OrderStatus
		err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !current.Cancellable() {
			return fmt.Errorf("status %s: %w", current, domainErrors.ErrOrderNotCancellable)
		}

		rows, err := tx.Query(ctx, `SELECT product_id, quantity FROM order_lines WHERE order_id=$1`, orderID)
		if err != nil {
			return err
		}
		defer rows.Close()

		type restore struct {
			productID int64
			quantity  int
		}
		var restores []restore
		for rows.Next() {
			var rec restore
			if err := rows.Scan(&rec.productID, &rec.quantity); err != nil {
				return err
			}
			restores = append(restores, rec)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for _, rec := range restores {
			if _, err := tx.Exec(ctx,
				`UPDATE products SET stock = stock + $2, updated_at = NOW() WHERE id=$1`,
				rec.productID, rec.quantity); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx,
			`UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`,
			model.OrderStatusCancelled, orderID); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO order_status_history (order_id, status, note) VALUES ($1,$2,$3)`,
			orderID, model.OrderStatusCancelled, note)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}
