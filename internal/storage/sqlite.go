package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adp-pizza/pizzabot/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
)

// SQLiteStorage implements the bot's repositories on top of SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Single writer keeps cart upserts and order-id allocation serialized
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Menu operations

// ListMenu returns every catalog item ordered by id.
func (s *SQLiteStorage) ListMenu(ctx context.Context) ([]types.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), COALESCE(photo_url, ''), price
		FROM menu
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]types.MenuItem, 0)
	for rows.Next() {
		var item types.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.PhotoURL, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetMenuItemByName fetches one catalog item by its unique name.
func (s *SQLiteStorage) GetMenuItemByName(ctx context.Context, name string) (*types.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), COALESCE(photo_url, ''), price
		FROM menu
		WHERE name = ?
	`
	return s.scanMenuItem(s.db.QueryRowContext(ctx, query, name))
}

// GetMenuItemByID fetches one catalog item by id.
func (s *SQLiteStorage) GetMenuItemByID(ctx context.Context, id int64) (*types.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), COALESCE(photo_url, ''), price
		FROM menu
		WHERE id = ?
	`
	return s.scanMenuItem(s.db.QueryRowContext(ctx, query, id))
}

func (s *SQLiteStorage) scanMenuItem(row *sql.Row) (*types.MenuItem, error) {
	var item types.MenuItem
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.PhotoURL, &item.Price)
	if err == sql.ErrNoRows {
		return nil, types.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Cart operations

// AddToCart inserts a quantity-1 line for (userID, productID) or increments
// the existing one. The whole read-modify-write is a single upsert, so
// concurrent adds for the same pair cannot lose an increment. Returns
// types.ErrProductNotFound when the product is not on the menu.
func (s *SQLiteStorage) AddToCart(ctx context.Context, userID, productID int64) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, product_name, quantity, total_price, created_at, updated_at)
		SELECT ?, m.id, m.name, 1, m.price, ?, ?
		FROM menu m
		WHERE m.id = ?
		ON CONFLICT(user_id, product_id) DO UPDATE SET
			quantity = quantity + 1,
			total_price = total_price + excluded.total_price,
			updated_at = excluded.updated_at
	`
	now := time.Now()
	result, err := s.db.ExecContext(ctx, query, userID, now, now, productID)
	if err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return types.ErrProductNotFound
	}
	return nil
}

// GetCart returns the user's current cart lines. The order is stable but
// not meaningful.
func (s *SQLiteStorage) GetCart(ctx context.Context, userID int64) ([]types.CartEntry, error) {
	query := `
		SELECT user_id, product_id, product_name, quantity, total_price
		FROM cart_items
		WHERE user_id = ?
		ORDER BY created_at, product_id
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	entries := make([]types.CartEntry, 0)
	for rows.Next() {
		var entry types.CartEntry
		if err := rows.Scan(&entry.UserID, &entry.ProductID, &entry.ProductName, &entry.Quantity, &entry.Total); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ClearCart deletes every cart line for the user. Idempotent.
func (s *SQLiteStorage) ClearCart(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// User operations

// GetUser fetches a profile by user id. Returns types.ErrUserNotFound when
// the user has never checked out.
func (s *SQLiteStorage) GetUser(ctx context.Context, userID int64) (*types.UserProfile, error) {
	query := `
		SELECT id, COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(last_name, ''), phone, location
		FROM users
		WHERE id = ?
	`
	var profile types.UserProfile
	var phone, location sql.NullString
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID, &profile.Username, &profile.FirstName, &profile.LastName,
		&phone, &location,
	)
	if err == sql.ErrNoRows {
		return nil, types.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		profile.Phone = phone.String
	}
	if location.Valid {
		profile.Location = location.String
	}
	return &profile, nil
}

// CreateUser inserts a new profile with the chat-provided identity fields.
func (s *SQLiteStorage) CreateUser(ctx context.Context, profile *types.UserProfile) error {
	query := `
		INSERT INTO users (id, username, first_name, last_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	if _, err := s.db.ExecContext(ctx, query,
		profile.ID, profile.Username, profile.FirstName, profile.LastName, now, now); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateUserContact updates the phone and/or location fields; nil means
// leave the field untouched.
func (s *SQLiteStorage) UpdateUserContact(ctx context.Context, userID int64, phone, location *string) error {
	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now()}
	if phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *phone)
	}
	if location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *location)
	}
	if len(sets) == 1 {
		return nil
	}
	args = append(args, userID)

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user contact: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return types.ErrUserNotFound
	}
	return nil
}

// Order operations

// CreateOrder allocates the next order id and persists the order with an
// immutable copy of its line items. The allocation runs inside a single
// transaction on a single-writer pool, so ids are strictly increasing with
// no reuse even under concurrent confirmations.
func (s *SQLiteStorage) CreateOrder(ctx context.Context, order *types.Order) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM orders`).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to allocate order id: %w", err)
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, phone, total_price, location, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, next, order.UserID, order.Phone, order.Total, order.Location, now); err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_name, quantity, total_price)
			VALUES (?, ?, ?, ?)
		`, next, item.ProductName, item.Quantity, item.Total); err != nil {
			return 0, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	order.ID = next
	order.CreatedAt = now
	return next, nil
}

// GetOrder fetches one order with its line items.
func (s *SQLiteStorage) GetOrder(ctx context.Context, orderID int64) (*types.Order, error) {
	query := `
		SELECT id, user_id, phone, total_price, COALESCE(location, ''), created_at
		FROM orders
		WHERE id = ?
	`
	var order types.Order
	err := s.db.QueryRowContext(ctx, query, orderID).Scan(
		&order.ID, &order.UserID, &order.Phone, &order.Total, &order.Location, &order.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT product_name, quantity, total_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var item types.OrderItem
		if err := rows.Scan(&item.ProductName, &item.Quantity, &item.Total); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}
