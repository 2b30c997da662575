package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

// uniqueViolation is the Postgres error code for duplicate primary keys.
const uniqueViolation = "23505"

type cartRepository struct {
	db     *sql.DB
	ttl    time.Duration
	logger *zap.Logger
}

// NewCartRepository creates a Postgres-backed cart repository. Carts idle
// longer than ttl are treated as gone.
func NewCartRepository(db *sql.DB, ttl time.Duration, logger *zap.Logger) *cartRepository {
	return &cartRepository{
		db:     db,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *cartRepository) Get(ctx context.Context, id string) (*domain.Cart, error) {
	query := `
		SELECT items, version, created_at, updated_at
		FROM carts
		WHERE id = $1 AND expires_at > now()
	`

	cart := domain.Cart{ID: id}
	var itemsJSON []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&itemsJSON,
		&cart.Version,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &apperrors.ErrNotFound{Resource: "cart", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get cart", zap.String("cart_id", id), zap.Error(err))
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
		r.logger.Error("Failed to unmarshal cart items", zap.String("cart_id", id), zap.Error(err))
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepository) SaveIfVersion(ctx context.Context, cart *domain.Cart, expectedVersion int) (bool, error) {
	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(r.ttl)

	if expectedVersion == 0 {
		// Never persisted: insert. A concurrent first write shows up as a
		// duplicate key, which is a version conflict.
		query := `
			INSERT INTO carts (id, items, version, created_at, updated_at, expires_at)
			VALUES ($1, $2, 1, $3, $4, $5)
		`
		createdAt := cart.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		_, err := r.db.ExecContext(ctx, query, cart.ID, itemsJSON, createdAt, now, expiresAt)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
				return false, nil
			}
			r.logger.Error("Failed to insert cart", zap.String("cart_id", cart.ID), zap.Error(err))
			return false, err
		}

		cart.Version = 1
		cart.UpdatedAt = now
		return true, nil
	}

	query := `
		UPDATE carts
		SET items = $2, version = version + 1, updated_at = $3, expires_at = $4
		WHERE id = $1 AND version = $5
	`

	result, err := r.db.ExecContext(ctx, query, cart.ID, itemsJSON, now, expiresAt, expectedVersion)
	if err != nil {
		r.logger.Error("Failed to update cart", zap.String("cart_id", cart.ID), zap.Error(err))
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	cart.Version = expectedVersion + 1
	cart.UpdatedAt = now
	return true, nil
}

func (r *cartRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM carts WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.logger.Error("Failed to delete cart", zap.String("cart_id", id), zap.Error(err))
		return err
	}

	return nil
}

// PurgeExpired removes carts past their idle TTL. Called periodically from
// the server loop.
func (r *cartRepository) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
