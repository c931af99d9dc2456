package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cinetick/booking-engine/internal/core/domain"
)

// CatalogRepository reads the collaborator-owned catalog tables. The
// engine never writes them.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetShowtime(ctx context.Context, id uuid.UUID) (*domain.Showtime, error) {
	query := `
	SELECT id, movie_id, theater_id, movie_type, start_time, end_time, base_prices
	FROM showtimes
	WHERE id = $1
	`

	var st domain.Showtime
	var basePrices []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&st.ID,
		&st.MovieID,
		&st.TheaterID,
		&st.MovieType,
		&st.StartTime,
		&st.EndTime,
		&basePrices,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(basePrices, &st.BasePrices); err != nil {
		return nil, fmt.Errorf("failed to decode base prices for showtime %s: %w", id, err)
	}

	return &st, nil
}

func (r *CatalogRepository) GetTheaterLayout(ctx context.Context, theaterID uuid.UUID) (*domain.TheaterLayout, error) {
	query := `
	SELECT theater_id, seat_rows, seat_columns, overlay
	FROM theater_layouts
	WHERE theater_id = $1
	`

	var layout domain.TheaterLayout
	var overlay []byte

	err := r.db.QueryRowContext(ctx, query, theaterID).Scan(&layout.TheaterID, &layout.Rows, &layout.Columns, &overlay)
	if err != nil {
		return nil, err
	}

	if len(overlay) > 0 {
		if err := json.Unmarshal(overlay, &layout.Overlay); err != nil {
			return nil, fmt.Errorf("failed to decode seat layout overlay for theater %s: %w", theaterID, err)
		}
	}

	return &layout, nil
}

// ActivePricingStrategies returns the strategies active at the given
// instant. Matching against the showtime itself happens in the domain;
// the showtime id is part of the catalog contract for implementations
// that scope strategies per screening.
func (r *CatalogRepository) ActivePricingStrategies(ctx context.Context, showtimeID uuid.UUID, now time.Time) ([]domain.PricingStrategy, error) {
	query := `
	SELECT id, condition_type, condition_value, discount_percentage, extra_charge, is_active
	FROM pricing_strategies
	WHERE is_active = TRUE
	  AND (valid_from IS NULL OR valid_from <= $1)
	  AND (valid_until IS NULL OR valid_until >= $1)
	ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var strategies []domain.PricingStrategy
	for rows.Next() {
		var s domain.PricingStrategy
		var discount, extra sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.ConditionType, &s.ConditionValue, &discount, &extra, &s.IsActive); err != nil {
			return nil, err
		}
		if discount.Valid {
			s.DiscountPercentage = &discount.Float64
		}
		if extra.Valid {
			s.ExtraCharge = &extra.Float64
		}
		strategies = append(strategies, s)
	}

	return strategies, rows.Err()
}
