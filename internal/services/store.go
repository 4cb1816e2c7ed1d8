package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "baletrack/internal/errors"
	"baletrack/internal/period"
	"baletrack/internal/uuid"
)

// boundsSlack widens SQL range filters so storage-level time formatting can
// never drop a row; period.Filter.Matches makes the final decision.
const boundsSlack = 24 * time.Hour

// Option configures a service.
type Option func(*store)

// WithQueryTimeout bounds every database call made by the service.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *store) { s.timeout = d }
}

// store carries the pool and per-call deadline shared by the record services.
type store struct {
	db      *gorm.DB
	timeout time.Duration
}

func newStore(db *gorm.DB, opts []Option) store {
	s := store{db: db}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// conn returns a session bound to ctx, with the configured deadline applied.
func (s store) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if s.timeout <= 0 {
		return s.db.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	return s.db.WithContext(ctx), cancel
}

// findOwned loads the record with id owned by userID in a single filtered
// read. Malformed ids and foreign records report notFound.
func findOwned(db *gorm.DB, dest interface{}, userID, id string, notFound *apperrors.AppError) error {
	if !uuid.IsValid(id) {
		return notFound
	}
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// updateOwned applies updates to the record only if userID owns it.
func updateOwned(db *gorm.DB, model interface{}, userID, id string, updates map[string]interface{}, notFound *apperrors.AppError) error {
	if !uuid.IsValid(id) {
		return notFound
	}
	res := db.Model(model).Where("id = ? AND user_id = ?", id, userID).Updates(updates)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// deleteOwned soft-deletes the record only if userID owns it. Deleting an
// already deleted record reports notFound.
func deleteOwned(db *gorm.DB, model interface{}, userID, id string, notFound *apperrors.AppError) error {
	if !uuid.IsValid(id) {
		return notFound
	}
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// loadInPeriod returns the user's rows whose timestamp column falls within f,
// oldest first.
func loadInPeriod[T any](db *gorm.DB, userID, column string, f period.Filter, at func(*T) time.Time) ([]T, error) {
	q := db.Where("user_id = ?", userID)
	if start, end, ok := f.Bounds(); ok {
		q = q.Where(column+" >= ? AND "+column+" < ?", start.Add(-boundsSlack), end.Add(boundsSlack))
	}

	var rows []T
	if err := q.Order(column + " ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	matched := rows[:0]
	for i := range rows {
		if f.Matches(at(&rows[i])) {
			matched = append(matched, rows[i])
		}
	}
	return matched, nil
}
