package pdfrequestrepo

import (
	"context"
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPDFRequestRepository implements PDFRequestRepository using GORM.
type GormPDFRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPDFRequestRepository creates a new GORM request repository.
func NewGormPDFRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormPDFRequestRepository {
	return &GormPDFRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request to the database.
func (r *GormPDFRequestRepository) Add(ctx context.Context, aggregate *pdfrequest.Request) error {
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

// Update saves an existing request to the database.
func (r *GormPDFRequestRepository) Update(ctx context.Context, aggregate *pdfrequest.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID.
func (r *GormPDFRequestRepository) Get(ctx context.Context, id kernel.UUID) (*pdfrequest.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a request by its human-facing code.
func (r *GormPDFRequestRepository) GetByCode(ctx context.Context, code string) (*pdfrequest.Request, error) {
	if err := pdfrequest.ValidateCode(code); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestId", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByCode reports whether any request carries the given code.
func (r *GormPDFRequestRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAllByUser retrieves all requests created by the given identity, newest first.
func (r *GormPDFRequestRepository) GetAllByUser(ctx context.Context, userID string) ([]*pdfrequest.Request, error) {
	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return dtosToDomain(dtos)
}

// GetAll retrieves all requests, newest first.
func (r *GormPDFRequestRepository) GetAll(ctx context.Context) ([]*pdfrequest.Request, error) {
	var dtos []RequestDTO
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return dtosToDomain(dtos)
}

// Delete removes a request by its human-facing code.
func (r *GormPDFRequestRepository) Delete(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Delete(&RequestDTO{}, "code = ?", code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("requestId", code)
	}
	return nil
}

// DeleteClosedOlderThan removes cancelled and added_to_cart requests created
// more than maxAgeDays ago.
func (r *GormPDFRequestRepository) DeleteClosedOlderThan(ctx context.Context, maxAgeDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -maxAgeDays)
	closed := []string{pdfrequest.StatusCancelled.String(), pdfrequest.StatusAddedToCart.String()}

	result := r.db.WithContext(ctx).
		Where("status IN ?", closed).
		Where("created_at < ?", cutoff).
		Delete(&RequestDTO{})
	return result.RowsAffected, result.Error
}

func dtosToDomain(dtos []RequestDTO) ([]*pdfrequest.Request, error) {
	requests := make([]*pdfrequest.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}
