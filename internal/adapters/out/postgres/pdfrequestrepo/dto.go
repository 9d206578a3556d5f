// Package pdfrequestrepo provides data transfer objects and mapping functions
// for custom-PDF price request persistence.
package pdfrequestrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/pdfrequest"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting request
// aggregates.
type RequestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"uniqueIndex;size:8"`
	UserID    string    `gorm:"index;size:64"`
	Title     string
	PDFURL    string
	Qty       int
	Sides     string `gorm:"size:10"`
	Price     *float64
	Status    string    `gorm:"index;size:16"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "pdf_requests"
}

// fromDomain converts a request domain aggregate to its database representation.
func fromDomain(aggregate *pdfrequest.Request) RequestDTO {
	return RequestDTO{
		ID:        aggregate.ID().Bytes(),
		Code:      aggregate.Code(),
		UserID:    aggregate.UserID(),
		Title:     aggregate.Title(),
		PDFURL:    aggregate.PDFURL(),
		Qty:       aggregate.Qty(),
		Sides:     aggregate.Sides().String(),
		Price:     aggregate.Price(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a request domain aggregate.
func toDomain(dto RequestDTO) (*pdfrequest.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sides, err := order.SideTypeFromString(dto.Sides)
	if err != nil {
		return nil, err
	}

	status, err := pdfrequest.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return pdfrequest.RestoreRequest(
		id, dto.Code, dto.UserID, dto.Title, dto.PDFURL,
		dto.Qty, sides, dto.Price, status, dto.CreatedAt)
}
