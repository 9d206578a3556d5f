package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllPDFRequestsQueryHandler reads the full request list from the database.
type GetAllPDFRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPDFRequestsQueryHandler creates a handler for the admin request list.
func NewGetAllPDFRequestsQueryHandler(db *gorm.DB) GetAllPDFRequestsQueryHandler {
	return GetAllPDFRequestsQueryHandler{db: db}
}

// Handle executes the query, newest requests first.
func (h GetAllPDFRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetAllPDFRequestsQuery,
) ([]RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []requestRow
	err := h.db.WithContext(ctx).
		Table("pdf_requests").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	responses := make([]RequestResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, requestToResponse(row))
	}

	return responses, nil
}
