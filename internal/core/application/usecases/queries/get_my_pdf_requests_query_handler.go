package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyPDFRequestsQueryHandler reads a user's price requests from the database.
type GetMyPDFRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyPDFRequestsQueryHandler creates a handler for request history queries.
func NewGetMyPDFRequestsQueryHandler(db *gorm.DB) GetMyPDFRequestsQueryHandler {
	return GetMyPDFRequestsQueryHandler{db: db}
}

// Handle executes the query, newest requests first.
func (h GetMyPDFRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetMyPDFRequestsQuery,
) ([]RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []requestRow
	err := h.db.WithContext(ctx).
		Table("pdf_requests").
		Where("user_id = ?", query.UserID()).
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
