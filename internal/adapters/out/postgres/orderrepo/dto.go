// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"appraise/internal/core/domain/model/kernel"
	"appraise/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by client and appraiser assignment.
type OrderDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ClientID    int64 `gorm:"index"`
	AppraiserID *int64 `gorm:"index"`
	CarAdURL    string
	CarLocation string
	CarPrice    decimal.Decimal `gorm:"type:numeric"`
	DateCreated time.Time
	Status      int `gorm:"index"`
	ReportID    *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional appraiser assignment and report reference.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID(),
		ClientID:    aggregate.ClientID(),
		AppraiserID: aggregate.AppraiserID(),
		CarAdURL:    aggregate.CarAdURL(),
		CarLocation: aggregate.CarLocation(),
		CarPrice:    aggregate.CarPrice().Amount(),
		DateCreated: aggregate.DateCreated(),
		Status:      int(aggregate.Status()),
		ReportID:    aggregate.ReportID(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and appraiser assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	price, err := kernel.NewPrice(dto.CarPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.ClientID,
		dto.AppraiserID,
		dto.CarAdURL,
		dto.CarLocation,
		price,
		dto.DateCreated,
		order.Status(dto.Status),
		dto.ReportID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
