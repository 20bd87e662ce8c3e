package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Report is a persisted monthly profit/loss snapshot, one row per month.
// Regenerating a month overwrites the stored values. Reports are hard
// deleted, so a regenerated month never collides with a tombstone row.
type Report struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	Month         string          `gorm:"type:varchar(7);uniqueIndex;not null" json:"month"` // "YYYY-MM"
	TotalRevenue  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_revenue"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_expenses"`
	Profit        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"profit"`
	GeneratedAt   time.Time       `gorm:"not null" json:"generated_at"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

