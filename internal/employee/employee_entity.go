package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is a brand-scoped payee. MonthlySalary feeds salary payment
// creation; AutoPayment marks employees whose payments are raised by the
// scheduler rather than by hand.
type Employee struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BrandID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_employees_brand"`
	FullName      string          `gorm:"type:varchar(150);not null"`
	Position      string          `gorm:"type:varchar(100)"`
	MonthlySalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       *time.Time      `gorm:"type:date"`
	Active        bool            `gorm:"not null;default:true"`
	AutoPayment   bool            `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
