package models

import (
	"time"

	"gorm.io/datatypes"
)

// SalesOrder is the current/live state of a sold job.
type SalesOrder struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	OrderNumber string   `json:"order_number" gorm:"unique"`
	ProspectID  uint     `json:"-"`
	Prospect    Prospect `json:"prospect" gorm:"foreignKey:ProspectID;references:Id"`

	Items []LineItem `json:"line_items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Subtotal float64 `json:"subtotal" gorm:"type:numeric(12,2)"`
	Discount float64 `json:"discount" gorm:"type:numeric(12,2)"`
	Total    float64 `json:"total" gorm:"type:numeric(12,2)"`

	// State
	Draft      bool       `json:"draft"`
	Approved   bool       `json:"approved"`
	ApprovedAt *time.Time `json:"approved_at"`

	CreatedAt time.Time `json:"created_at"`
}

// LineItem is one priced job on an order. Specs is the open per-product
// bag of raw and derived estimate fields; its schema is intentionally
// not closed, and unknown keys round-trip untouched.
type LineItem struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"-" gorm:"index"`
	Name      string         `json:"name" gorm:"not null"`
	UnitPrice float64        `json:"unit_price" gorm:"type:numeric(12,2)"`
	Quantity  int            `json:"quantity"`
	NetPrice  float64        `json:"net_price" gorm:"type:numeric(12,2)"`
	COGS      float64        `json:"cogs" gorm:"type:numeric(12,2)"`
	Specs     datatypes.JSON `json:"specs" gorm:"type:jsonb"`
}
