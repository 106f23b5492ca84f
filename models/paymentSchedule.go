package models

import "time"

// PaymentSchedule is the milestone layout attached to one sales order.
// Re-applying a template replaces the milestone set wholesale.
type PaymentSchedule struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	OrderID      uint   `json:"order_id" gorm:"index"`
	TemplateName string `json:"template_name"`

	Milestones []PaymentMilestone `json:"milestones" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
}

// PaymentMilestone is one schedule row. AmountValue is dollars for flat
// milestones and 0-100 for percentage ones, where the literal 0 means
// "whatever remains after the other milestones".
//
// ResolvedAmount is derived: it is recomputed against the order's
// current total on every read and never persisted as authoritative.
type PaymentMilestone struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	ScheduleID uint   `json:"-" gorm:"index"`
	Name       string `json:"name" gorm:"not null"`

	AmountType  string  `json:"amount_type" gorm:"not null"` // flat | percentage
	AmountValue float64 `json:"amount_value" gorm:"type:numeric(12,2)"`

	ResolvedAmount float64 `json:"resolved_amount" gorm:"-"`

	DueTrigger string     `json:"due_trigger" gorm:"not null"`
	Status     string     `json:"status" gorm:"not null;default:'pending'"`
	PaidAt     *time.Time `json:"paid_at"`
	SortOrder  int        `json:"sort_order"`
}
