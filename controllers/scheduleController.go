package controllers

import (
	"time"

	"wrapshop-backend/database"
	"wrapshop-backend/middlewares"
	"wrapshop-backend/models"
	"wrapshop-backend/schedule"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func nowUTC() time.Time { return time.Now().UTC() }

// resolveMilestones recomputes every resolved amount against the
// order's current total. Stored amounts are definitions, never results:
// a total change re-prices percentage and remainder milestones on the
// next read without manual intervention.
func resolveMilestones(total float64, ms []models.PaymentMilestone) (discrepancy float64, flagged bool) {
	defs := make([]schedule.Definition, len(ms))
	for i, m := range ms {
		defs[i] = schedule.Definition{
			Type:  schedule.AmountType(m.AmountType),
			Value: decimal.NewFromFloat(m.AmountValue),
		}
	}
	tot := decimal.NewFromFloat(total)
	resolved := schedule.Resolve(tot, defs)
	for i := range ms {
		ms[i].ResolvedAmount = resolved[i].InexactFloat64()
	}
	diff, flagged := schedule.Reconcile(tot, resolved)
	return diff.InexactFloat64(), flagged
}

type ApplyScheduleDTO struct {
	TemplateName string `json:"template_name" validate:"required"`
}

// ApplySchedule instantiates a template on an order. Re-selection
// replaces the existing milestone set wholesale; nothing is merged.
func ApplySchedule(c *fiber.Ctx) error {
	var dto ApplyScheduleDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}

	tmpl, ok := schedule.TemplateByName(dto.TemplateName)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown schedule template")
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var order models.SalesOrder
	if err := db.First(&order, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	// Drop any existing schedule (milestones cascade).
	var existing []models.PaymentSchedule
	db.Where("order_id = ?", order.ID).Find(&existing)
	for _, s := range existing {
		db.Where("schedule_id = ?", s.ID).Delete(&models.PaymentMilestone{})
	}
	if err := db.Where("order_id = ?", order.ID).Delete(&models.PaymentSchedule{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not replace schedule")
	}

	sched := models.PaymentSchedule{
		OrderID:      order.ID,
		TemplateName: tmpl.Name,
	}
	for i, m := range tmpl.Milestones {
		sched.Milestones = append(sched.Milestones, models.PaymentMilestone{
			Name:        m.Name,
			AmountType:  string(m.Type),
			AmountValue: m.Value.InexactFloat64(),
			DueTrigger:  string(m.Due),
			Status:      string(schedule.StatusPending),
			SortOrder:   i,
		})
	}
	if err := db.Create(&sched).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create schedule")
	}

	discrepancy, flagged := resolveMilestones(order.Total, sched.Milestones)
	return c.JSON(fiber.Map{
		"schedule":    sched,
		"discrepancy": discrepancy,
		"flagged":     flagged,
	})
}

func GetSchedule(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var order models.SalesOrder
	if err := db.First(&order, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	var sched models.PaymentSchedule
	if err := db.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&sched, "order_id = ?", order.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "no schedule for order")
		}
		return err
	}

	discrepancy, flagged := resolveMilestones(order.Total, sched.Milestones)
	return c.JSON(fiber.Map{
		"schedule":    sched,
		"discrepancy": discrepancy,
		"flagged":     flagged,
	})
}

// transitionMilestone advances one milestone's status. Forward-only:
// the lifecycle never regresses, and marking one milestone paid never
// touches its siblings.
func transitionMilestone(c *fiber.Ctx, to schedule.Status) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var m models.PaymentMilestone
	if err := db.First(&m, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "milestone not found")
		}
		return err
	}

	if !schedule.CanTransition(schedule.Status(m.Status), to) {
		return fiber.NewError(fiber.StatusConflict,
			"cannot move milestone from "+m.Status+" to "+string(to))
	}

	updates := map[string]any{"status": string(to)}
	if to == schedule.StatusPaid {
		now := nowUTC()
		updates["paid_at"] = &now
		m.PaidAt = &now
	}
	if err := db.Model(&m).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update milestone")
	}
	m.Status = string(to)
	return c.JSON(m)
}

func InvoiceMilestone(c *fiber.Ctx) error {
	return transitionMilestone(c, schedule.StatusInvoiced)
}

// PayMilestone stamps the paid timestamp; there is no unpay.
func PayMilestone(c *fiber.Ctx) error {
	return transitionMilestone(c, schedule.StatusPaid)
}

// OverdueMilestone is the hook for the external time-based process;
// the engine exposes the state but does not compute the transition.
func OverdueMilestone(c *fiber.Ctx) error {
	return transitionMilestone(c, schedule.StatusOverdue)
}
