package controllers

import (
	"encoding/json"
	"fmt"

	"wrapshop-backend/costing"
	"wrapshop-backend/database"
	"wrapshop-backend/middlewares"
	"wrapshop-backend/models"
	"wrapshop-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LineItemDTO carries one priced job. Specs is passed through opaque:
// the engine tolerates unknown keys and never requires a closed schema.
type LineItemDTO struct {
	Name      string          `json:"name" validate:"required"`
	UnitPrice float64         `json:"unit_price" validate:"min=0"`
	Quantity  int             `json:"quantity" validate:"min=0"`
	COGS      float64         `json:"cogs" validate:"min=0"`
	Specs     json.RawMessage `json:"specs"`
}

type OrderCreateDTO struct {
	OrderNumber string        `json:"order_number" validate:"required"`
	ProspectID  uint          `json:"prospect_id" validate:"required"`
	Discount    float64       `json:"discount" validate:"min=0"`
	Draft       bool          `json:"draft"`
	Items       []LineItemDTO `json:"line_items" validate:"required,min=1,dive"`

	// MarginOverride acknowledges a below-floor margin warning.
	MarginOverride bool `json:"margin_override"`
}

func buildLineItems(dtos []LineItemDTO) (items []models.LineItem, subtotal, totalCOGS float64) {
	for _, d := range dtos {
		qty := d.Quantity
		if qty < 0 {
			qty = 0
		}
		net := utils.Round2(utils.Clamp0(d.UnitPrice) * float64(qty))
		specs := d.Specs
		if len(specs) == 0 {
			specs = json.RawMessage(`{}`)
		}
		items = append(items, models.LineItem{
			Name:      d.Name,
			UnitPrice: utils.Clamp0(d.UnitPrice),
			Quantity:  qty,
			NetPrice:  net,
			COGS:      utils.Clamp0(d.COGS),
			Specs:     datatypes.JSON(specs),
		})
		subtotal += net
		totalCOGS += d.COGS
	}
	return items, utils.Round2(subtotal), utils.Round2(totalCOGS)
}

// marginFloorWarning checks the order-level margin against the floor.
// Below-floor is reportable, not blocking: the override flag is the
// explicit acknowledgement that lets the order through.
func marginFloorWarning(total, totalCOGS float64) (string, bool) {
	m := costing.Margin(total, totalCOGS)
	if total > 0 && m.GPMPercent < Cat.MarginFloor {
		return fmt.Sprintf("order margin %.1f%% is below the %.0f%% floor", m.GPMPercent, Cat.MarginFloor), true
	}
	return "", false
}

func CreateOrder(c *fiber.Ctx) error {
	var dto OrderCreateDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}

	items, subtotal, totalCOGS := buildLineItems(dto.Items)
	total := utils.Round2(utils.Clamp0(subtotal - utils.Clamp0(dto.Discount)))

	if warning, below := marginFloorWarning(total, totalCOGS); below && !dto.MarginOverride {
		c.Status(fiber.StatusConflict)
		return c.JSON(fiber.Map{
			"message": "margin below floor; set margin_override to proceed",
			"warning": warning,
		})
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	order := models.SalesOrder{
		OrderNumber: dto.OrderNumber,
		ProspectID:  dto.ProspectID,
		Items:       items,
		Subtotal:    subtotal,
		Discount:    utils.Clamp0(dto.Discount),
		Total:       total,
		Draft:       dto.Draft,
	}
	if err := db.Create(&order).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

func GetOrders(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var orders []models.SalesOrder
	db.Preload("Items").Preload("Prospect").Order("created_at DESC").Find(&orders)
	return c.JSON(fiber.Map{
		"orders":  orders,
		"message": "success",
	})
}

func GetOrder(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var order models.SalesOrder
	if err := db.Preload("Items").Preload("Prospect").First(&order, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}
	return c.JSON(order)
}

// UpdateOrder replaces the line-item set wholesale and recomputes the
// rollup; totals are never patched in place.
func UpdateOrder(c *fiber.Ctx) error {
	var dto OrderCreateDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
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

	items, subtotal, totalCOGS := buildLineItems(dto.Items)
	total := utils.Round2(utils.Clamp0(subtotal - utils.Clamp0(dto.Discount)))

	if warning, below := marginFloorWarning(total, totalCOGS); below && !dto.MarginOverride {
		c.Status(fiber.StatusConflict)
		return c.JSON(fiber.Map{
			"message": "margin below floor; set margin_override to proceed",
			"warning": warning,
		})
	}

	if err := db.Where("order_id = ?", order.ID).Delete(&models.LineItem{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not replace line items")
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not replace line items")
		}
	}

	order.OrderNumber = dto.OrderNumber
	order.ProspectID = dto.ProspectID
	order.Subtotal = subtotal
	order.Discount = utils.Clamp0(dto.Discount)
	order.Total = total
	order.Draft = dto.Draft
	order.Items = items
	if err := db.Model(&order).Updates(map[string]any{
		"order_number": order.OrderNumber,
		"prospect_id":  order.ProspectID,
		"subtotal":     order.Subtotal,
		"discount":     order.Discount,
		"total":        order.Total,
		"draft":        order.Draft,
	}).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

func ApproveOrder(c *fiber.Ctx) error {
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
	if order.Approved {
		return c.JSON(order)
	}

	now := nowUTC()
	if err := db.Model(&order).Updates(map[string]any{
		"approved":    true,
		"approved_at": &now,
		"draft":       false,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not approve order")
	}
	order.Approved = true
	order.ApprovedAt = &now
	order.Draft = false
	return c.JSON(order)
}

// GetOrderRollup aggregates across line items: a plain associative sum,
// one line item never reads another's state.
func GetOrderRollup(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var order models.SalesOrder
	if err := db.Preload("Items").First(&order, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	var totalCOGS float64
	for _, it := range order.Items {
		totalCOGS += it.COGS
	}
	totalCOGS = utils.Round2(totalCOGS)
	m := costing.Margin(order.Total, totalCOGS)

	return c.JSON(fiber.Map{
		"order_id":     order.ID,
		"subtotal":     order.Subtotal,
		"discount":     order.Discount,
		"total":        order.Total,
		"total_cogs":   totalCOGS,
		"gross_profit": utils.Round2(m.GrossProfit),
		"gpm_percent":  utils.Round2(m.GPMPercent),
	})
}
