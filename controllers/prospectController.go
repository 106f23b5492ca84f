package controllers

import (
	"wrapshop-backend/database"
	"wrapshop-backend/middlewares"
	"wrapshop-backend/models"
	"wrapshop-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProspectCreateDTO struct {
	CompanyName string `json:"company_name"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`

	LeadSource string `json:"lead_source" validate:"omitempty,oneof=inbound outbound presold referral walk-in"`
	Stage      string `json:"stage" validate:"omitempty,oneof=new contacted quoted won lost"`

	VehicleYear  string `json:"vehicle_year"`
	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
	Notes        string `json:"notes"`
}

// ProspectUpdateDTO uses pointer fields so PATCH-style updates only
// touch what the client sent.
type ProspectUpdateDTO struct {
	CompanyName *string `json:"company_name"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zip         *string `json:"zip"`

	LeadSource *string `json:"lead_source" validate:"omitempty,oneof=inbound outbound presold referral walk-in"`
	Stage      *string `json:"stage" validate:"omitempty,oneof=new contacted quoted won lost"`

	VehicleYear  *string `json:"vehicle_year"`
	VehicleMake  *string `json:"vehicle_make"`
	VehicleModel *string `json:"vehicle_model"`
	Notes        *string `json:"notes"`
}

func CreateProspect(c *fiber.Ctx) error {
	var dto ProspectCreateDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}
	utils.NormalizeDTO(&dto)

	if dto.LeadSource == "" {
		dto.LeadSource = "inbound"
	}
	if dto.Stage == "" {
		dto.Stage = "new"
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	prospect := models.Prospect{
		CompanyName:  dto.CompanyName,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		PhoneNumber:  dto.PhoneNumber,
		Address:      dto.Address,
		City:         dto.City,
		State:        dto.State,
		Zip:          dto.Zip,
		LeadSource:   dto.LeadSource,
		Stage:        dto.Stage,
		VehicleYear:  dto.VehicleYear,
		VehicleMake:  dto.VehicleMake,
		VehicleModel: dto.VehicleModel,
		Notes:        dto.Notes,
		Active:       true,
	}
	if err := db.Create(&prospect).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create prospect",
			"error":   err.Error(),
		})
	}
	return c.JSON(prospect)
}

func GetProspects(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	q := db.Model(&models.Prospect{})
	if stage := c.Query("stage"); stage != "" {
		q = q.Where("stage = ?", stage)
	}
	if source := c.Query("lead_source"); source != "" {
		q = q.Where("lead_source = ?", source)
	}

	var prospects []models.Prospect
	q.Find(&prospects)
	return c.JSON(fiber.Map{
		"prospects": prospects,
		"message":   "success",
	})
}

func GetProspect(c *fiber.Ctx) error {
	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var prospect models.Prospect
	if err := db.First(&prospect, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "prospect not found")
		}
		return err
	}
	return c.JSON(prospect)
}

func UpdateProspect(c *fiber.Ctx) error {
	var dto ProspectUpdateDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&dto)

	updates := utils.UpdatesFromPtrDTO(&dto, nil)
	if len(updates) == 0 {
		return c.JSON(fiber.Map{"message": "nothing to update"})
	}

	db, err := database.GetDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Model(&models.Prospect{}).Where("id = ?", c.Params("id")).Updates(updates)
	if res.Error != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update prospect",
			"error":   res.Error.Error(),
		})
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "prospect not found")
	}

	var prospect models.Prospect
	db.First(&prospect, "id = ?", c.Params("id"))
	return c.JSON(prospect)
}
