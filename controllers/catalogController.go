package controllers

import (
	"sort"

	"wrapshop-backend/catalog"
	"wrapshop-backend/schedule"

	"github.com/gofiber/fiber/v2"
)

// Read-only catalog endpoints for the form layer's dropdowns. The
// catalog is static per session; there is no write surface.

func GetMaterials(c *fiber.Ctx) error {
	materials := make([]catalog.Material, 0, len(Cat.Materials))
	for _, m := range Cat.Materials {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].ID < materials[j].ID })
	return c.JSON(fiber.Map{"materials": materials})
}

func GetScheduleTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": schedule.Templates()})
}

func GetInstallTiers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tiers": Cat.InstallTiers})
}

func GetPPFPackages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"packages": Cat.PPFPackages})
}

func GetDeckZones(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"zones": Cat.DeckZones})
}

func GetLeadSources(c *fiber.Ctx) error {
	sources := make([]string, 0, len(Cat.Commission))
	for s := range Cat.Commission {
		sources = append(sources, string(s))
	}
	sort.Strings(sources)
	return c.JSON(fiber.Map{"lead_sources": sources})
}
