package database

import (
	"fmt"

	"wrapshop-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns)
// - Money column types (NUMERIC(12,2))
// - Indexes (milestones, line items)
// - Basic CHECK constraints
// - Idempotency keys table + unique index
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Prospect{},
			&models.SalesOrder{},
			&models.LineItem{},
			&models.PaymentSchedule{},
			&models.PaymentMilestone{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE sales_orders       ALTER COLUMN subtotal     TYPE numeric(12,2)`,
			`ALTER TABLE sales_orders       ALTER COLUMN discount     TYPE numeric(12,2)`,
			`ALTER TABLE sales_orders       ALTER COLUMN total        TYPE numeric(12,2)`,
			`ALTER TABLE line_items         ALTER COLUMN unit_price   TYPE numeric(12,2)`,
			`ALTER TABLE line_items         ALTER COLUMN net_price    TYPE numeric(12,2)`,
			`ALTER TABLE line_items         ALTER COLUMN cogs         TYPE numeric(12,2)`,
			`ALTER TABLE payment_milestones ALTER COLUMN amount_value TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_line_items_order ON line_items (order_id)`,
			`CREATE INDEX IF NOT EXISTS idx_payment_schedules_order ON payment_schedules (order_id)`,
			`CREATE INDEX IF NOT EXISTS idx_payment_milestones_schedule_sort ON payment_milestones (schedule_id, sort_order)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Line item quantity >= 0
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'line_items'::regclass
					  AND conname  = 'chk_line_items_quantity_nonneg'
				) THEN
					ALTER TABLE line_items
					ADD CONSTRAINT chk_line_items_quantity_nonneg
					CHECK (quantity >= 0);
				END IF;
			END $$;`,
			// Milestone value >= 0 (the remainder sentinel is exactly 0)
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'payment_milestones'::regclass
					  AND conname  = 'chk_payment_milestones_value_nonneg'
				) THEN
					ALTER TABLE payment_milestones
					ADD CONSTRAINT chk_payment_milestones_value_nonneg
					CHECK (amount_value >= 0);
				END IF;
			END $$;`,
			// Percentage milestones stay within 0..100
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'payment_milestones'::regclass
					  AND conname  = 'chk_payment_milestones_pct_range'
				) THEN
					ALTER TABLE payment_milestones
					ADD CONSTRAINT chk_payment_milestones_pct_range
					CHECK (amount_type <> 'percentage' OR amount_value <= 100);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
