package models

// Prospect is a tracked lead in the sales pipeline. LeadSource keys the
// commission tier table; Stage drives the pipeline board.
type Prospect struct {
	Id          uint   `json:"id" gorm:"primaryKey"`
	CompanyName string `json:"company_name"`
	FirstName   string `json:"first_name" gorm:"not null"`
	LastName    string `json:"last_name" gorm:"not null"`
	Email       string `json:"email" gorm:"unique;not null"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`

	LeadSource string `json:"lead_source" gorm:"not null;default:'inbound'"`
	Stage      string `json:"stage" gorm:"not null;default:'new'"` // new, contacted, quoted, won, lost

	VehicleYear  string `json:"vehicle_year"`
	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`

	Notes  string `json:"notes"`
	Active bool   `json:"-"`
}
