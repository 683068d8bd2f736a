// Package models defines the customer and account records kept in the local
// store, their enumerations and the localized labels used in messages.
package models

import "strings"

// InsuranceCategory classifies a policy.
type InsuranceCategory string

const (
	CategoryHealth   InsuranceCategory = "health"
	CategoryLife     InsuranceCategory = "life"
	CategoryHome     InsuranceCategory = "home"
	CategoryTravel   InsuranceCategory = "travel"
	CategoryBusiness InsuranceCategory = "business"
	CategoryMotor    InsuranceCategory = "motor"
	CategoryMachine  InsuranceCategory = "machine"
	CategoryProperty InsuranceCategory = "property"
)

// InsuranceCategories lists every category in display order.
var InsuranceCategories = []InsuranceCategory{
	CategoryHealth, CategoryLife, CategoryHome, CategoryTravel,
	CategoryBusiness, CategoryMotor, CategoryMachine, CategoryProperty,
}

// VehicleCategory classifies the insured vehicle of a motor policy.
type VehicleCategory string

const (
	VehicleCar     VehicleCategory = "car"
	VehicleBike    VehicleCategory = "bike"
	VehicleScooter VehicleCategory = "scooter"
	VehicleTruck   VehicleCategory = "truck"
	VehicleBus     VehicleCategory = "bus"
)

// VehicleCategories lists every vehicle category in display order.
var VehicleCategories = []VehicleCategory{
	VehicleCar, VehicleBike, VehicleScooter, VehicleTruck, VehicleBus,
}

// Valid reports whether c is one of the known categories.
func (c InsuranceCategory) Valid() bool {
	for _, v := range InsuranceCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Valid reports whether v is one of the known vehicle categories.
func (v VehicleCategory) Valid() bool {
	for _, x := range VehicleCategories {
		if x == v {
			return true
		}
	}
	return false
}

// Customer is a single policy holder record. JSON keys match the persisted
// state of the browser dashboard so its backups stay readable.
type Customer struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	MobileNumber      string            `json:"mobileNumber"`
	WhatsAppNumber    string            `json:"whatsappNumber"`
	Address           string            `json:"address"`
	InsuranceCategory InsuranceCategory `json:"insuranceType"`
	PolicyNumber      string            `json:"policyNumber,omitempty"`
	VehicleCategory   VehicleCategory   `json:"motorType,omitempty"`
	VehicleNumber     string            `json:"vehicleNumber,omitempty"`
	StartDate         string            `json:"startDate"`
	ExpiryDate        string            `json:"expiryDate"`
	CreatedAt         string            `json:"createdAt"`
}

// IsMotor reports whether the record identifies a vehicle instead of a policy number.
func (c Customer) IsMotor() bool {
	return c.InsuranceCategory == CategoryMotor
}

// CustomerInput carries the user-editable fields of a Customer. Id and
// creation time are owned by the store.
type CustomerInput struct {
	Name              string            `validate:"required"`
	MobileNumber      string            `validate:"required,len=10,numeric"`
	WhatsAppNumber    string            `validate:"required,len=10,numeric"`
	Address           string
	InsuranceCategory InsuranceCategory `validate:"required,oneof=health life home travel business motor machine property"`
	PolicyNumber      string            `validate:"required_unless=InsuranceCategory motor"`
	VehicleCategory   VehicleCategory   `validate:"required_if=InsuranceCategory motor"`
	VehicleNumber     string            `validate:"required_if=InsuranceCategory motor"`
	StartDate         string            `validate:"required,datetime=2006-01-02"`
	ExpiryDate        string            `validate:"required,datetime=2006-01-02"`
}

// Normalize applies the storage rules: phone numbers reduced to their last
// 10 digits, vehicle number upper-cased, and only the identifier block that
// matches the category kept. Phone errors are returned as ErrInvalidPhone.
func (in CustomerInput) Normalize() (CustomerInput, error) {
	var err error
	out := in
	out.Name = strings.TrimSpace(in.Name)
	out.Address = strings.TrimSpace(in.Address)

	if out.MobileNumber, err = NormalizePhone(in.MobileNumber); err != nil {
		return in, err
	}
	if out.WhatsAppNumber, err = NormalizePhone(in.WhatsAppNumber); err != nil {
		return in, err
	}

	if out.InsuranceCategory == CategoryMotor {
		out.PolicyNumber = ""
		out.VehicleNumber = strings.ToUpper(strings.TrimSpace(in.VehicleNumber))
	} else {
		out.PolicyNumber = strings.TrimSpace(in.PolicyNumber)
		out.VehicleCategory = ""
		out.VehicleNumber = ""
	}
	return out, nil
}

// Apply copies the input fields onto c, leaving ID and CreatedAt untouched.
func (in CustomerInput) Apply(c *Customer) {
	c.Name = in.Name
	c.MobileNumber = in.MobileNumber
	c.WhatsAppNumber = in.WhatsAppNumber
	c.Address = in.Address
	c.InsuranceCategory = in.InsuranceCategory
	c.PolicyNumber = in.PolicyNumber
	c.VehicleCategory = in.VehicleCategory
	c.VehicleNumber = in.VehicleNumber
	c.StartDate = in.StartDate
	c.ExpiryDate = in.ExpiryDate
}

// InputFrom extracts the editable fields of c, used to pre-fill edits.
func InputFrom(c Customer) CustomerInput {
	return CustomerInput{
		Name:              c.Name,
		MobileNumber:      c.MobileNumber,
		WhatsAppNumber:    c.WhatsAppNumber,
		Address:           c.Address,
		InsuranceCategory: c.InsuranceCategory,
		PolicyNumber:      c.PolicyNumber,
		VehicleCategory:   c.VehicleCategory,
		VehicleNumber:     c.VehicleNumber,
		StartDate:         c.StartDate,
		ExpiryDate:        c.ExpiryDate,
	}
}
