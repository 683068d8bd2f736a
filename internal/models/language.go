package models

import "fmt"

// Language is one of the two supported message locales.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// ParseLanguage validates a locale code.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguageHindi:
		return Language(s), nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

type label struct {
	en string
	hi string
}

func (l label) in(lang Language) string {
	if lang == LanguageHindi {
		return l.hi
	}
	return l.en
}

var insuranceLabels = map[InsuranceCategory]label{
	CategoryHealth:   {en: "Health Insurance", hi: "स्वास्थ्य बीमा"},
	CategoryLife:     {en: "Life Insurance", hi: "जीवन बीमा"},
	CategoryHome:     {en: "Home Insurance", hi: "गृह बीमा"},
	CategoryTravel:   {en: "Travel Insurance", hi: "यात्रा बीमा"},
	CategoryBusiness: {en: "Business Insurance", hi: "व्यापार बीमा"},
	CategoryMotor:    {en: "Motor Insurance", hi: "वाहन बीमा"},
	CategoryMachine:  {en: "Machine Insurance", hi: "मशीन बीमा"},
	CategoryProperty: {en: "Property Insurance", hi: "संपत्ति बीमा"},
}

var vehicleLabels = map[VehicleCategory]label{
	VehicleCar:     {en: "Car", hi: "कार"},
	VehicleBike:    {en: "Bike", hi: "बाइक"},
	VehicleScooter: {en: "Scooter", hi: "स्कूटर"},
	VehicleTruck:   {en: "Truck", hi: "ट्रक"},
	VehicleBus:     {en: "Bus", hi: "बस"},
}

// Label returns the localized name of the category, or the raw value when
// the category is unknown (records imported from files are not validated).
func (c InsuranceCategory) Label(lang Language) string {
	l, ok := insuranceLabels[c]
	if !ok {
		return string(c)
	}
	return l.in(lang)
}

// Label returns the localized vehicle type; empty for an unset category.
func (v VehicleCategory) Label(lang Language) string {
	l, ok := vehicleLabels[v]
	if !ok {
		return ""
	}
	return l.in(lang)
}
