package message

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message ids of the phrase catalog.
const (
	idHeaderExpired  = "HeaderExpired"
	idHeaderRenewal  = "HeaderRenewal"
	idDayOne         = "DayOne"
	idDayMany        = "DayMany"
	idGreeting       = "Greeting"
	idBodyExpired    = "BodyExpired"
	idBodyUrgent     = "BodyUrgent"
	idBodyDue        = "BodyDue"
	idDetailsHeading = "DetailsHeading"
	idVehicleType    = "VehicleType"
	idVehicleNumber  = "VehicleNumber"
	idPolicyNumber   = "PolicyNumber"
	idStartDate      = "StartDate"
	idExpiryDate     = "ExpiryDate"
	idFineAdvisory   = "FineAdvisory"
	idClosingExpired = "ClosingExpired"
	idClosingDue     = "ClosingDue"
	idThanks         = "Thanks"
	idAlertTitle     = "AlertTitle"
	idAlertBody      = "AlertBody"
	idShareTitle     = "ShareTitle"
	idShareText      = "ShareText"
)

var english = []*i18n.Message{
	{ID: idHeaderExpired, Other: "🚨 *Insurance Policy Expired*"},
	{ID: idHeaderRenewal, Other: "{{.Glyph}} *Insurance Renewal - {{.Days}} {{.DayWord}} Left*"},
	{ID: idDayOne, Other: "Day"},
	{ID: idDayMany, Other: "Days"},
	{ID: idGreeting, Other: "Dear {{.Name}},"},
	{ID: idBodyExpired, Other: "Your *{{.Label}}* policy has expired."},
	{ID: idBodyUrgent, Other: "Your *{{.Label}}* policy expires in *{{.Days}} day(s)*."},
	{ID: idBodyDue, Other: "Your *{{.Label}}* policy expires in *{{.Days}} days*."},
	{ID: idDetailsHeading, Other: "📋 *Policy Details:*"},
	{ID: idVehicleType, Other: "• Vehicle Type: {{.Value}}"},
	{ID: idVehicleNumber, Other: "• Vehicle Number: {{.Value}}"},
	{ID: idPolicyNumber, Other: "• Policy Number: {{.Value}}"},
	{ID: idStartDate, Other: "• Start Date: {{.Value}}"},
	{ID: idExpiryDate, Other: "• Expiry Date: *{{.Value}}*"},
	{ID: idFineAdvisory, Other: "💰 *Avoid fines from ₹2000 - ₹10000*"},
	{ID: idClosingExpired, Other: "Please renew your policy as soon as possible."},
	{ID: idClosingDue, Other: "Please renew your policy on time."},
	{ID: idThanks, Other: "Thank you! 🙏"},
	{ID: idAlertTitle, Other: "Insurance Expiry Reminder"},
	{ID: idAlertBody, Other: "{{.Name}}'s insurance policy is expiring in {{.Days}} days ({{.Date}})."},
	{ID: idShareTitle, Other: "Insurance Reminder Data"},
	{ID: idShareText, Other: "Customer data exported from Insurance Reminder app."},
}

var hindi = []*i18n.Message{
	{ID: idHeaderExpired, Other: "🚨 *बीमा पॉलिसी समाप्त*"},
	{ID: idHeaderRenewal, Other: "{{.Glyph}} *बीमा नवीनीकरण - {{.Days}} {{.DayWord}} शेष*"},
	{ID: idDayOne, Other: "दिन"},
	{ID: idDayMany, Other: "दिनों"},
	{ID: idGreeting, Other: "नमस्ते {{.Name}} जी,"},
	{ID: idBodyExpired, Other: "आपकी *{{.Label}}* पॉलिसी समाप्त हो गई है।"},
	{ID: idBodyUrgent, Other: "आपकी *{{.Label}}* पॉलिसी *{{.Days}} {{.DayWord}}* में समाप्त हो रही है।"},
	{ID: idBodyDue, Other: "आपकी *{{.Label}}* पॉलिसी *{{.Days}} {{.DayWord}}* में समाप्त हो रही है।"},
	{ID: idDetailsHeading, Other: "📋 *पॉलिसी विवरण:*"},
	{ID: idVehicleType, Other: "• वाहन प्रकार: {{.Value}}"},
	{ID: idVehicleNumber, Other: "• वाहन नंबर: {{.Value}}"},
	{ID: idPolicyNumber, Other: "• पॉलिसी नंबर: {{.Value}}"},
	{ID: idStartDate, Other: "• शुरुआत तिथि: {{.Value}}"},
	{ID: idExpiryDate, Other: "• समाप्ति तिथि: *{{.Value}}*"},
	{ID: idFineAdvisory, Other: "💰 *2000₹ - 10000₹ तक के चालान से बचें*"},
	{ID: idClosingExpired, Other: "कृपया जल्द से जल्द अपनी पॉलिसी का नवीनीकरण करें।"},
	{ID: idClosingDue, Other: "कृपया समय पर अपनी पॉलिसी का नवीनीकरण करें।"},
	{ID: idThanks, Other: "धन्यवाद! 🙏"},
	{ID: idAlertTitle, Other: "बीमा समाप्ति अनुस्मारक"},
	{ID: idAlertBody, Other: "{{.Name}} की बीमा पॉलिसी {{.Days}} दिनों में ({{.Date}}) समाप्त हो रही है।"},
	{ID: idShareTitle, Other: "Insurance Reminder Data"},
	{ID: idShareText, Other: "Insurance Reminder ऐप से निर्यात किया गया ग्राहक डेटा।"},
}

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.MustAddMessages(language.English, english...)
	b.MustAddMessages(language.Hindi, hindi...)
	return b
}
