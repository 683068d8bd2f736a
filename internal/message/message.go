// Package message renders the renewal reminders sent to customers over
// WhatsApp, the alert texts raised by the scheduler, and the deep links used
// to open a chat or dial a number.
//
// Texts come from a go-i18n catalog (catalog.go) with one English and one
// Hindi entry per phrase. Output is byte-stable: records saved by earlier
// versions produce the same messages.
package message

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Tier is the urgency class of a reminder.
type Tier int

const (
	TierExpired Tier = iota
	TierUrgent
	TierSoon
	TierRoutine
)

// TierFor maps a day offset to its tier. The first matching bound wins:
// <=0 expired, <=2 urgent, <=7 soon, anything later routine.
func TierFor(offset int) Tier {
	switch {
	case offset <= 0:
		return TierExpired
	case offset <= 2:
		return TierUrgent
	case offset <= 7:
		return TierSoon
	default:
		return TierRoutine
	}
}

// Glyph is the emoji prefixed to the message header.
func (t Tier) Glyph() string {
	switch t {
	case TierExpired:
		return "🚨"
	case TierUrgent:
		return "⚠️"
	case TierSoon:
		return "🔔"
	default:
		return "📋"
	}
}

func (t Tier) String() string {
	switch t {
	case TierExpired:
		return "expired"
	case TierUrgent:
		return "urgent"
	case TierSoon:
		return "soon"
	default:
		return "routine"
	}
}

// Formatter renders localized texts. It is safe for concurrent use once built.
type Formatter struct {
	localizers map[models.Language]*i18n.Localizer
}

// NewFormatter loads the phrase catalog.
func NewFormatter() *Formatter {
	b := newBundle()
	return &Formatter{
		localizers: map[models.Language]*i18n.Localizer{
			models.LanguageEnglish: i18n.NewLocalizer(b, string(models.LanguageEnglish)),
			models.LanguageHindi:   i18n.NewLocalizer(b, string(models.LanguageHindi)),
		},
	}
}

type vars map[string]any

func (f *Formatter) text(lang models.Language, id string, data vars) string {
	l, ok := f.localizers[lang]
	if !ok {
		l = f.localizers[models.LanguageEnglish]
	}
	s, err := l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return s
}

func (f *Formatter) dayWord(lang models.Language, n int) string {
	if n == 1 {
		return f.text(lang, idDayOne, nil)
	}
	return f.text(lang, idDayMany, nil)
}

// Format builds the reminder for c, which expires offset days from today.
// Dates that do not parse are shown as stored.
func (f *Formatter) Format(c models.Customer, offset int, lang models.Language) string {
	tier := TierFor(offset)
	label := c.InsuranceCategory.Label(lang)

	var sb strings.Builder
	para := func(s string) {
		sb.WriteString(s)
		sb.WriteString("\n\n")
	}
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	if tier == TierExpired {
		para(f.text(lang, idHeaderExpired, nil))
	} else {
		para(f.text(lang, idHeaderRenewal, vars{
			"Glyph":   tier.Glyph(),
			"Days":    offset,
			"DayWord": f.dayWord(lang, offset),
		}))
	}
	para(f.text(lang, idGreeting, vars{"Name": c.Name}))

	body := vars{"Label": label, "Days": offset, "DayWord": f.dayWord(lang, offset)}
	switch tier {
	case TierExpired:
		para(f.text(lang, idBodyExpired, body))
	case TierUrgent:
		para(f.text(lang, idBodyUrgent, body))
	default:
		para(f.text(lang, idBodyDue, body))
	}

	line(f.text(lang, idDetailsHeading, nil))
	if c.IsMotor() {
		line(f.text(lang, idVehicleType, vars{"Value": c.VehicleCategory.Label(lang)}))
		line(f.text(lang, idVehicleNumber, vars{"Value": c.VehicleNumber}))
	} else {
		line(f.text(lang, idPolicyNumber, vars{"Value": c.PolicyNumber}))
	}
	line(f.text(lang, idStartDate, vars{"Value": timex.FormatDisplay(c.StartDate)}))
	para(f.text(lang, idExpiryDate, vars{"Value": timex.FormatDisplay(c.ExpiryDate)}))

	if c.IsMotor() {
		para(f.text(lang, idFineAdvisory, nil))
	}
	if tier == TierExpired {
		para(f.text(lang, idClosingExpired, nil))
	} else {
		para(f.text(lang, idClosingDue, nil))
	}
	sb.WriteString(f.text(lang, idThanks, nil))

	return sb.String()
}

// Alert returns the title and body of the expiry notification for c.
func (f *Formatter) Alert(c models.Customer, offset int, lang models.Language) (string, string) {
	title := f.text(lang, idAlertTitle, nil)
	body := f.text(lang, idAlertBody, vars{
		"Name": c.Name,
		"Days": strconv.Itoa(offset),
		"Date": timex.FormatDisplay(c.ExpiryDate),
	})
	return title, body
}

// ShareNote returns the title and description attached to a shared export.
func (f *Formatter) ShareNote(lang models.Language) (string, string) {
	return f.text(lang, idShareTitle, nil), f.text(lang, idShareText, nil)
}
