package booking

type EventType struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DefaultDuration int    `json:"defaultDuration"`
}

type DurationPackage struct {
	Hours       int    `json:"hours"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var EventTypes = []EventType{
	{ID: "wedding", Label: "Wedding", DefaultDuration: 4},
	{ID: "corporate", Label: "Corporate Event", DefaultDuration: 3},
	{ID: "private", Label: "Private Party", DefaultDuration: 4},
	{ID: "festival", Label: "Festival", DefaultDuration: 2},
	{ID: "bar-club", Label: "Bar/Club", DefaultDuration: 3},
	{ID: "restaurant", Label: "Restaurant", DefaultDuration: 2},
	{ID: "birthday", Label: "Birthday Party", DefaultDuration: 3},
	{ID: "anniversary", Label: "Anniversary", DefaultDuration: 4},
	{ID: "other", Label: "Other", DefaultDuration: 3},
}

var DurationPackages = []DurationPackage{
	{Hours: 2, Label: "2 Hours", Description: "Perfect for cocktail hours"},
	{Hours: 3, Label: "3 Hours", Description: "Standard set length"},
	{Hours: 4, Label: "4 Hours", Description: "Full event coverage"},
	{Hours: 6, Label: "6 Hours", Description: "Extended performance"},
	{Hours: 8, Label: "Full Day (8 Hours)", Description: "All-day events"},
}

var ReferralSources = []string{
	"Google Search",
	"Instagram",
	"Facebook",
	"Friend/Family Referral",
	"Venue Recommendation",
	"Saw you perform",
	"Other",
}

// EventTypeLabel returns the display label of a known event type id, or
// the id itself for anything else.
func EventTypeLabel(id string) string {
	for _, t := range EventTypes {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}
