package notifications

// LabelTable maps a submitted code to its display string.
type LabelTable map[string]string

// Display returns the label for code, or code itself when it is unmapped.
func (t LabelTable) Display(code string) string {
	if label, ok := t[code]; ok {
		return label
	}
	return code
}

// Labels groups the lookup tables the booking email needs. Tables are only
// read after construction.
type Labels struct {
	ProjectType LabelTable
	Timeline    LabelTable
	Budget      LabelTable
	Contact     LabelTable
}

// DefaultLabels returns fresh copies of the codes the booking form offers.
func DefaultLabels() Labels {
	return Labels{
		ProjectType: LabelTable{
			"web-app":         "Web Application",
			"mobile-app":      "Mobile Application",
			"e-commerce":      "E-Commerce Platform",
			"landing-page":    "Landing Page",
			"api-development": "API Development",
			"database-design": "Database Design",
			"ui-ux-design":    "UI/UX Design",
			"full-stack":      "Full-Stack Development",
			"maintenance":     "Maintenance & Support",
			"consulting":      "Consulting",
			"other":           "Other",
		},
		Timeline: LabelTable{
			"asap":          "ASAP / Urgent",
			"1-month":       "1 Month",
			"2-3-months":    "2-3 Months",
			"3-6-months":    "3-6 Months",
			"6-months-plus": "6+ Months",
			"flexible":      "Flexible",
		},
		Budget: LabelTable{
			"under-1k": "Under $1,000",
			"1k-5k":    "$1,000 - $5,000",
			"5k-10k":   "$5,000 - $10,000",
			"10k-25k":  "$10,000 - $25,000",
			"25k-50k":  "$25,000 - $50,000",
			"50k-plus": "$50,000+",
			"discuss":  "Prefer to discuss",
		},
		Contact: LabelTable{
			"email":   "Email",
			"phone":   "Phone Call",
			"video":   "Video Call",
			"meeting": "In-Person Meeting",
		},
	}
}
