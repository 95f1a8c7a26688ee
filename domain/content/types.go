package content

import "fmt"

// Page is one of the static information pages
type Page string

const (
	PageSymptoms    Page = "symptoms"
	PagePrecautions Page = "precautions"
)

// Pages lists the static pages in menu order
func Pages() []Page {
	return []Page{PagePrecautions, PageSymptoms}
}

// ParsePage validates a page name
func ParsePage(s string) (Page, error) {
	switch Page(s) {
	case PageSymptoms, PagePrecautions:
		return Page(s), nil
	}
	return "", fmt.Errorf("unknown content page %q", s)
}

// Title is the page heading
func (p Page) Title() string {
	if p == PageSymptoms {
		return "Symptoms for Condition"
	}
	return "Precautions for Condition"
}

const (
	// MsgNotAvailable is shown for a condition without authored content, on either page
	MsgNotAvailable = "Precautions for this condition are not yet available."
	// MsgSelectCondition is shown when no condition was chosen
	MsgSelectCondition = "Please select a condition to view precautions."
)

// Bundle is the authored content of one page for one condition. Bullets are
// markdown source.
type Bundle struct {
	Condition string   `json:"condition"`
	Page      Page     `json:"page"`
	Image     string   `json:"image"`
	Caption   string   `json:"caption"`
	Intro     []string `json:"intro"`
	Bullets   []string `json:"bullets"`
	Notes     []string `json:"notes,omitempty"`
	LearnMore string   `json:"learn_more,omitempty"`
}
