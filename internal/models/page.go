package models

import "github.com/julianstephens/growthbook/internal/constants"

// Page is one day of the journal. Date is the natural key and never changes
// once a row exists for it.
type Page struct {
	Date       string `json:"date"` // YYYY-MM-DD format
	Schedule   string `json:"schedule"`
	Todo       string `json:"todo"`
	Goals      string `json:"goals"`
	Motivation string `json:"motivation"`
	Happiness  int64  `json:"happiness"` // 1-10, not enforced by storage
	Journal    string `json:"journal"`
}

// EmptyPage returns the blank page shown for a date that has nothing stored yet
func EmptyPage(date string) Page {
	return Page{
		Date:      date,
		Happiness: constants.DefaultHappiness,
	}
}
