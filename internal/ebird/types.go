// Package ebird holds eBird API v2 record types and decoding of locally saved exports
package ebird

// Observation is one record from the eBird API v2 observation endpoints
// (/data/obs/{regionCode}/recent and friends), as saved to a local file.
type Observation struct {
	SpeciesCode     string  `json:"speciesCode"`
	CommonName      string  `json:"comName"`
	ScientificName  string  `json:"sciName"`
	LocationID      string  `json:"locId"`
	LocationName    string  `json:"locName"`
	ObservedAt      string  `json:"obsDt"`             // "2006-01-02 15:04" or "2006-01-02" when no time was recorded
	HowMany         *int    `json:"howMany,omitempty"` // nil when the count was reported as "X"
	Latitude        float64 `json:"lat"`
	Longitude       float64 `json:"lng"`
	Valid           bool    `json:"obsValid"`
	Reviewed        bool    `json:"obsReviewed"`
	LocationPrivate bool    `json:"locationPrivate"`
	SubmissionID    string  `json:"subId"`
}

// Count returns the reported number of individuals and whether a number was given
func (o *Observation) Count() (int, bool) {
	if o.HowMany == nil {
		return 0, false
	}
	return *o.HowMany, true
}
