package entity

// KPISummary holds the headline figures for a date range.
type KPISummary struct {
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	SalesCount int64   `json:"salesCount"`
	AvgTicket  float64 `json:"avgTicket"`
}

// SeriesPoint is one day of the revenue series. Days with no sales are
// omitted rather than zero-filled.
type SeriesPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
}

// ProductRank is one row of the top-products ranking. For line items
// whose product no longer exists, Name is a synthesized placeholder and
// the row still groups by the raw product reference.
type ProductRank struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// OfferRank is one row of the top-offers ranking. Attribution is a
// membership heuristic: any sold line item whose product belongs to an
// offer counts toward that offer, so items in overlapping offers are
// counted once per offer. This is not a ledger of sales made "as" the
// offer.
type OfferRank struct {
	OfferID  int64   `json:"offerId"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
