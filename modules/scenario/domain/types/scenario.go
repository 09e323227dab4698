package types

// Scenario is a fiscal year/quarter planning period. StartDate is inclusive,
// EndDate exclusive, both ISO-8601 YYYY-MM-DD.
type Scenario struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Quarter   int    `json:"quarter"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
