package model

// Portfolio is a lane-mean snapshot of an agent's state at a point in time.
// Cash and Depot are means of the per-lane vectors; TotalValue is the mean
// mark-to-market net worth (cash + depot * market value).
type Portfolio struct {
	Cash       float64 `json:"cash"`
	Depot      float64 `json:"depot"`
	TotalValue float64 `json:"total_value"`
}
