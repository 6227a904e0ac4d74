package dto

// CountdownResponse is one evaluation of the checkpoint countdown. Display
// carries either "Hh Mm Ss" or the terminal string.
type CountdownResponse struct {
	Target           string `json:"target"`
	Label            string `json:"label"`
	Display          string `json:"display"`
	RemainingSeconds int    `json:"remaining_seconds"`
	Terminal         bool   `json:"terminal"`
}
