package server

// ComputedItem is one derived line in the compute response
type ComputedItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// ComputeResponse is the response for the compute endpoint
type ComputeResponse struct {
	Items []ComputedItem `json:"items"`
	Total string         `json:"total"`
}

// LinkResponse is the response for the message link endpoint
type LinkResponse struct {
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
