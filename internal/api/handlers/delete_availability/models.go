package delete_availability

// DeleteAvailabilityRequest HTTP request model
type DeleteAvailabilityRequest struct {
	Day  string `json:"day"`
	From string `json:"from"`
	To   string `json:"to"`
}

// DeleteAvailabilityResponse HTTP response model
type DeleteAvailabilityResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
