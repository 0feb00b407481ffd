package set_reservation_range

// RangeRequest HTTP request model; null или "" означает "не выбрано"
type RangeRequest struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// RangeResponse HTTP response model
type RangeResponse struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}
