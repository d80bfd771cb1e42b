package httptransport

type StateDTO struct {
	DateKey   string  `json:"dateKey"`
	Text      string  `json:"text"`
	ClaimedAt *string `json:"claimedAt"`
}

type StateResponse struct {
	DateKey   string  `json:"dateKey"`
	Text      string  `json:"text"`
	ClaimedAt *string `json:"claimedAt"`
	ServerNow string  `json:"serverNow"`
	Timezone  string  `json:"timezone"`
}

type ClaimRequest struct {
	Text string `json:"text"`
}

type ClaimResponse struct {
	Message string   `json:"message"`
	State   StateDTO `json:"state"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
