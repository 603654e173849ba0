package models

// ValidateResponse reports the verdict for one candidate request. Search is
// populated only when the request was accepted; rejections carry no detail.
type ValidateResponse struct {
	Accepted bool            `json:"accepted"`
	Search   *SearchCriteria `json:"search,omitempty"`
}

type LastSearchResponse struct {
	Search SearchCriteria `json:"search"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
