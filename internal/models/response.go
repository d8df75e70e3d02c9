package models

type APIResponse struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	ErrorCode  string      `json:"error_code,omitempty"`
}

type PollWithOptions struct {
	Poll    *Poll         `json:"poll"`
	Options []*PollOption `json:"options"`
}

// PollDetail is the pull read a client issues after connect or reconnect:
// the poll plus its options with current vote counts.
type PollDetail struct {
	Poll    *Poll          `json:"poll"`
	Options []OptionResult `json:"options"`
}

const (
	ErrInvalidOperation = "ERR_INVALID_OPERATION"
	ErrInvalidRequest   = "ERR_INVALID_REQUEST"
)
