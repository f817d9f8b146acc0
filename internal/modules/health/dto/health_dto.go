package dto

const (
	StateUp       = "up"
	StateDown     = "down"
	StateDisabled = "disabled"
)

type InfoResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
}
