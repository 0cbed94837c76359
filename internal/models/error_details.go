package models

// ErrorDetails is the JSON body returned with every non-2xx /scale response.
type ErrorDetails struct {
	Message     string `json:"message"`
	ErrorCode   int    `json:"errorCode"`
	ErrorReason string `json:"errorReason"`
	Timestamp   string `json:"timestamp"`
	URI         string `json:"uri"`
}
