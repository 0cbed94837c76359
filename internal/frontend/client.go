package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ScalePath is where the page's scale requests go.
const ScalePath = "/scale"

// Scaler sends one scale request and returns the server's answer. A non-2xx
// answer is a *ServerError; anything else is a transport failure.
type Scaler interface {
	Scale(ctx context.Context, req ScaleRequest) (ScaleResponse, error)
}

// HTTPClient is a Scaler over net/http.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

func NewHTTPClient(endpoint string, client *http.Client) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClient{endpoint: endpoint, client: client}
}

var _ Scaler = (*HTTPClient)(nil)

func (c *HTTPClient) Scale(ctx context.Context, req ScaleRequest) (ScaleResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return ScaleResponse{}, fmt.Errorf("encode scale request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return ScaleResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return ScaleResponse{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ScaleResponse{}, fmt.Errorf("read scale response: %w", err)
	}
	return DecodeResponse(resp.StatusCode, http.StatusText(resp.StatusCode), data)
}

// DecodeResponse turns a finished /scale exchange into a ScaleResponse or a
// *ServerError. An error body that cannot be parsed falls back to the status.
func DecodeResponse(status int, statusText string, body []byte) (ScaleResponse, error) {
	if status < 200 || status > 299 {
		var e ErrorResponse
		if err := json.Unmarshal(body, &e); err != nil || e.ErrorCode == 0 {
			return ScaleResponse{}, &ServerError{Code: status, Message: statusText}
		}
		return ScaleResponse{}, &ServerError{Code: e.ErrorCode, Message: e.Message}
	}
	var out ScaleResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return ScaleResponse{}, fmt.Errorf("decode scale response: %w", err)
	}
	return out, nil
}
