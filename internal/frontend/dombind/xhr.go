//go:build js

package dombind

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DrOldGuy/model-railroad-scaler/internal/frontend"

	"honnef.co/go/js/xhr"
)

// XHRClient sends scale requests with XMLHttpRequest. Scale blocks, so call it
// off the event handler.
type XHRClient struct {
	endpoint string
}

func NewXHRClient(endpoint string) *XHRClient {
	return &XHRClient{endpoint: endpoint}
}

var _ frontend.Scaler = (*XHRClient)(nil)

func (c *XHRClient) Scale(ctx context.Context, req frontend.ScaleRequest) (frontend.ScaleResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return frontend.ScaleResponse{}, fmt.Errorf("encode scale request: %w", err)
	}

	r := xhr.NewRequest("POST", c.endpoint)
	r.ResponseType = xhr.Text
	r.SetRequestHeader("Content-Type", "application/json")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			r.Abort()
		case <-done:
		}
	}()

	if err := r.Send(body); err != nil {
		return frontend.ScaleResponse{}, err
	}
	return frontend.DecodeResponse(r.Status, r.StatusText, []byte(r.ResponseText))
}
