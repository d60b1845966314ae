package api

import "encoding/json"

// Response is the normalized envelope every successful call resolves to,
// whether the server wrapped its payload or returned it bare.
type Response[T any] struct {
	Data    T      `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// decodeResponse normalizes a 2xx body. A JSON object that already carries a
// "data" key is decoded as the envelope unchanged; anything else is treated
// as a bare payload and wrapped.
func decodeResponse[T any](endpoint string, body []byte) (*Response[T], error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err == nil {
		if _, ok := probe["data"]; ok {
			var resp Response[T]
			if err := json.Unmarshal(body, &resp); err != nil {
				return nil, networkError(endpoint, err)
			}
			return &resp, nil
		}
	}

	resp := &Response[T]{Success: true, Message: "Success"}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &resp.Data); err != nil {
			return nil, networkError(endpoint, err)
		}
	}
	return resp, nil
}
