package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrEmptyBody = errors.New("request body cannot be empty")

// DecodeCypherRequest decodes a request body. Integral numbers inside params
// become int64 and all others float64, so integer parameters reach the
// database as integers.
func DecodeCypherRequest(r io.Reader) (*CypherRequest, error) {
	var request CypherRequest

	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	if err := decoder.Decode(&request); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBody
		}
		return nil, fmt.Errorf("unable to decode request body: %w", err)
	}

	params, err := convertNumbers(request.Params)
	if err != nil {
		return nil, fmt.Errorf("unable to decode request parameters: %w", err)
	}
	if params != nil {
		request.Params = params.(map[string]any)
	}

	return &request, nil
}

func convertNumbers(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		return t.Float64()
	case map[string]any:
		if t == nil {
			return nil, nil
		}
		for k, e := range t {
			c, err := convertNumbers(e)
			if err != nil {
				return nil, err
			}
			t[k] = c
		}
		return t, nil
	case []any:
		for i, e := range t {
			c, err := convertNumbers(e)
			if err != nil {
				return nil, err
			}
			t[i] = c
		}
		return t, nil
	default:
		return v, nil
	}
}
