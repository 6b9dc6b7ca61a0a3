package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DecodeResult decodes the raw result of a method call into target after
// checking that every required key is present and non-null.
//
// Shape problems are reported as *DecodeError. Keys not listed in required
// are optional: their absence leaves the zero value in target.
func DecodeResult(method string, raw json.RawMessage, required []string, target interface{}) error {
	resp := JSONRPCResponse{Result: raw}
	if !resp.HasResult() {
		return &DecodeError{Method: method}
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return &DecodeError{Method: method, Cause: fmt.Errorf("result is not an object: %w", err)}
	}

	for _, key := range required {
		if v, ok := fields[key]; !ok || v == nil {
			return &DecodeError{Method: method, Field: key}
		}
	}

	decoder, err := newDecoder(target)
	if err != nil {
		return fmt.Errorf("internal error creating decoder for %s: %w", method, err)
	}
	if err := decoder.Decode(fields); err != nil {
		return &DecodeError{Method: method, Field: firstFailedField(err, required), Cause: flatten(err)}
	}
	return nil
}

// firstFailedField picks the required key a mapstructure error refers to, if any.
func firstFailedField(err error, required []string) string {
	var msErr *mapstructure.Error
	if !errors.As(err, &msErr) {
		return ""
	}
	for _, e := range msErr.Errors {
		for _, key := range required {
			if strings.HasPrefix(e, "'"+key+"'") || strings.HasPrefix(e, "'"+key+"[") || strings.HasPrefix(e, "'"+key+".") {
				return key
			}
		}
	}
	return ""
}

// flatten turns mapstructure's multi-line error into a single line for output.
func flatten(err error) error {
	var msErr *mapstructure.Error
	if !errors.As(err, &msErr) {
		return err
	}
	return errors.New(strings.Join(msErr.Errors, "; "))
}

func newDecoder(target interface{}) (*mapstructure.Decoder, error) {
	return mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "json",
	})
}

// decodeList decodes v into the slice pointed to by target. It succeeds only
// when v is a JSON array whose items fit the element type.
func decodeList(v interface{}, target interface{}) bool {
	if _, ok := v.([]interface{}); !ok {
		return false
	}
	decoder, err := newDecoder(target)
	if err != nil {
		return false
	}
	return decoder.Decode(v) == nil
}
