package babel

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// defaultErrorCode is reported for service errors when the transport gave no
// status code.
const defaultErrorCode = http.StatusNotFound

// Response is a successful reply from Babel.
type Response struct {
	// StatusCode is the HTTP status, zero if the transport did not set one.
	StatusCode int

	// Body is the decoded JSON exactly as Babel sent it.
	Body any
}

// Decode copies Body into out, matching fields by their json tag.
func (r *Response) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("error creating decoder: %w", err)
	}
	if err := dec.Decode(r.Body); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

// FeedPage is a typed view of a feed or annotations listing.
type FeedPage struct {
	Count       int                `json:"count"`
	FeedLength  int                `json:"feed_length"`
	Limit       int                `json:"limit"`
	Offset      int                `json:"offset"`
	Annotations []AnnotationRecord `json:"annotations"`
}

// AnnotationRecord is a stored annotation as returned by Babel.
type AnnotationRecord struct {
	ID          string `json:"_id"`
	AnnotatedBy string `json:"annotatedBy"`
	AnnotatedAt string `json:"annotatedAt"`
	MotivatedBy string `json:"motivatedBy"`
	HasBody     Body   `json:"hasBody"`

	// HasTarget is either a single target object or a list of them.
	HasTarget any `json:"hasTarget"`
}

// normalize turns a status code and raw body into a Response or a
// *ServiceError. Precedence: unparseable body, "error" envelope, then
// "message"+"errors" envelope.
func normalize(status int, raw []byte) (*Response, error) {
	var body any
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return nil, &ServiceError{Message: "Error parsing JSON: " + string(raw)}
	}

	code := status
	if code == 0 {
		code = defaultErrorCode
	}

	if obj, ok := body.(map[string]any); ok {
		if truthy(obj["error"]) {
			return nil, &ServiceError{
				Message:  stringValue(obj["error_description"]),
				HTTPCode: code,
			}
		}
		if truthy(obj["message"]) && truthy(obj["errors"]) {
			return nil, &ServiceError{
				Message:  stringValue(obj["message"]),
				HTTPCode: code,
			}
		}
	}

	return &Response{StatusCode: status, Body: body}, nil
}

// truthy reports whether a decoded JSON value counts as set.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
