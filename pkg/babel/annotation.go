package babel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Annotation is the body of a create request. It is sent to Babel verbatim.
type Annotation struct {
	HasBody     *Body      `json:"hasBody,omitempty"`
	HasTarget   *TargetSet `json:"hasTarget,omitempty"`
	AnnotatedBy string     `json:"annotatedBy,omitempty"`
	MotivatedBy string     `json:"motivatedBy,omitempty"`
	AnnotatedAt string     `json:"annotatedAt,omitempty"`
}

// Body describes the content of an annotation.
type Body struct {
	Format         string         `json:"format,omitempty"`
	Type           string         `json:"type,omitempty"`
	Chars          string         `json:"chars,omitempty"`
	URI            string         `json:"uri,omitempty"`
	Details        map[string]any `json:"details,omitempty"`
	AsReferencedBy string         `json:"asReferencedBy,omitempty"`
}

// Target describes the thing being annotated. Babel only accepts uri,
// fragment and asReferencedBy; any other keys decoded from JSON are kept in
// Extra so they can be reported by validation.
type Target struct {
	URI            string
	Fragment       string
	AsReferencedBy string
	Extra          map[string]any
}

var targetKeys = map[string]bool{
	"uri":            true,
	"fragment":       true,
	"asReferencedBy": true,
}

// UnrecognisedProperties returns the sorted keys of t that Babel does not
// accept.
func (t Target) UnrecognisedProperties() []string {
	var props []string
	for k := range t.Extra {
		if !targetKeys[k] {
			props = append(props, k)
		}
	}
	sort.Strings(props)
	return props
}

func (t Target) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(t.Extra)+3)
	for k, v := range t.Extra {
		m[k] = v
	}
	if t.URI != "" {
		m["uri"] = t.URI
	}
	if t.Fragment != "" {
		m["fragment"] = t.Fragment
	}
	if t.AsReferencedBy != "" {
		m["asReferencedBy"] = t.AsReferencedBy
	}
	return json.Marshal(m)
}

func (t *Target) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("error decoding hasTarget: %w", err)
	}

	*t = Target{}
	for k, v := range m {
		switch k {
		case "uri", "fragment", "asReferencedBy":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("hasTarget.%s must be a string", k)
			}
			switch k {
			case "uri":
				t.URI = s
			case "fragment":
				t.Fragment = s
			default:
				t.AsReferencedBy = s
			}
		default:
			if t.Extra == nil {
				t.Extra = make(map[string]any)
			}
			t.Extra[k] = v
		}
	}
	return nil
}

// TargetSet holds the hasTarget value of an annotation, which Babel accepts
// either as a single target object or as a list of them. The original shape
// is preserved when encoding.
type TargetSet struct {
	Targets []Target
	list    bool
}

// SingleTarget returns a TargetSet encoded as a single object.
func SingleTarget(t Target) *TargetSet {
	return &TargetSet{Targets: []Target{t}}
}

// TargetList returns a TargetSet encoded as a list.
func TargetList(targets ...Target) *TargetSet {
	if targets == nil {
		targets = []Target{}
	}
	return &TargetSet{Targets: targets, list: true}
}

// IsList reports whether the set encodes as a JSON array.
func (s *TargetSet) IsList() bool {
	return s.list
}

func (s TargetSet) MarshalJSON() ([]byte, error) {
	if s.list {
		targets := s.Targets
		if targets == nil {
			targets = []Target{}
		}
		return json.Marshal(targets)
	}
	if len(s.Targets) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(s.Targets[0])
}

func (s *TargetSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var targets []Target
		if err := json.Unmarshal(data, &targets); err != nil {
			return err
		}
		*s = *TargetList(targets...)
		return nil
	}

	var t Target
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*s = *SingleTarget(t)
	return nil
}
