// Package validation gates the externally writable entities. Each request body
// is checked against an embedded JSON Schema; only recognised fields of an
// accepted body are decoded, so unknown fields never reach the store.
package validation

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Violation describes one reason a payload was rejected.
type Violation struct {
	Field   string `json:"field,omitempty"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Validator holds the compiled schemas. It is safe for concurrent use.
type Validator struct {
	// schemas register themselves lazily on first use, so runs are serialized
	mu      sync.Mutex
	quote   *schema
	contact *schema
	status  *schema
}

// schema pairs a compiled document with the exact property names it declares.
type schema struct {
	rs    *jsonschema.Schema
	props map[string]struct{}
}

func New() (*Validator, error) {
	v := &Validator{}
	for name, dst := range map[string]**schema{
		"quote.json":   &v.quote,
		"contact.json": &v.contact,
		"status.json":  &v.status,
	} {
		s, err := load(name)
		if err != nil {
			return nil, err
		}
		*dst = s
	}
	return v, nil
}

func load(name string) (*schema, error) {
	b, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(b, rs); err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	var doc struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("read properties of schema %s: %w", name, err)
	}
	props := make(map[string]struct{}, len(doc.Properties))
	for k := range doc.Properties {
		props[k] = struct{}{}
	}
	return &schema{rs: rs, props: props}, nil
}

// Quote validates a quote request body. A nil violation list means the
// returned InsertQuote is ready for the store.
func (v *Validator) Quote(ctx context.Context, body []byte) (*models.InsertQuote, []Violation, error) {
	var out models.InsertQuote
	verrs, err := v.decode(ctx, v.quote, body, &out)
	if err != nil || len(verrs) > 0 {
		return nil, verrs, err
	}
	return &out, nil, nil
}

func (v *Validator) Contact(ctx context.Context, body []byte) (*models.InsertContact, []Violation, error) {
	var out models.InsertContact
	verrs, err := v.decode(ctx, v.contact, body, &out)
	if err != nil || len(verrs) > 0 {
		return nil, verrs, err
	}
	return &out, nil, nil
}

// Status validates a {"status": "..."} body. Any non-empty string is accepted.
func (v *Validator) Status(ctx context.Context, body []byte) (string, []Violation, error) {
	var out struct {
		Status string `json:"status"`
	}
	verrs, err := v.decode(ctx, v.status, body, &out)
	if err != nil || len(verrs) > 0 {
		return "", verrs, err
	}
	return out.Status, nil, nil
}

func (v *Validator) decode(ctx context.Context, s *schema, body []byte, dst any) ([]Violation, error) {
	if !json.Valid(body) {
		return []Violation{{Path: "/", Message: "body is not valid JSON"}}, nil
	}

	v.mu.Lock()
	kerrs, err := s.rs.ValidateBytes(ctx, body)
	v.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("run schema: %w", err)
	}
	if len(kerrs) > 0 {
		out := make([]Violation, 0, len(kerrs))
		for _, ke := range kerrs {
			out = append(out, Violation{Field: fieldOf(ke), Path: pathOf(ke), Message: ke.Message})
		}
		return out, nil
	}

	known, err := s.known(body)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(known, dst); err != nil {
		return nil, fmt.Errorf("decode validated body: %w", err)
	}
	return nil, nil
}

// known keeps only the properties the schema declares, matched exactly.
// encoding/json folds key case, so "NAME" would otherwise land in Name.
func (s *schema) known(body []byte) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("split validated body: %w", err)
	}
	for k := range fields {
		if _, ok := s.props[k]; !ok {
			delete(fields, k)
		}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("rebuild validated body: %w", err)
	}
	return b, nil
}

func pathOf(ke jsonschema.KeyError) string {
	if ke.PropertyPath == "" {
		return "/"
	}
	return ke.PropertyPath
}

// fieldOf names the offending property. Missing required properties are
// reported against the parent object, with the name quoted in the message.
func fieldOf(ke jsonschema.KeyError) string {
	if p := strings.Trim(ke.PropertyPath, "/"); p != "" {
		return p
	}
	if _, rest, ok := strings.Cut(ke.Message, `"`); ok {
		if name, _, ok := strings.Cut(rest, `"`); ok {
			return name
		}
	}
	return ""
}
