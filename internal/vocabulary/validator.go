package vocabulary

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/vocabulary.schema.json
var schemaBytes []byte

const schemaResource = "vocabulary.schema.json"

var printer = message.NewPrinter(language.English)

// temporalTag marks TOML date and time values in the schema instance. A
// marked value is an array, which no field of the schema accepts.
const temporalTag = "$toml"

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/actions", "/mcp_tools/memory/id")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed (e.g., "required", "type")
}

func (i ValidationIssue) String() string {
	path := i.Path
	if path == "" {
		path = "(root)"
	}
	return path + ": " + i.Message
}

// SchemaError is returned by Load when the file parses as TOML but does not
// satisfy the vocabulary schema.
type SchemaError struct {
	Issues []ValidationIssue
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// Schema returns the embedded JSON Schema document.
func Schema() []byte {
	out := make([]byte, len(schemaBytes))
	copy(out, schemaBytes)
	return out
}

// compiledSchema compiles the embedded schema on first use.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaResource, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return schema, nil
})

// Validate validates raw TOML bytes against the vocabulary schema.
// The error return is for syntax or schema compilation failures.
// Schema violations are returned in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	raw := map[string]interface{}{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, syntaxError(err)
	}
	return validateTree(raw)
}

// validateTree runs the schema against an already-decoded TOML document.
func validateTree(raw map[string]interface{}) (*ValidationResult, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// The validator wants plain JSON values: json.Number instead of int64,
	// and no go-toml date types.
	jsonData, err := json.Marshal(instance(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	c := issueCollector{doc: raw, seen: map[ValidationIssue]bool{}}
	c.walk(ve)
	if len(c.issues) == 0 {
		return &ValidationResult{Issues: []ValidationIssue{{Message: ve.Error()}}}, nil
	}
	slices.SortFunc(c.issues, func(a, b ValidationIssue) int {
		if n := strings.Compare(a.Path, b.Path); n != 0 {
			return n
		}
		return strings.Compare(a.Message, b.Message)
	})
	return &ValidationResult{Issues: c.issues}, nil
}

// instance copies a decoded TOML tree, replacing dates and times with
// ["$toml", "<kind>", "<value>"] markers.
func instance(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = instance(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = instance(e)
		}
		return out
	}
	if kind := temporalKind(v); kind != "" {
		return []interface{}{temporalTag, kind, fmt.Sprint(v)}
	}
	return v
}

// temporalKind names the TOML date/time type of v, or returns "" for
// anything else.
func temporalKind(v interface{}) string {
	switch v.(type) {
	case time.Time:
		return "offset datetime"
	case toml.LocalDateTime:
		return "local datetime"
	case toml.LocalDate:
		return "local date"
	case toml.LocalTime:
		return "local time"
	}
	return ""
}

// lookup returns the value at a JSON pointer location in the decoded tree.
func lookup(doc map[string]interface{}, location []string) interface{} {
	var cur interface{} = doc
	for _, key := range location {
		switch node := cur.(type) {
		case map[string]interface{}:
			cur = node[key]
		case []interface{}:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	return cur
}

// issueCollector flattens a ValidationError tree into distinct leaf issues.
type issueCollector struct {
	doc    map[string]interface{}
	seen   map[ValidationIssue]bool
	issues []ValidationIssue
}

func (c *issueCollector) walk(ve *jsonschema.ValidationError) {
	for _, cause := range ve.Causes {
		c.walk(cause)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return
	}

	kwPath := ve.ErrorKind.KeywordPath()
	if len(kwPath) == 0 {
		return
	}
	issue := ValidationIssue{Keyword: kwPath[len(kwPath)-1]}
	if issue.Keyword == "allOf" || issue.Keyword == "$ref" {
		return
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	issue.Message = ve.ErrorKind.LocalizedString(printer)
	if issue.Keyword == "type" {
		if kind := temporalKind(lookup(c.doc, ve.InstanceLocation)); kind != "" {
			issue.Message = strings.Replace(issue.Message, "got array", "got TOML "+kind, 1)
		}
	}

	if !c.seen[issue] {
		c.seen[issue] = true
		c.issues = append(c.issues, issue)
	}
}
