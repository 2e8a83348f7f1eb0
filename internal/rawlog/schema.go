package rawlog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// answerSchema is the JSON Schema every "questions.answer" field map must
// satisfy before coercion. A non-positive response time is rejected here
// because its logarithm is undefined.
const answerSchema = `{
	"type": "object",
	"required": ["msResposeTime", "place", "user", "options", "askedDate"],
	"properties": {
		"msResposeTime": {"type": "number", "exclusiveMinimum": 0},
		"place":         {"type": ["integer", "string"]},
		"answer":        {"type": ["integer", "string", "null"]},
		"user":          {"type": ["integer", "string"]},
		"options":       {"type": "array"},
		"askedDate":     {"type": "string"}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledAnswerSchema compiles the answer schema once and caches it.
func compiledAnswerSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(answerSchema), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://answer.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
