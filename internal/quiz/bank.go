package quiz

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// QuestionCount is the number of prompts in a session. The scoring
// thresholds in Classify are absolute values calibrated for this count.
const QuestionCount = 30

//go:embed questions.json
var bankJSON []byte

//go:embed questions.schema.json
var bankSchemaJSON []byte

const bankSchemaURL = "schema://questions.schema.json"

// Bank is the immutable, ordered question set for a session.
type Bank struct {
	Title   string   `json:"title"`
	Prompts []string `json:"prompts"`
}

// Len returns the number of prompts in the bank.
func (b *Bank) Len() int {
	return len(b.Prompts)
}

// Prompt returns the prompt at index i.
func (b *Bank) Prompt(i int) (Prompt, bool) {
	if i < 0 || i >= len(b.Prompts) {
		return Prompt{}, false
	}
	return Prompt{Index: i, Text: b.Prompts[i]}, true
}

var (
	defaultBankOnce sync.Once
	defaultBank     *Bank
	defaultBankErr  error
)

// DefaultBank returns the question bank embedded at build time.
// It panics if the embedded data does not satisfy its schema.
func DefaultBank() *Bank {
	defaultBankOnce.Do(func() {
		defaultBank, defaultBankErr = LoadBank(bankJSON)
	})
	if defaultBankErr != nil {
		panic(fmt.Sprintf("embedded question bank: %v", defaultBankErr))
	}
	return defaultBank
}

// LoadBank validates raw JSON against the bank schema and decodes it.
func LoadBank(data []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compileBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var bank Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	return &bank, nil
}

func compileBankSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	var def any
	if err := json.Unmarshal(bankSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(bankSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(bankSchemaURL)
}
