package quiz

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	b := DefaultBank()
	require.NotNil(t, b)
	assert.Equal(t, "Dementia Quiz", b.Title)
	assert.Equal(t, QuestionCount, b.Len())
	assert.Equal(t, "Have others noticed changes in your awareness of time and place?", b.Prompts[29])
}

func TestBank_Prompt(t *testing.T) {
	b := DefaultBank()

	p, ok := b.Prompt(5)
	require.True(t, ok)
	assert.Equal(t, 5, p.Index)
	assert.Equal(t, "Do you find it challenging to concentrate on tasks or conversations?", p.Text)

	_, ok = b.Prompt(-1)
	assert.False(t, ok)
	_, ok = b.Prompt(QuestionCount)
	assert.False(t, ok)
}

func bankJSONWith(t *testing.T, title string, n int) []byte {
	t.Helper()
	prompts := make([]string, n)
	for i := range prompts {
		prompts[i] = "Prompt " + strings.Repeat("x", i+1)
	}
	data, err := json.Marshal(map[string]any{"title": title, "prompts": prompts})
	require.NoError(t, err)
	return data
}

func TestLoadBank(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{"valid", nil, ""},
		{"not json", []byte("{"), "invalid JSON"},
		{"too few prompts", nil, "schema validation failed"},
		{"too many prompts", nil, "schema validation failed"},
		{"empty title", nil, "schema validation failed"},
		{"unknown field", []byte(`{"title":"t","prompts":[],"extra":1}`), "schema validation failed"},
	}
	tests[0].data = bankJSONWith(t, "Quiz", QuestionCount)
	tests[2].data = bankJSONWith(t, "Quiz", QuestionCount-1)
	tests[3].data = bankJSONWith(t, "Quiz", QuestionCount+1)
	tests[4].data = bankJSONWith(t, "", QuestionCount)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := LoadBank(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, QuestionCount, b.Len())
		})
	}
}

func TestAnswerOptions(t *testing.T) {
	opts := AnswerOptions()
	require.Len(t, opts, 4)
	assert.Equal(t, AnswerOption{Label: "Never", Points: 1}, opts[0])
	assert.Equal(t, AnswerOption{Label: "Often", Points: 4}, opts[3])

	// Mutating the copy must not affect the fixed set.
	opts[0].Points = 99
	assert.Equal(t, 1, AnswerOptions()[0].Points)

	assert.Equal(t, []string{"Never", "Rarely", "Sometimes", "Often"}, OptionLabels())
}
