package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		_ = classifyCmd.Flags().Set("json", "false")
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestClassifyCmd(t *testing.T) {
	tests := []struct {
		score string
		want  string
	}{
		{"30", "This indicates you have normal cognition."},
		{"55", "This indicates you may have mild cognitive impairment."},
		{"80", "This indicates you may have moderate cognitive impairment."},
		{"105", "This indicates you may have severe cognitive impairment."},
	}

	for _, tt := range tests {
		t.Run(tt.score, func(t *testing.T) {
			out, errOut, err := execute(t, "classify", tt.score)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.Empty(t, errOut)
		})
	}
}

func TestClassifyCmd_OutOfRange(t *testing.T) {
	out, errOut, err := execute(t, "classify", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "severe")
	assert.Contains(t, errOut, "outside the possible range 30-120")
}

func TestClassifyCmd_NotAnInteger(t *testing.T) {
	_, _, err := execute(t, "classify", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "score must be an integer")
}

func TestClassifyCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "classify", "--json", "79")
	require.NoError(t, err)

	var got classifyOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, classifyOutput{
		Score:    79,
		Category: "MildImpairment",
		Label:    "This indicates you may have mild cognitive impairment.",
		InRange:  true,
	}, got)
}

func TestQuestionsCmd(t *testing.T) {
	out, _, err := execute(t, "questions")
	require.NoError(t, err)
	assert.Contains(t, out, "Dementia Quiz")
	assert.Contains(t, out, " 1. How often do you forget recent events or conversations?")
	assert.Contains(t, out, "30. Have others noticed changes in your awareness of time and place?")
	assert.Contains(t, out, "Never (1), Rarely (2), Sometimes (3), Often (4)")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cogquiz (devel)\n", out)
}

func TestResolveFlag(t *testing.T) {
	t.Setenv("COGQUIZ_NAME", "from-env")
	assert.Equal(t, "from-env", resolveFlag(rootCmd, "name", "COGQUIZ_NAME"))

	require.NoError(t, rootCmd.Flags().Set("name", "from-flag"))
	t.Cleanup(func() { _ = rootCmd.Flags().Set("name", "") })
	assert.Equal(t, "from-flag", resolveFlag(rootCmd, "name", "COGQUIZ_NAME"))
}
