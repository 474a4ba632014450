package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cogquiz",
	Short: "Cognitive self-assessment questionnaire",
	Long:  "cogquiz runs the 30-question Dementia Quiz in the terminal and reports a score category.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String("name", "", "Participant name shown on the result (overrides COGQUIZ_NAME env var)")
	rootCmd.Flags().String("log", "", "Write debug logs to this file (overrides COGQUIZ_DEBUG_LOG env var)")
	rootCmd.Flags().Bool("skip-intro", false, "Start directly at the first question")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveFlag returns the named string flag when set, otherwise the value of
// the env var.
func resolveFlag(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}
