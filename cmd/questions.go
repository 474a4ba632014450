package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cogquiz/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions and answer options",
	Run: func(cmd *cobra.Command, args []string) {
		bank := quiz.DefaultBank()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, bank.Title)
		fmt.Fprintln(out)
		for i, p := range bank.Prompts {
			fmt.Fprintf(out, "%2d. %s\n", i+1, p)
		}

		var opts []string
		for _, o := range quiz.AnswerOptions() {
			opts = append(opts, fmt.Sprintf("%s (%d)", o.Label, o.Points))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:", strings.Join(opts, ", "))
	},
}
