package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/cogquiz/internal/quiz"
)

type classifyOutput struct {
	Score    int    `json:"score"`
	Category string `json:"category"`
	Label    string `json:"label"`
	InRange  bool   `json:"in_range"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <score>",
	Short: "Print the category for a total score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("score must be an integer: %q", args[0])
		}

		cat := quiz.Classify(score)
		res := classifyOutput{
			Score:    score,
			Category: cat.String(),
			Label:    cat.Label(),
			InRange:  quiz.InRange(score),
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Fprintf(out, "Score %d: %s\n", res.Score, res.Label)
		if !res.InRange {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d is outside the possible range %d-%d\n",
				score, quiz.MinScore, quiz.MaxScore)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().Bool("json", false, "Print the result as JSON")
}
