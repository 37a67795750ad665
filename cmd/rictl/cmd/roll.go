package cmd

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rollinitiative/rollinit/pkg/rules"
)

var (
	dropLowest  int
	dropHighest int
)

var notationRE = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

var rollCmd = &cobra.Command{
	Use:   "roll [notation]",
	Short: "Roll dice on the server",
	Long: `Roll dice given in NdF+M notation. Examples:

  roll d20
  roll 2d6+3
  roll 4d6 --drop-lowest 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := parseNotation(args[0])
		if err != nil {
			return err
		}
		req.DropLowest, req.DropHighest = dropLowest, dropHighest

		result, err := newClient().Roll(req)
		if err != nil {
			return err
		}

		fmt.Printf("rolled %v", result.Rolled)
		if len(result.Results) != len(result.Rolled) {
			fmt.Printf(", kept %v", result.Results)
		}
		if result.Modifier != 0 {
			fmt.Printf(", modifier %+d", result.Modifier)
		}
		fmt.Printf("\ntotal %d\n", result.Total)

		return nil
	},
}

func parseNotation(notation string) (rules.RollRequest, error) {
	m := notationRE.FindStringSubmatch(notation)
	if m == nil {
		return rules.RollRequest{}, fmt.Errorf("invalid dice notation %q", notation)
	}

	req := rules.RollRequest{DiceCount: 1}
	if m[1] != "" {
		req.DiceCount, _ = strconv.Atoi(m[1])
	}
	req.Faces, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		req.Modifier, _ = strconv.Atoi(m[3])
	}

	return req, nil
}

func init() {
	rollCmd.Flags().IntVar(&dropLowest, "drop-lowest", 0, "number of lowest dice to drop")
	rollCmd.Flags().IntVar(&dropHighest, "drop-highest", 0, "number of highest dice to drop")
}
