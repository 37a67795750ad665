package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/riclient"
)

var (
	search   string
	sortBy   string
	page     int
	pageSize int
)

var charactersCmd = &cobra.Command{
	Use:     "characters",
	Aliases: []string{"c"},
	Short:   "List and inspect characters",
}

var listCharactersCmd = &cobra.Command{
	Use:   "list",
	Short: "List characters",
	Long: `List characters, optionally searching and sorting. Prefix the sort field with "-"
to sort descending, for example --sort -level.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := listq.Request{Search: search}
		if sortBy != "" {
			req.Sort = map[string]bool{strings.TrimPrefix(sortBy, "-"): !strings.HasPrefix(sortBy, "-")}
		}

		result, err := newClient().ListCharacters(req, page, pageSize)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tLEVEL\tRACE\tCLASS")
		for _, c := range result.Results {
			name := strings.TrimSpace(strings.Join([]string{c.Title, c.FirstName, c.LastName}, " "))
			race, class := "", ""
			if c.Race != nil {
				race = c.Race.Name
			}
			if c.CharacterClass != nil {
				class = c.CharacterClass.Name
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", c.ID, name, c.Level, race, class)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d characters\n", result.Count)
		return nil
	},
}

var showCharacterCmd = &cobra.Command{
	Use:   "show [character-id]",
	Short: "Show a character with its health and equipment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		c, err := client.GetCharacter(args[0])
		if err != nil {
			return err
		}

		equipment, err := client.GetEquipment(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (level %d", c.Name, c.Level)
		if c.CharacterClass != nil {
			fmt.Printf(" %s", c.CharacterClass.Name)
		}
		fmt.Println(")")
		fmt.Printf("  HP: %d/%d (+%d temporary)  AC: %d\n", c.CurrentHP, c.MaxHP, c.TemporaryHP, c.ArmorClass)
		fmt.Printf("  STR %d  DEX %d  CON %d  INT %d  WIS %d  CHA %d\n",
			c.Strength, c.Dexterity, c.Constitution, c.Intelligence, c.Wisdom, c.Charisma)

		for _, a := range equipment.Armor {
			fmt.Printf("  armor:  %s (%s lb)\n", a.Name, a.Weight)
		}
		for _, w := range equipment.Weapons {
			fmt.Printf("  weapon: %s %s %s\n", w.Name, w.Damage, strings.ToLower(w.DamageType))
		}
		for _, g := range equipment.AdventuringGear {
			fmt.Printf("  gear:   %s (%s lb)\n", g.Name, g.Weight)
		}
		for _, t := range equipment.Tools {
			fmt.Printf("  tool:   %s\n", t.Name)
		}
		fmt.Printf("  carrying %s lb\n", equipment.TotalWeight)

		return nil
	},
}

var (
	damage     int
	heal       int
	temporary  int
	maxHPDelta int
)

var healthCmd = &cobra.Command{
	Use:   "health [character-id]",
	Short: "Show or adjust a character's hit points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		adj := riclient.HealthAdjustment{CurrentHP: heal - damage, MaxHP: maxHPDelta, TemporaryHP: temporary}
		if adj == (riclient.HealthAdjustment{}) {
			h, err := client.GetHealth(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%d/%d (+%d temporary)\n", h.CurrentHP, h.MaxHP, h.TemporaryHP)
			return nil
		}

		h, err := client.AdjustHealth(args[0], adj)
		if err != nil {
			return err
		}

		fmt.Printf("%d/%d (+%d temporary)\n", h.CurrentHP, h.MaxHP, h.TemporaryHP)
		return nil
	},
}

var hpIncrease int

var levelUpCmd = &cobra.Command{
	Use:   "level-up [character-id]",
	Short: "Raise a character one level",
	Long:  "Raise a character one level. Without --hp the class hit die is rolled.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var increase *int
		if cmd.Flags().Changed("hp") {
			increase = &hpIncrease
		}

		c, err := newClient().LevelUp(args[0], increase)
		if err != nil {
			return err
		}

		fmt.Printf("%s is now level %d with %d max hp\n", c.Name, c.Level, c.MaxHP)
		return nil
	},
}

func init() {
	listCharactersCmd.Flags().StringVarP(&search, "search", "s", "", "search text")
	listCharactersCmd.Flags().StringVar(&sortBy, "sort", "", "sort field, prefix with - for descending")
	listCharactersCmd.Flags().IntVar(&page, "page", 0, "page number")
	listCharactersCmd.Flags().IntVar(&pageSize, "page-size", 0, "page size")

	healthCmd.Flags().IntVar(&damage, "damage", 0, "hit points of damage to take")
	healthCmd.Flags().IntVar(&heal, "heal", 0, "hit points to heal")
	healthCmd.Flags().IntVar(&temporary, "temporary", 0, "temporary hit points to add (negative to remove)")
	healthCmd.Flags().IntVar(&maxHPDelta, "max", 0, "change to maximum hit points")

	levelUpCmd.Flags().IntVar(&hpIncrease, "hp", 0, "max hp increase instead of rolling")

	charactersCmd.AddCommand(listCharactersCmd)
	charactersCmd.AddCommand(showCharacterCmd)
	charactersCmd.AddCommand(healthCmd)
	charactersCmd.AddCommand(levelUpCmd)
}
