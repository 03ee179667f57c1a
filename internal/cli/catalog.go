package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dcf21/astrolabe/pkg/catalog"
	"github.com/dcf21/astrolabe/pkg/config"
)

// catalogCommand creates the catalog command for inspecting the star list.
func (c *CLI) catalogCommand() *cobra.Command {
	var (
		limit       float64
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the bright stars plotted on the rete",
		Long: `List the stars of the catalogue that pass the magnitude cut, brightest
first. Without --catalog the embedded bright star list is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stars := catalog.Embedded()
			if catalogPath != "" {
				var err error
				stars, err = catalog.Load(catalogPath)
				if err != nil {
					return err
				}
			}

			bright := catalog.BrighterThan(stars, limit)
			sort.Slice(bright, func(i, j int) bool { return bright[i].Mag < bright[j].Mag })

			fmt.Println(StyleTitle.Render("Rete Star Catalogue"))
			printDetail("%d of %d stars at magnitude %.1f or brighter", len(bright), len(stars), limit)
			fmt.Println(renderStarTable(bright))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&limit, "limit", "m", config.DefaultMagnitudeLimit, "faintest magnitude to include")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "star catalogue file (default: embedded list)")

	return cmd
}

// renderStarTable formats the star list as a bordered table.
func renderStarTable(stars []catalog.Star) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(stars))
	for _, s := range stars {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%8.3f", s.RA),
			fmt.Sprintf("%8.3f", s.Dec),
			fmt.Sprintf("%5.2f", s.Mag),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Star", "RA °", "Dec °", "Mag").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleValue
			}
			return StyleDim
		})

	return t.Render()
}
