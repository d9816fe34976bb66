package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"easeinvo/internal/logger"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the display theme",
	Long: `The theme is a display preference stored alongside the invoice data.
Run without an argument to print the active theme, or pass "light" or "dark"
to change it. It has no effect on rendered documents, which are always
authored on a white page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("theme")

	_, st, err := openStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(st.LoadTheme())
		return nil
	}

	if err := st.SaveTheme(args[0]); err != nil {
		return err
	}

	log.Info().Str("theme", args[0]).Msg("Theme changed")
	fmt.Printf("Theme set to %s\n", args[0])
	return nil
}
