package cmd

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/tui"
)

var siteURL string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := content.Load()
		if err != nil {
			return err
		}

		m := tui.New(p, tui.Options{
			ResumeURL: resumeURL(siteURL, appConfig.ResumePath),
			Nav:       tui.DefaultNavOptions(),
		})
		defer m.Close()

		prog := tea.NewProgram(m,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(cmd.Context()),
		)
		_, err = prog.Run()
		return err
	},
}

// resumeURL resolves the resume path against the public site address.
func resumeURL(site, path string) string {
	if site == "" || strings.Contains(path, "://") {
		return path
	}
	return strings.TrimRight(site, "/") + path
}

func init() {
	tuiCmd.Flags().StringVar(&siteURL, "site-url", "", "public address the resume link resolves against")
	rootCmd.AddCommand(tuiCmd)
}
