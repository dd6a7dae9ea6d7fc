package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pinefile/pine"
)

var (
	taskStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	namespaceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tasks in the pinefile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			ns, err := loadNamespace(settings.GetString("file"))
			if err != nil {
				return err
			}

			noColor := settings.GetBool("no_color")
			for _, line := range taskLines(ns, "", noColor) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

// taskLines renders the namespace as a sorted, indented tree.
func taskLines(ns pine.Namespace, indent string, noColor bool) []string {
	names := make([]string, 0, len(ns))
	for name := range ns {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		switch v := ns[name].(type) {
		case pine.Namespace:
			lines = append(lines, indent+styled(namespaceStyle, name, noColor))
			lines = append(lines, taskLines(v, indent+"  ", noColor)...)
		case map[string]any:
			lines = append(lines, indent+styled(namespaceStyle, name, noColor))
			lines = append(lines, taskLines(pine.Namespace(v), indent+"  ", noColor)...)
		default:
			lines = append(lines, indent+styled(taskStyle, name, noColor))
		}
	}
	return lines
}

func styled(style lipgloss.Style, s string, noColor bool) string {
	if noColor {
		return s
	}
	return style.Render(s)
}
