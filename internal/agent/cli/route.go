package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-webforge/internal/scaffold/catalog"
)

// NewRouteCmd создаёт CLI-команду подбора агентов по описанию проекта.
//
// Команда прогоняет свободное текстовое описание через таблицы
// ключевых слов каталога и печатает подходящих агентов. Работает офлайн.
//
// Примеры:
//
//	webforge route "landing page with a logo and branding"
//	webforge route "app with login and a database"
func NewRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route <description>",
		Short: "Подбор агентов по описанию проекта (офлайн)",
		Long: `Подбирает агентов-генераторов под текстовое описание проекта
по встроенным таблицам ключевых слов.

Примеры:
  webforge route "landing page with a logo and branding"
  webforge route "app with login and a database"
`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")

			agents := catalog.Default().MatchAgents(description)
			if len(agents) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no agents matched")
				return nil
			}

			for _, a := range agents {
				fmt.Fprintln(cmd.OutOrStdout(), string(a))
			}
			return nil
		},
	}

	return cmd
}
