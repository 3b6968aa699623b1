package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-webforge/internal/scaffold/catalog"
)

// NewTemplatesCmd создаёт CLI-команду для просмотра каталога шаблонов проектов.
//
// Команда работает офлайн по встроенному каталогу.
//
// Режимы работы:
//   - без аргументов печатает список шаблонов: имя, тип, агенты;
//   - с аргументом <name> печатает подробности одного шаблона,
//     включая схему БД (если шаблону нужна база).
//
// Примеры:
//
//	webforge templates
//	webforge templates ecommerce
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates [name]",
		Short: "Каталог шаблонов проектов (офлайн)",
		Long: `Показывает встроенный каталог шаблонов проектов.

Без аргументов печатает список (имя, тип, агенты).
С именем печатает подробности одного шаблона.

Примеры:
  webforge templates
  webforge templates ecommerce
`,
		Args:         cobra.RangeArgs(0, 1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			if len(args) == 0 {
				names := cat.TemplateNames()
				sort.Strings(names)

				for _, name := range names {
					t, _ := cat.Template(name)
					fmt.Fprintf(cmd.OutOrStdout(),
						"%s\t%s\t%s\n",
						name, t.Type, joinAgents(t.Agents),
					)
				}
				return nil
			}

			name := args[0]
			t, ok := cat.Template(name)
			if !ok {
				return fmt.Errorf("unknown template %q", name)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Name: %s\nType: %s\nNeedsDatabase: %t\nAgents: %s\n",
				name, t.Type, t.NeedsDatabase, joinAgents(t.Agents),
			)
			if len(t.Schema) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Schema: %s\n", strings.Join(t.Schema, ", "))
			}
			return nil
		},
	}

	return cmd
}

// joinAgents склеивает имена агентов через запятую.
func joinAgents(agents []catalog.Agent) string {
	parts := make([]string, 0, len(agents))
	for _, a := range agents {
		parts = append(parts, string(a))
	}
	return strings.Join(parts, ", ")
}
