package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ItemList создаёт CLI-команду для просмотра всех элементов пользователя.
//
// Команда запрашивает у сервера список элементов текущего пользователя
// и печатает их в виде таблицы: ID, title, created_at.
// Сервер отдаёт элементы отсортированными — новые первыми.
//
// Пример использования:
//
//	webforge list
func ItemList(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список элементов пользователя",
		Long: `Показывает все элементы текущего пользователя (новые первыми).

Пример:
  webforge list
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: webforge login")
			}

			c := NewAPIClient(app.ServerURL)

			resp, err := c.ListItems(app.Creds.Token)
			if err != nil {
				return err
			}

			if len(resp.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no items")
				return nil
			}

			for _, it := range resp.Items {
				fmt.Fprintf(cmd.OutOrStdout(),
					"%d\t%s\t%s\n",
					it.ID, it.Title, it.CreatedAt.Format("2006-01-02 15:04:05"),
				)
			}
			return nil
		},
	}

	return cmd
}
