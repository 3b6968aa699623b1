package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ItemGet создаёт CLI-команду для просмотра одного элемента по ID.
//
// Команда запрашивает элемент у сервера и печатает все его поля,
// включая произвольный JSON-блок data.
//
// Пример использования:
//
//	webforge get 42
func ItemGet(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Получить один элемент по ID",
		Long: `Показывает один элемент пользователя по ID.

Пример:
  webforge get 42
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: webforge login")
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id: %q", args[0])
			}

			c := NewAPIClient(app.ServerURL)

			resp, err := c.GetItem(app.Creds.Token, id)
			if err != nil {
				return err
			}
			it := resp.Item

			fmt.Fprintf(cmd.OutOrStdout(),
				"ID: %d\nTitle: %s\nDescription: %s\nCreatedAt: %s\n",
				it.ID, it.Title, it.Description,
				it.CreatedAt.Format("2006-01-02 15:04:05"),
			)
			if it.UpdatedAt != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "UpdatedAt: %s\n", it.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			if len(it.Data) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Data: %s\n", string(it.Data))
			}
			return nil
		},
	}

	return cmd
}
