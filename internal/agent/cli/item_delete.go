package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ItemDelete создаёт CLI-команду для удаления элемента по ID.
//
// Сервер отвечает успехом и в том случае, если элемента с таким ID
// уже нет — команда идемпотентна.
//
// Пример использования:
//
//	webforge delete 42
func ItemDelete(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить элемент по ID",
		Long: `Удаляет элемент пользователя по ID.

Пример:
  webforge delete 42
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

			if _, err := c.DeleteItem(app.Creds.Token, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted item %d\n", id)
			return nil
		},
	}

	return cmd
}
