package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-webforge/internal/shared/models"
)

// ItemUpdate создаёт CLI-команду для обновления элемента по ID.
//
// Команда отправляет на сервер новый заголовок, описание и data.
// Обновление полное, а не частичное: незаданные флаги затирают
// соответствующие поля дефолтами ("" и {}).
//
// Пример использования:
//
//	webforge update 42 --title "New title" --data '{"template":"blog"}'
func ItemUpdate(app *App) *cobra.Command {
	var (
		title       string
		description string
		dataStr     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить элемент по ID",
		Long: `Обновляет элемент пользователя по ID (полная замена полей).

Пример:
  webforge update 42 --title "New title" --data '{"template":"blog"}'
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: webforge login")
			}
			if title == "" {
				return fmt.Errorf("--title is required")
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id: %q", args[0])
			}

			req := sharedModels.ItemRequest{
				Title:       title,
				Description: description,
			}
			if dataStr != "" {
				if !json.Valid([]byte(dataStr)) {
					return fmt.Errorf("--data is not valid JSON")
				}
				req.Data = json.RawMessage(dataStr)
			}

			c := NewAPIClient(app.ServerURL)

			if _, err := c.UpdateItem(app.Creds.Token, id, req); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated item %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "item title")
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().StringVar(&dataStr, "data", "", "data JSON")

	return cmd
}
