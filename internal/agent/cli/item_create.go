package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-webforge/internal/shared/models"
)

// ItemCreate создаёт CLI-команду для создания нового элемента на сервере.
//
// Команда отправляет на сервер заголовок, описание и произвольный
// JSON-блок data. Поле data валидируется локально, чтобы не отправлять
// на сервер заведомо кривой JSON.
//
// Обязательные флаги:
//
//	--title — название элемента
//
// Необязательные флаги:
//
//	--description — описание (по умолчанию пустое)
//	--data        — произвольный JSON (по умолчанию {})
//
// Примеры использования:
//
//	webforge set --title "My site"
//	webforge set --title "Shop" --description "ecommerce project" --data '{"template":"ecommerce"}'
//
// В случае успешного выполнения команда выводит сообщение вида:
// "created item <id>".
func ItemCreate(app *App) *cobra.Command {
	var (
		title       string
		description string
		dataStr     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Создать новый элемент на сервере",
		Long: `Создаёт новый элемент на сервере.

Примеры:
  webforge set --title "My site"
  webforge set --title "Shop" --description "ecommerce" --data '{"template":"ecommerce"}'
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: webforge login")
			}
			if title == "" {
				return fmt.Errorf("--title is required")
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

			created, err := c.CreateItem(app.Creds.Token, req)
			if err != nil {
				return err
			}
			if created.Item.ID == 0 {
				return fmt.Errorf("server returned empty id on create")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created item %d\n", created.Item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "item title")
	cmd.Flags().StringVar(&description, "description", "", "optional item description")
	cmd.Flags().StringVar(&dataStr, "data", "", "optional data JSON")

	return cmd
}
