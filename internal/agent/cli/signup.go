package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-webforge/internal/agent/config"
)

// NewSignupCmd создаёт CLI-команду регистрации нового пользователя.
//
// Команда регистрирует пользователя на сервере WebForge, получает
// bearer-токен и сохраняет его в локальный конфигурационный файл —
// отдельный login после регистрации не требуется.
//
// Пароль не передаётся флагом, чтобы не утекать в shell history:
// по умолчанию он запрашивается интерактивно (скрытый ввод),
// для скриптов/CI доступен флаг --password-stdin.
//
// Пример использования:
//
//	webforge signup --email test@example.com --name "Ivan"
//	echo "StrongPass123" | webforge signup --email test@example.com --password-stdin
func NewSignupCmd(app *App) *cobra.Command {
	var (
		email             string
		name              string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя (сохраняет токен)",
		Long: `Регистрация нового пользователя.

Пароль запрашивается интерактивно (минимум 8 символов).
Для скриптов: --password-stdin читает пароль из STDIN.

Пример:
  webforge signup --email test@example.com --name "Ivan"
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			// регистрируем пользователя
			resp, err := c.Signup(email, pw, name)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.Token = resp.Token
			app.Creds.Email = resp.User.Email

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "signup ok, user id=%d (token saved)\n", resp.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for signup")
	cmd.Flags().StringVar(&name, "name", "", "optional display name")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}
