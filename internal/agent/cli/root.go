// Package cli реализует командный интерфейс (CLI) клиентского приложения WebForge.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (bearer-токен) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-webforge/internal/agent/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу и загруженные учётные данные.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера WebForge (например, "http://127.0.0.1:8080").
	ServerURL string

	// CredsPath — путь к файлу с сохранённым токеном.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу учётных данных и загружается сохранённый токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:8080",
	}

	cmd := &cobra.Command{
		Use:   "webforge",
		Short: "WebForge CLI — скаффолдинг проектов и доступ к серверу items",
		Long: `WebForge CLI.

Команды:
  signup     Регистрация нового пользователя
  login      Логин (получить токен)
  set        Создать элемент на сервере
  list       Список элементов
  get        Один элемент по ID
  update     Обновить элемент по ID
  delete     Удалить элемент по ID
  brand      Генерация фирменного стиля (css/logo), офлайн
  templates  Список шаблонов проектов, офлайн
  route      Подбор агентов по описанию проекта, офлайн
  version    Версия и дата сборки

Примеры:

Регистрация:
  webforge signup --email test@example.com --password StrongPass123

Логин:
  webforge login --email test@example.com --password StrongPass123
  (сохраняет токен в локальном конфиге)

Создание элемента:
  webforge set --title "My site" --description "landing" --data '{"template":"landing-page"}'

Генерация логотипа (без сервера):
  webforge brand logo --name "Acme" --style modern --type icon
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:8080", "server base URL")

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(ItemCreate(app))
	cmd.AddCommand(ItemList(app))
	cmd.AddCommand(ItemGet(app))
	cmd.AddCommand(ItemUpdate(app))
	cmd.AddCommand(ItemDelete(app))
	cmd.AddCommand(NewBrandCmd())
	cmd.AddCommand(NewTemplatesCmd())
	cmd.AddCommand(NewRouteCmd())
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
