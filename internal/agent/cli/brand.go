package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-webforge/internal/scaffold/brand"
)

// NewBrandCmd создаёт CLI-команду генерации фирменного стиля.
//
// Команда работает полностью офлайн и не требует токена: генераторы
// детерминированы и встроены в бинарник. Результат печатается в stdout
// либо сохраняется в файл через --out.
//
// Подкоманды:
//
//	brand css   — фирменный CSS с переменными бренда
//	brand logo  — SVG-логотип (wordmark, icon или combination)
//
// Примеры использования:
//
//	webforge brand css --name "Acme" --style modern
//	webforge brand css --name "Acme" --style elegant --scheme 1 --out brand.css
//	webforge brand logo --name "Acme" --style tech --type icon --out logo.svg
func NewBrandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Генерация фирменного стиля (офлайн)",
		Long: `Генерирует фирменный стиль: CSS с переменными бренда и SVG-логотипы.

Доступные стили: ` + strings.Join(brand.Styles(), ", ") + `

Примеры:
  webforge brand css --name "Acme" --style modern
  webforge brand logo --name "Acme" --style tech --type icon --out logo.svg
`,
	}

	cmd.AddCommand(newBrandCSSCmd())
	cmd.AddCommand(newBrandLogoCmd())

	return cmd
}

func newBrandCSSCmd() *cobra.Command {
	var (
		name   string
		style  string
		scheme int
		out    string
	)

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Сгенерировать фирменный CSS",
		Long: `Генерирует CSS с переменными бренда (:root custom properties),
базовой типографикой и утилитарными классами.

Флаг --scheme выбирает цветовую схему стиля (0, 1 или 2).

Пример:
  webforge brand css --name "Acme" --style modern --scheme 1
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			css, err := brand.GenerateCSS(name, style, scheme)
			if err != nil {
				return err
			}

			return writeArtifact(cmd, out, css)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name")
	cmd.Flags().StringVar(&style, "style", "modern", "brand style ("+strings.Join(brand.Styles(), "|")+")")
	cmd.Flags().IntVar(&scheme, "scheme", 0, "color scheme index (0-2)")
	cmd.Flags().StringVar(&out, "out", "", "write result to file instead of stdout")

	return cmd
}

func newBrandLogoCmd() *cobra.Command {
	var (
		name     string
		style    string
		logoType string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "logo",
		Short: "Сгенерировать SVG-логотип",
		Long: `Генерирует SVG-логотип компании.

Типы логотипов:
  wordmark     — текстовый логотип 300x80
  icon         — круглая иконка 80x80 с первой буквой
  combination  — иконка + имя, 300x80

Пример:
  webforge brand logo --name "Acme" --style tech --type icon --out logo.svg
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			svg, err := brand.GenerateLogo(name, style, brand.LogoType(logoType))
			if err != nil {
				return err
			}

			return writeArtifact(cmd, out, svg)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name")
	cmd.Flags().StringVar(&style, "style", "modern", "brand style ("+strings.Join(brand.Styles(), "|")+")")
	cmd.Flags().StringVar(&logoType, "type", "wordmark", "logo type (wordmark|icon|combination)")
	cmd.Flags().StringVar(&out, "out", "", "write result to file instead of stdout")

	return cmd
}

// writeArtifact печатает сгенерированный артефакт в stdout либо сохраняет в файл.
func writeArtifact(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "written %s\n", path)
	return nil
}
