// Генераторы SVG-логотипов
package brand

import (
	"fmt"
	"strings"
)

// LogoType — вид логотипа.
type LogoType string

const (
	// LogoWordmark — текстовый логотип 300x80 с градиентной заливкой имени.
	LogoWordmark LogoType = "wordmark"
	// LogoIcon — круглая иконка 80x80 с первой буквой имени.
	LogoIcon LogoType = "icon"
	// LogoCombination — иконка плюс имя, 300x80.
	LogoCombination LogoType = "combination"
)

// GenerateLogo строит SVG-логотип для компании в заданном стиле.
//
// Для логотипов всегда берётся нулевая цветовая схема стиля.
// Любой неизвестный тип трактуется как combination.
func GenerateLogo(businessName, style string, logoType LogoType) (string, error) {
	t, err := TemplateFor(style)
	if err != nil {
		return "", err
	}
	scheme := t.ColorSchemes[0]

	switch logoType {
	case LogoWordmark:
		return wordmark(businessName, scheme), nil
	case LogoIcon:
		return iconLogo(businessName, scheme), nil
	default:
		return combinationLogo(businessName, scheme), nil
	}
}

func wordmark(name string, scheme ColorScheme) string {
	return strings.TrimSpace(fmt.Sprintf(`
<svg width="300" height="80" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="gradient" x1="0%%" y1="0%%" x2="100%%" y2="0%%">
      <stop offset="0%%" style="stop-color:%s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%s;stop-opacity:1" />
    </linearGradient>
  </defs>
  <text x="10" y="55" font-family="Inter, sans-serif" font-size="48" font-weight="700" fill="url(#gradient)">
    %s
  </text>
</svg>
`, scheme.Primary, scheme.Secondary, name))
}

func iconLogo(name string, scheme ColorScheme) string {
	return strings.TrimSpace(fmt.Sprintf(`
<svg width="80" height="80" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="gradient" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%s;stop-opacity:1" />
    </linearGradient>
  </defs>
  <circle cx="40" cy="40" r="38" fill="url(#gradient)"/>
  <text x="40" y="55" font-family="Inter, sans-serif" font-size="36" font-weight="700" fill="white" text-anchor="middle">
    %s
  </text>
</svg>
`, scheme.Primary, scheme.Secondary, initial(name)))
}

func combinationLogo(name string, scheme ColorScheme) string {
	return strings.TrimSpace(fmt.Sprintf(`
<svg width="300" height="80" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="gradient" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%s;stop-opacity:1" />
    </linearGradient>
  </defs>
  <circle cx="40" cy="40" r="35" fill="url(#gradient)"/>
  <text x="40" y="52" font-family="Inter, sans-serif" font-size="32" font-weight="700" fill="white" text-anchor="middle">
    %s
  </text>
  <text x="90" y="52" font-family="Inter, sans-serif" font-size="36" font-weight="700" fill="%s">
    %s
  </text>
</svg>
`, scheme.Primary, scheme.Secondary, initial(name), scheme.Primary, name))
}

// initial — первая буква имени в верхнем регистре.
func initial(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return ""
	}
	return strings.ToUpper(string(r[0]))
}
