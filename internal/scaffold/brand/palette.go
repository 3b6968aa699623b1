// Package brand генерирует фирменный стиль проекта: цветовые палитры,
// SVG-логотипы и базовый CSS с переменными бренда.
//
// Генерация полностью детерминирована: одинаковый вход (имя компании,
// стиль, номер цветовой схемы) даёт байт-в-байт одинаковый результат.
package brand

import (
	serr "github.com/IvanChernomyrdin/go-webforge/internal/shared/errors"
)

// ColorScheme — именованная тройка цветов бренда.
type ColorScheme struct {
	Primary   string
	Secondary string
	Accent    string
	Name      string
}

// FontPair — CSS-стеки шрифтов заголовков и основного текста.
type FontPair struct {
	Heading string
	Body    string
}

// Template — пресет стиля: три цветовые схемы и пара шрифтов.
// Нулевая схема считается схемой по умолчанию.
type Template struct {
	ColorSchemes [3]ColorScheme
	Fonts        FontPair
}

var templates = map[string]Template{
	"modern": {
		ColorSchemes: [3]ColorScheme{
			{"#667eea", "#764ba2", "#f093fb", "Purple Gradient"},
			{"#4facfe", "#00f2fe", "#43e97b", "Ocean Blue"},
			{"#fa709a", "#fee140", "#30cfd0", "Sunset"},
		},
		Fonts: FontPair{
			Heading: "'Inter', -apple-system, sans-serif",
			Body:    "'Inter', -apple-system, sans-serif",
		},
	},
	"elegant": {
		ColorSchemes: [3]ColorScheme{
			{"#1a1a2e", "#16213e", "#c9a96e", "Luxury Dark"},
			{"#2d3561", "#c05c7e", "#f3826f", "Royal"},
			{"#0f3460", "#16213e", "#e94560", "Navy Rose"},
		},
		Fonts: FontPair{
			Heading: "'Playfair Display', serif",
			Body:    "'Lato', sans-serif",
		},
	},
	"playful": {
		ColorSchemes: [3]ColorScheme{
			{"#ff6b6b", "#4ecdc4", "#ffe66d", "Rainbow"},
			{"#ff006e", "#8338ec", "#3a86ff", "Electric"},
			{"#06ffa5", "#7b2cbf", "#ff9e00", "Vibrant"},
		},
		Fonts: FontPair{
			Heading: "'Poppins', sans-serif",
			Body:    "'Poppins', sans-serif",
		},
	},
	"minimal": {
		ColorSchemes: [3]ColorScheme{
			{"#000000", "#ffffff", "#666666", "Monochrome"},
			{"#2c3e50", "#ecf0f1", "#3498db", "Clean Slate"},
			{"#1e1e1e", "#f5f5f5", "#0066cc", "Corporate"},
		},
		Fonts: FontPair{
			Heading: "'Helvetica Neue', Arial, sans-serif",
			Body:    "'Helvetica Neue', Arial, sans-serif",
		},
	},
	"tech": {
		ColorSchemes: [3]ColorScheme{
			{"#00d4ff", "#090979", "#ff0099", "Cyber"},
			{"#1a1a2e", "#16213e", "#0f3460", "Matrix"},
			{"#00fff5", "#7b2cbf", "#ff006e", "Neon"},
		},
		Fonts: FontPair{
			Heading: "'Space Grotesk', monospace",
			Body:    "'IBM Plex Sans', sans-serif",
		},
	},
}

// TemplateFor возвращает пресет стиля по имени.
// Неизвестный стиль — ErrUnknownStyle.
func TemplateFor(style string) (Template, error) {
	t, ok := templates[style]
	if !ok {
		return Template{}, serr.ErrUnknownStyle
	}
	return t, nil
}

// Scheme возвращает цветовую схему пресета по номеру.
// Номер вне диапазона откатывается на нулевую схему.
func (t Template) Scheme(colorIndex int) ColorScheme {
	if colorIndex < 0 || colorIndex >= len(t.ColorSchemes) {
		colorIndex = 0
	}
	return t.ColorSchemes[colorIndex]
}

// Styles возвращает имена всех поддерживаемых стилей.
func Styles() []string {
	return []string{"modern", "elegant", "playful", "minimal", "tech"}
}
