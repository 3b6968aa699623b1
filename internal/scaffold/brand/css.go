// Генератор фирменного CSS
package brand

import (
	"fmt"
	"strings"
)

// GenerateCSS собирает полный фирменный CSS для компании:
// переменные цветов, типографики, градиентов, отступов, радиусов и
// теней, плюс базовая типографика и набор утилитарных классов.
//
// colorIndex выбирает цветовую схему стиля; номер вне диапазона
// откатывается на нулевую. Неизвестный стиль — ErrUnknownStyle.
func GenerateCSS(businessName, style string, colorIndex int) (string, error) {
	t, err := TemplateFor(style)
	if err != nil {
		return "", err
	}
	scheme := t.Scheme(colorIndex)

	return strings.TrimSpace(fmt.Sprintf(`
/* Brand: %s */
/* Style: %s */
/* Color Scheme: %s */

:root {
  /* Brand Colors */
  --brand-primary: %s;
  --brand-secondary: %s;
  --brand-accent: %s;

  /* Typography */
  --font-heading: %s;
  --font-body: %s;

  /* Gradients */
  --gradient-primary: linear-gradient(135deg, %s 0%%, %s 100%%);
  --gradient-accent: linear-gradient(135deg, %s 0%%, %s 100%%);

  /* Spacing */
  --space-xs: 0.5rem;
  --space-sm: 1rem;
  --space-md: 1.5rem;
  --space-lg: 2rem;
  --space-xl: 3rem;

  /* Border Radius */
  --radius-sm: 0.25rem;
  --radius-md: 0.5rem;
  --radius-lg: 1rem;
  --radius-full: 9999px;

  /* Shadows */
  --shadow-sm: 0 1px 2px 0 rgba(0, 0, 0, 0.05);
  --shadow-md: 0 4px 6px -1px rgba(0, 0, 0, 0.1);
  --shadow-lg: 0 10px 15px -3px rgba(0, 0, 0, 0.1);
  --shadow-xl: 0 20px 25px -5px rgba(0, 0, 0, 0.1);
}

/* Base Typography */
body {
  font-family: var(--font-body);
  color: #1a1a1a;
  line-height: 1.6;
}

h1, h2, h3, h4, h5, h6 {
  font-family: var(--font-heading);
  font-weight: 700;
  line-height: 1.2;
}

/* Utility Classes */
.gradient-text {
  background: var(--gradient-primary);
  -webkit-background-clip: text;
  -webkit-text-fill-color: transparent;
  background-clip: text;
}

.gradient-bg {
  background: var(--gradient-primary);
}

.btn-primary {
  background: var(--brand-primary);
  color: white;
  padding: 0.75rem 1.5rem;
  border-radius: var(--radius-md);
  border: none;
  font-weight: 600;
  cursor: pointer;
  transition: transform 0.2s;
}

.btn-primary:hover {
  transform: translateY(-2px);
  box-shadow: var(--shadow-lg);
}

.btn-gradient {
  background: var(--gradient-primary);
  color: white;
  padding: 0.75rem 1.5rem;
  border-radius: var(--radius-md);
  border: none;
  font-weight: 600;
  cursor: pointer;
  transition: transform 0.2s;
}

.btn-gradient:hover {
  transform: translateY(-2px);
  box-shadow: var(--shadow-xl);
}
`,
		businessName, style, scheme.Name,
		scheme.Primary, scheme.Secondary, scheme.Accent,
		t.Fonts.Heading, t.Fonts.Body,
		scheme.Primary, scheme.Secondary,
		scheme.Secondary, scheme.Accent,
	)), nil
}
