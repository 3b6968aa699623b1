package tests

import (
	"testing"

	"github.com/IvanChernomyrdin/go-webforge/internal/scaffold/brand"
	serr "github.com/IvanChernomyrdin/go-webforge/internal/shared/errors"
)

// Все пять стилей доступны
func TestTemplateFor_AllStyles(t *testing.T) {
	for _, style := range brand.Styles() {
		tpl, err := brand.TemplateFor(style)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", style, err)
		}
		for i, scheme := range tpl.ColorSchemes {
			if scheme.Primary == "" || scheme.Secondary == "" || scheme.Accent == "" || scheme.Name == "" {
				t.Fatalf("%s: incomplete scheme %d: %+v", style, i, scheme)
			}
		}
		if tpl.Fonts.Heading == "" || tpl.Fonts.Body == "" {
			t.Fatalf("%s: incomplete fonts: %+v", style, tpl.Fonts)
		}
	}
}

func TestTemplateFor_UnknownStyle(t *testing.T) {
	_, err := brand.TemplateFor("baroque")
	if err != serr.ErrUnknownStyle {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
}

// Конкретные значения пресета modern
func TestTemplateFor_ModernValues(t *testing.T) {
	tpl, err := brand.TemplateFor("modern")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scheme := tpl.Scheme(0)
	if scheme.Name != "Purple Gradient" || scheme.Primary != "#667eea" {
		t.Fatalf("unexpected default scheme: %+v", scheme)
	}
	if tpl.Fonts.Heading != "'Inter', -apple-system, sans-serif" {
		t.Fatalf("unexpected heading font: %q", tpl.Fonts.Heading)
	}
}

// Номер схемы вне диапазона откатывается на нулевую
func TestScheme_OutOfRangeFallsBack(t *testing.T) {
	tpl, err := brand.TemplateFor("tech")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def := tpl.Scheme(0)

	for _, idx := range []int{-1, 3, 42} {
		got := tpl.Scheme(idx)
		if got != def {
			t.Fatalf("index %d: expected fallback to %+v, got %+v", idx, def, got)
		}
	}

	// валидный номер даёт другую схему
	if tpl.Scheme(1) == def {
		t.Fatalf("expected scheme 1 to differ from scheme 0")
	}
}
