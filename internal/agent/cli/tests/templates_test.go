package tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-webforge/internal/agent/cli"
)

func TestTemplates_ListsAllTemplatesSorted(t *testing.T) {
	cmd := cli.NewTemplatesCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	for _, name := range []string{"blog", "booking-system", "ecommerce", "landing-page", "portfolio", "saas-app"} {
		if !strings.Contains(got, name) {
			t.Fatalf("expected template %q in output, got %q", name, got)
		}
	}

	// сортировка по имени: blog раньше portfolio
	if strings.Index(got, "blog") > strings.Index(got, "portfolio") {
		t.Fatalf("expected sorted output, got %q", got)
	}
}

func TestTemplates_DetailShowsSchema(t *testing.T) {
	cmd := cli.NewTemplatesCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"ecommerce"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	for _, sub := range []string{
		"Name: ecommerce",
		"Type: fullstack",
		"NeedsDatabase: true",
		"Schema: users, products, orders, cart",
	} {
		if !strings.Contains(got, sub) {
			t.Fatalf("expected output to contain %q, got %q", sub, got)
		}
	}
}

func TestTemplates_StaticDetailHasNoSchema(t *testing.T) {
	cmd := cli.NewTemplatesCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"portfolio"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "NeedsDatabase: false") {
		t.Fatalf("expected NeedsDatabase: false, got %q", got)
	}
	if strings.Contains(got, "Schema:") {
		t.Fatalf("expected no schema for static template, got %q", got)
	}
}

func TestTemplates_Unknown_ReturnsError(t *testing.T) {
	cmd := cli.NewTemplatesCmd()
	cmd.SetArgs([]string{"no-such-template"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), `unknown template "no-such-template"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}
