// Package catalog содержит статическую конфигурацию скаффолдинга:
// шаблоны проектов, таблицы ключевых слов для маршрутизации агентов
// и пресеты фирменных стилей.
//
// Каталог — неизменяемое типизированное значение, собираемое один раз
// при старте процесса. Никакое поведение не зависит от его мутации
// в рантайме; хендлеры и CLI получают его явно, а не из глобалов.
package catalog

// ProjectType — тип проекта: статический сайт или fullstack-приложение.
type ProjectType string

const (
	TypeStatic    ProjectType = "static"
	TypeFullstack ProjectType = "fullstack"
)

// Agent — имя агента-генератора, участвующего в сборке проекта.
type Agent string

const (
	AgentGraphicDesign  Agent = "graphic-design"
	AgentWebsiteBuilder Agent = "website-builder"
	AgentFullstack      Agent = "fullstack"
	AgentDatabase       Agent = "database"
)

// ProjectTemplate описывает один шаблон проекта.
type ProjectTemplate struct {
	// Type — static|fullstack.
	Type ProjectType
	// NeedsDatabase — нужна ли проекту база данных.
	NeedsDatabase bool
	// Agents — агенты, участвующие в генерации проекта.
	Agents []Agent
	// Schema — таблицы схемы БД (пусто для статических проектов).
	Schema []string
}

// BrandStyle — пресет фирменного стиля для быстрого старта.
type BrandStyle struct {
	Description string
	Colors      []string
	Fonts       FontPair
}

// FontPair — пара шрифтов: заголовки и основной текст.
type FontPair struct {
	Heading string
	Body    string
}

// DeploymentSettings — настройки деплоя генерируемых проектов.
type DeploymentSettings struct {
	AutoPreview         bool
	ConfirmBeforeDeploy bool
	BuildCommand        string
	OutputDir           string
}

// FeatureFlags — флаги возможностей генерируемых проектов.
type FeatureFlags struct {
	MobileResponsive bool
	SEOOptimization  bool
	Analytics        bool
	Security         bool
	Caching          bool
}

// Catalog — корневое значение всей статической конфигурации.
type Catalog struct {
	Templates  map[string]ProjectTemplate
	Keywords   map[Agent][]string
	AutoEnable map[string][]Agent
	Styles     map[string]BrandStyle
	Deployment DeploymentSettings
	Features   FeatureFlags
}

// defaultCatalog собирается один раз; наружу отдаётся только через Default().
var defaultCatalog = &Catalog{
	Templates: map[string]ProjectTemplate{
		"landing-page": {
			Type:   TypeStatic,
			Agents: []Agent{AgentGraphicDesign, AgentWebsiteBuilder},
		},
		"blog": {
			Type:          TypeStatic,
			NeedsDatabase: true,
			Agents:        []Agent{AgentGraphicDesign, AgentWebsiteBuilder, AgentDatabase},
			Schema:        []string{"users", "posts", "comments"},
		},
		"ecommerce": {
			Type:          TypeFullstack,
			NeedsDatabase: true,
			Agents:        []Agent{AgentGraphicDesign, AgentWebsiteBuilder, AgentDatabase, AgentFullstack},
			Schema:        []string{"users", "products", "orders", "cart"},
		},
		"saas-app": {
			Type:          TypeFullstack,
			NeedsDatabase: true,
			Agents:        []Agent{AgentGraphicDesign, AgentFullstack, AgentDatabase},
			Schema:        []string{"users", "subscriptions", "items"},
		},
		"booking-system": {
			Type:          TypeFullstack,
			NeedsDatabase: true,
			Agents:        []Agent{AgentGraphicDesign, AgentWebsiteBuilder, AgentDatabase, AgentFullstack},
			Schema:        []string{"users", "bookings", "availability"},
		},
		"portfolio": {
			Type:   TypeStatic,
			Agents: []Agent{AgentGraphicDesign, AgentWebsiteBuilder},
		},
	},

	Keywords: map[Agent][]string{
		AgentGraphicDesign: {
			"logo", "branding", "colors", "design", "brand", "visual",
			"graphics", "identity", "style", "theme",
		},
		AgentWebsiteBuilder: {
			"website", "landing page", "homepage", "site", "web",
			"portfolio", "blog", "pages",
		},
		AgentFullstack: {
			"app", "application", "dashboard", "admin", "login",
			"signup", "authentication", "user accounts", "api",
		},
		AgentDatabase: {
			"database", "data", "storage", "save", "records",
			"users", "products", "orders", "store data",
		},
	},

	AutoEnable: map[string][]Agent{
		"ecommerce":    {AgentGraphicDesign, AgentWebsiteBuilder, AgentDatabase, AgentFullstack},
		"blog":         {AgentGraphicDesign, AgentWebsiteBuilder, AgentDatabase},
		"landing-page": {AgentGraphicDesign, AgentWebsiteBuilder},
		"saas-app":     {AgentGraphicDesign, AgentFullstack, AgentDatabase},
	},

	Styles: map[string]BrandStyle{
		"modern": {
			Description: "Clean gradients, modern sans-serif fonts",
			Colors:      []string{"#667eea", "#764ba2", "#f093fb"},
			Fonts:       FontPair{Heading: "Inter", Body: "Inter"},
		},
		"elegant": {
			Description: "Luxury serif fonts, sophisticated colors",
			Colors:      []string{"#1a1a2e", "#c9a96e", "#f3826f"},
			Fonts:       FontPair{Heading: "Playfair Display", Body: "Lato"},
		},
		"playful": {
			Description: "Bright colors, friendly rounded fonts",
			Colors:      []string{"#ff6b6b", "#4ecdc4", "#ffe66d"},
			Fonts:       FontPair{Heading: "Poppins", Body: "Poppins"},
		},
		"minimal": {
			Description: "Clean, simple, monochrome",
			Colors:      []string{"#000000", "#ffffff", "#666666"},
			Fonts:       FontPair{Heading: "Helvetica Neue", Body: "Helvetica Neue"},
		},
		"tech": {
			Description: "Futuristic, cyber, high-tech",
			Colors:      []string{"#00d4ff", "#090979", "#ff0099"},
			Fonts:       FontPair{Heading: "Space Grotesk", Body: "IBM Plex Sans"},
		},
	},

	Deployment: DeploymentSettings{
		AutoPreview:         true,
		ConfirmBeforeDeploy: false,
		BuildCommand:        "npm run build",
		OutputDir:           ".",
	},

	Features: FeatureFlags{
		MobileResponsive: true,
		SEOOptimization:  true,
		Analytics:        false,
		Security:         true,
		Caching:          true,
	},
}

// Default возвращает каталог по умолчанию.
//
// Значение общее на весь процесс и не должно мутироваться.
func Default() *Catalog {
	return defaultCatalog
}

// Template возвращает шаблон проекта по имени.
func (c *Catalog) Template(name string) (ProjectTemplate, bool) {
	t, ok := c.Templates[name]
	return t, ok
}

// TemplateNames возвращает имена всех шаблонов (порядок не гарантируется).
func (c *Catalog) TemplateNames() []string {
	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	return names
}
