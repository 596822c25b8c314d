package entities

// Singleton keys of the settings table.
const (
	CompanyKey  = "company"
	SettingsKey = "settings"
)

// Company is the singleton business profile printed on every quote.
// LogoDataURL carries an embedded image as a data URL and is treated as opaque text.
type Company struct {
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	LogoDataURL string `json:"logoDataUrl"`
}

// Settings is the singleton application configuration.
//
// Currency and PDFTemplate are informational: formatting is fixed to pt-BR / BRL.
type Settings struct {
	Currency       string `json:"currency"`
	NextOsSequence int    `json:"nextOsSequence" validate:"gte=1"`
	PDFTemplate    string `json:"pdfTemplate"`
}

// AppData is the backup/restore boundary object. It is never persisted as a unit.
type AppData struct {
	Company  Company        `json:"company"`
	Settings Settings       `json:"settings"`
	Services []CatalogEntry `json:"services" validate:"required,unique=ID,dive"`
	Quotes   []Quote        `json:"quotes" validate:"required,unique=ID,dive"`
}

func DefaultCompany() Company {
	return Company{
		Name:  "ArClean",
		Owner: "Allan Clauzen",
	}
}

func DefaultSettings() Settings {
	return Settings{
		Currency:       "BRL",
		NextOsSequence: 1,
		PDFTemplate:    "detailed",
	}
}

// DefaultAppData is the first-run content written by SeedIfEmpty.
func DefaultAppData() AppData {
	return AppData{
		Company:  DefaultCompany(),
		Settings: DefaultSettings(),
		Services: SeedCatalog(),
		Quotes:   []Quote{},
	}
}
