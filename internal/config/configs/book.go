package configs

// Book is the static book identity the launchers advertise. It stands
// in for a catalog lookup until the catalog service integration lands.
type Book struct {
	Title       string   `env:"TITLE" envDefault:"The Darkweaver Chronicles"`
	AuthorName  string   `env:"AUTHOR_NAME" envDefault:"J.R. Writer"`
	Genre       string   `env:"GENRE" envDefault:"fantasy"`
	ASIN        string   `env:"ASIN" envDefault:"B0XXXXXXXX"`
	StoreURL    string   `env:"STORE_URL" envDefault:"https://amazon.com/dp/B0XXXXXXXX"`
	CoverURL    string   `env:"COVER_URL" envDefault:"https://example.com/cover.jpg"`
	Description string   `env:"DESCRIPTION" envDefault:"An epic fantasy adventure..."`
	Keywords    []string `env:"KEYWORDS" envDefault:"fantasy,epic fantasy,dragons,magic"`
}
