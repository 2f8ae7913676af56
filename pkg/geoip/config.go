package geoip

// Config holds the settings needed to open a database.
type Config struct {
	// DatabasePath is a local path, or an object key when loading from S3.
	DatabasePath string `env:"GEOIP_DB_PATH" envDefault:"GeoLite2-Country.mmdb"`

	// Language selects the localized country name.
	Language string `env:"GEOIP_LANGUAGE" envDefault:"en"`
}
