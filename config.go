package main

type Config struct {
	HTTPPort     string `yaml:"httpPort"`     // listen address, e.g. ":3000"
	FiatAPIURL   string `yaml:"fiatApiUrl"`   // fiat rate service base URL; empty selects the public endpoint
	CryptoAPIURL string `yaml:"cryptoApiUrl"` // pricing service base URL; empty selects the public endpoint
	CryptoAPIKey string `yaml:"cryptoApiKey"` // optional demo api key for the pricing service
	DBUsername   string `yaml:"dbUsername"`
	DBPassword   string `yaml:"dbPassword"`
	DBPort       string `yaml:"dbPort"`
	DBHost       string `yaml:"dbHost"` // empty disables postgres; preferences stay in memory
	DBName       string `yaml:"dbName"`
}
