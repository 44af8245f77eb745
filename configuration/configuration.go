package configuration

type Configuration struct {
	Input             string `usage:"JSON file with the person records"`
	Output            string `usage:"report format: text | json"`
	Concurrent        bool   `usage:"run the phases in parallel"`
	Serve             bool   `usage:"serve the HTTP API instead of running once"`
	HttpAddr          string `usage:"HTTP address"`
	ApiKey            string `usage:"require this X-Api-Key on /v1 (empty disables auth)"`
	ApiSecret         string `usage:"require this X-Api-Secret on /v1"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	LogLevel          string `usage:"log level: debug | info | warn | error"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() *Configuration {
	return &Configuration{
		Input:    "samples.json",
		Output:   "text",
		HttpAddr: "127.0.0.1:8080",
		LogLevel: "info",
	}
}
