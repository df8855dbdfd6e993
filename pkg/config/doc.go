// Package config provides configuration management for the ChemSpider SDK.
//
// # Basic Configuration
//
// The zero Config is usable: Validate fills the user agent and timeouts, and
// the addressing falls back to http://www.chemspider.com:80/%s.asmx/%s.
//
//	cfg := &config.Config{Token: "YOUR_TOKEN"}
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//
// # Addressing
//
// Route every call through a proxy or another deployment:
//
//	cfg.Addressing = model.Addressing{
//		Scheme:     "https",
//		Host:       "proxy.example.com",
//		PathFormat: "/chemspider/%s/%s",
//	}
//
// The port defaults to 443 for https and 80 otherwise.
//
// # Files and Environment
//
// Load reads a YAML file:
//
//	addressing:
//	  scheme: https
//	  host: proxy.example.com
//	user_agent: my-tool/1.0
//	token: YOUR_TOKEN
//	catalogs: [extra-services.yaml]
//	timeouts:
//	  http: 45s
//
// LoadEnv reads dotenv files and CHEMSPIDER_* variables instead. Both apply
// environment overrides (see ApplyEnv) before validating.
//
// # Thread Safety
//
// Config instances should be created once and not modified after passing to
// sdk.NewSDK. The Config is read-only during SDK operations.
package config
