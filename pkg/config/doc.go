// Package config provides configuration management for the Vipps SDK.
//
// Config holds the merchant credentials, the target environment and the
// client settings shared by all endpoint clients.
//
// # Basic Configuration
//
//	cfg := &config.Config{
//		ClientID:             "YOUR_CLIENT_ID",
//		ClientSecret:         "YOUR_CLIENT_SECRET",
//		SubscriptionKey:      "YOUR_SUBSCRIPTION_KEY",
//		MerchantSerialNumber: "123456",
//		UseTestMode:          true,
//	}
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("invalid config: %v", err)
//	}
//
// # Hosts
//
// BaseURL resolves the API host once, in this order:
//
//   - Hostname, when set (for local stubs and proxies)
//   - https://apitest.vipps.no when UseTestMode is true
//   - https://api.vipps.no otherwise
//
// The process environment is never read implicitly. To take settings from
// the environment use FromEnv, or LoadEnvFile for a .env file:
//
//	cfg, err := config.FromEnv(nil) // os.LookupEnv
//	cfg, err := config.LoadEnvFile(".env")
//
// Recognized variables are VIPPS_CLIENT_ID, VIPPS_CLIENT_SECRET,
// VIPPS_SUBSCRIPTION_KEY, VIPPS_MERCHANT_SERIAL_NUMBER, VIPPS_PLUGIN_NAME,
// VIPPS_PLUGIN_VERSION, VIPPS_TEST_MODE, VIPPS_HOSTNAME and VIPPS_DEBUG.
//
// # YAML
//
// LoadFile decodes the same structure from YAML:
//
//	client_id: YOUR_CLIENT_ID
//	client_secret: YOUR_CLIENT_SECRET
//	subscription_key: YOUR_SUBSCRIPTION_KEY
//	merchant_serial_number: "123456"
//	use_test_mode: true
//	timeouts:
//	  http: 10s
//	retry:
//	  max_retries: 2
//	  initial_interval: 500ms
//
// # Defaults
//
// Validate fills zero values:
//
//	Timeouts.HTTP:         30s
//	Retry.MaxRetries:      4 (five attempts in total)
//	Retry.InitialInterval: 1s
//	Retry.MaxInterval:     30s
//	Retry.Multiplier:      2
//
// # Thread Safety
//
// Config instances should be created once and not modified after passing
// to sdk.New.
package config
