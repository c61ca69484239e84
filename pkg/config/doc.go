// Package config loads process configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more dotenv files into the environment. With no
//     arguments it reads ./.env once, ignoring a missing file.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so the parse runs once per process.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//   - ResetCache clears the cache, which tests use after changing variables.
//
// # Usage
//
//	type Settings struct {
//		Lang      string `env:"FIELDCHECK_LANG" envDefault:"en"`
//		LogLevel  string `env:"FIELDCHECK_LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"FIELDCHECK_LOG_FORMAT"`
//		Env       string `env:"FIELDCHECK_ENV" envDefault:"development"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//		log.Fatal(err)
//	}
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels and can be matched with errors.Is:
//
//   - ErrParsingConfig: env.Parse rejected the environment (missing required
//     variable, malformed number, ...). The underlying error is joined.
//   - ErrLoadingEnvFile: an explicitly named dotenv file could not be read.
//   - ErrNilPointer: Load was given a nil pointer.
//   - ErrConfigNotLoaded: the cache lost the value between parse and read,
//     which only happens when ResetCache races with Load.
package config
