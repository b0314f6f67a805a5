package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays the TETRIS_* variables named in the Config tags. Unset
// variables leave the current value alone. Malformed durations, booleans or
// sizes panic, same as a malformed config file.
func parseEnv(config *Config) {
	if err := cleanenv.ReadEnv(config); err != nil {
		panic(err)
	}
}
