package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidFirstMark = errors.New("first-mark must be X or O")
	ErrInvalidRounds    = errors.New("rounds must be at least 1")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Match    Match  `yaml:"match"`
	Redis    Redis  `yaml:"redis"`
}

// Match configures the games played by one run. A zero seed means "seed from the clock".
type Match struct {
	Rounds        int           `yaml:"rounds" env:"MATCH_ROUNDS" env-default:"1"`
	FirstMark     string        `yaml:"first-mark" env:"MATCH_FIRST_MARK" env-default:"X"`
	Pause         time.Duration `yaml:"pause" env:"MATCH_PAUSE" env-default:"100ms"`
	PlayerXPolicy string        `yaml:"player-x-policy" env:"MATCH_PLAYER_X_POLICY" env-default:"sequential"`
	PlayerXSeed   uint64        `yaml:"player-x-seed" env:"MATCH_PLAYER_X_SEED" env-default:"0"`
	PlayerOPolicy string        `yaml:"player-o-policy" env:"MATCH_PLAYER_O_POLICY" env-default:"random"`
	PlayerOSeed   uint64        `yaml:"player-o-seed" env:"MATCH_PLAYER_O_SEED" env-default:"0"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Match.FirstMark != "X" && that.Match.FirstMark != "O" {
		return fmt.Errorf("%w: got %q", ErrInvalidFirstMark, that.Match.FirstMark)
	}

	if that.Match.Rounds < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRounds, that.Match.Rounds)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
