package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"5000"`
	DatabaseURL    string `env:"DATABASE_URL,required"`
	JWTSecret      string `env:"JWT_SECRET,required"`
	JWTTTLMinutes  int    `env:"JWT_TTL_MINUTES" envDefault:"1440"`
	BcryptCost     int    `env:"BCRYPT_COST" envDefault:"10"`
	LoginMaxTries  int    `env:"LOGIN_MAX_TRIES" envDefault:"10"`
	LoginWindowMin int    `env:"LOGIN_WINDOW_MINUTES" envDefault:"10"`
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
