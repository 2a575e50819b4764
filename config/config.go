package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/kelvinmenegasse/idp-server/pkg/constant"
)

type Config struct {
	Env      string `mapstructure:"ENV"`
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	DBURL    string `mapstructure:"DB_URL"`

	// AppDomain is used as both issuer and audience on signed tokens.
	AppDomain      string `mapstructure:"APP_DOMAIN"`
	FrontendDomain string `mapstructure:"APP_DOMAIN_FRONTEND"`

	AccessTokenSecret  string `mapstructure:"JWT_AT_SECRET"`
	RefreshTokenSecret string `mapstructure:"JWT_RT_SECRET"`
	AccessExpiryMin    int    `mapstructure:"JWT_AT_EXPIRATION_MIN"`
	RefreshExpiryMin   int    `mapstructure:"JWT_RT_EXPIRATION_MIN"`

	RecoveryKeyExpiryMin int `mapstructure:"RECOVERY_KEY_EXPIRATION_MIN"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	MailFrom     string `mapstructure:"MAIL_FROM"`
}

// Load reads configuration from the environment. DB_URL and both JWT secrets
// are required; everything else has a default.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_DOMAIN", "localhost")
	v.SetDefault("APP_DOMAIN_FRONTEND", "http://localhost:3000")
	v.SetDefault("JWT_AT_EXPIRATION_MIN", constant.DefaultAccessTokenExpiryMin)
	v.SetDefault("JWT_RT_EXPIRATION_MIN", constant.DefaultRefreshTokenExpiryMin)
	v.SetDefault("RECOVERY_KEY_EXPIRATION_MIN", constant.DefaultRecoveryKeyExpiryMin)
	v.SetDefault("SMTP_PORT", 587)

	// Bind every key we unmarshal so AutomaticEnv picks them up.
	for _, key := range []string{
		"ENV", "PORT", "LOG_LEVEL", "DB_URL",
		"APP_DOMAIN", "APP_DOMAIN_FRONTEND",
		"JWT_AT_SECRET", "JWT_RT_SECRET",
		"JWT_AT_EXPIRATION_MIN", "JWT_RT_EXPIRATION_MIN",
		"RECOVERY_KEY_EXPIRATION_MIN",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "MAIL_FROM",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	for key, val := range map[string]string{
		"DB_URL":        cfg.DBURL,
		"JWT_AT_SECRET": cfg.AccessTokenSecret,
		"JWT_RT_SECRET": cfg.RefreshTokenSecret,
	} {
		if val == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
	}

	return &cfg, nil
}
