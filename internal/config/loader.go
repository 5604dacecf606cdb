package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"gqlug/internal/db"
)

// Server holds HTTP server configuration.
type Server struct {
	Addr        string
	CORSOrigins []string
}

// Config aggregates everything the service needs at startup.
type Config struct {
	Database db.Config
	Server   Server
}

// DefaultServer returns the default HTTP configuration.
func DefaultServer() Server {
	return Server{
		Addr:        ":8080",
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

// Load reads config.yaml from configPath, with environment overrides
// (UG_DATABASE_HOST and friends). Missing file is fine, defaults apply.
func Load(configPath string, log *logrus.Logger) (Config, error) {
	cfg := Config{
		Database: db.DefaultConfig(),
		Server:   DefaultServer(),
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("UG")

	keys := []string{
		"database.host", "database.port", "database.user",
		"database.password", "database.dbname", "database.sslmode",
		"server.addr", "server.cors_origins",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		log.WithField("path", configPath).Info("no config.yaml found, using defaults and env vars")
	} else {
		log.WithField("file", v.ConfigFileUsed()).Info("loaded configuration file")
	}

	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.cors_origins") {
		cfg.Server.CORSOrigins = v.GetStringSlice("server.cors_origins")
	}

	return cfg, nil
}
