package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MEMBERSHIPS"

type Config struct {
	Env        string           `mapstructure:"env"`
	Server     ServerConfig     `mapstructure:"http_server"`
	Pg         PgConfig         `mapstructure:"postgres"`
	Membership MembershipConfig `mapstructure:"membership"`
	Validation ValidationConfig `mapstructure:"validation"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
}

type ServerConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
}

type PgConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Db       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
	Migrate  bool   `mapstructure:"migrate"`
}

// URL builds a postgres connection string usable by pgx and migrate.
func (c PgConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Db, c.SSLMode)
}

type MembershipConfig struct {
	DefaultUserID int64  `mapstructure:"default_user_id"`
	AssignedBy    string `mapstructure:"assigned_by"`
}

type ValidationConfig struct {
	Mode string `mapstructure:"mode"`
}

type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("http_server.host", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.timeout", 5*time.Second)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.migrate", false)
	v.SetDefault("membership.default_user_id", 2000)
	v.SetDefault("membership.assigned_by", "")
	v.SetDefault("validation.mode", "first")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "memberships")
}

func resolvePath(cwd, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	if up, ok := findUp(cwd, p, 8); ok {
		return up
	}
	return filepath.Join(cwd, p)
}

func findUp(start, rel string, max int) (string, bool) {
	dir := start
	for i := 0; i <= max; i++ {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// loadEnvFile overloads the process environment from ENV_FILE, CONFIG_PG_PATH
// or .env/local_pg.env, whichever is found first.
func loadEnvFile(cwd string) {
	envPath := os.Getenv("ENV_FILE")
	if envPath == "" {
		envPath = os.Getenv("CONFIG_PG_PATH")
	}
	if envPath == "" {
		if up, ok := findUp(cwd, ".env/local_pg.env", 8); ok {
			envPath = up
		}
	} else {
		envPath = resolvePath(cwd, envPath)
	}
	if envPath != "" {
		_ = godotenv.Overload(envPath)
	}
}

func configPath(cwd string) (string, error) {
	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		return resolvePath(cwd, path), nil
	}
	if up, ok := findUp(cwd, "configs/local.yaml", 8); ok {
		return up, nil
	}
	if up, ok := findUp(cwd, ".env/local.yaml", 8); ok {
		return up, nil
	}
	return "", fmt.Errorf("CONFIG_PATH not set and local.yaml not found")
}

// Load reads the YAML file at path after expanding ${VAR} references, then
// applies MEMBERSHIPS_<SECTION>_<KEY> environment overrides.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadConfig(strings.NewReader(os.ExpandEnv(string(raw)))); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func LoadConfig() *Config {
	cwd, _ := os.Getwd()

	loadEnvFile(cwd)

	path, err := configPath(cwd)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
