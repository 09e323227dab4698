package config

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config carries the settings the server and dbtool share. Values come from
// an optional YAML file, with environment variables taking precedence.
type Config struct {
	HTTPAddr  string `yaml:"http_addr"`
	DBPath    string `yaml:"db_path"`
	SeedYears int    `yaml:"seed_years"`
}

func Default() Config {
	return Config{
		HTTPAddr:  ":8080",
		DBPath:    "career_planning.db",
		SeedYears: 3,
	}
}

func ParseYAML(b []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	if c.SeedYears < 1 {
		return Config{}, errors.New("config: seed_years must be at least 1")
	}
	return c, nil
}

// Load reads the file named by CAREER_PLANNER_CONFIG when set, otherwise
// starts from defaults, then applies HTTP_ADDR, DB_PATH, and SEED_YEARS
// overrides from the environment.
func Load() (Config, error) {
	c := Default()
	if path := os.Getenv("CAREER_PLANNER_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		c, err = ParseYAML(b)
		if err != nil {
			return Config{}, err
		}
	}

	c.HTTPAddr = getenvDefault("HTTP_ADDR", c.HTTPAddr)
	c.DBPath = getenvDefault("DB_PATH", c.DBPath)
	if v := os.Getenv("SEED_YEARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, errors.New("config: SEED_YEARS must be a positive integer")
		}
		c.SeedYears = n
	}
	return c, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
