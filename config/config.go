package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultAnalyticsTTL     = 300 * time.Second
	defaultManagersTTL      = 3600 * time.Second
	defaultQueryTimeout     = 15 * time.Second
	defaultTopManagersLimit = 3
	defaultDetailedRowCap   = 100
)

// Unmatched-sale policies for the import pipeline. A sale whose order has no
// roster entry is dropped, logged-and-dropped, or fails the whole batch.
const (
	UnmatchedSaleDrop = "drop"
	UnmatchedSaleWarn = "warn"
	UnmatchedSaleFail = "fail"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Import *ImportConfig `json:"import" yaml:"import"`

	Analytics *AnalyticsConfig `json:"analytics" yaml:"analytics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the cache store connection and entry lifetimes.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// AnalyticsTTL bounds cached dashboard entries; ManagersTTL bounds the
	// cached roster.
	AnalyticsTTL time.Duration `json:"analyticsTtl" yaml:"analyticsTtl"`
	ManagersTTL  time.Duration `json:"managersTtl" yaml:"managersTtl"`
}

// ImportConfig defines import pipeline behavior.
type ImportConfig struct {
	// OnUnmatchedSale selects what happens to a sale whose order id has no
	// manager roster entry: "drop" (compatible default), "warn" or "fail".
	OnUnmatchedSale string `json:"onUnmatchedSale" yaml:"onUnmatchedSale"`
}

// AnalyticsConfig defines aggregation query behavior.
type AnalyticsConfig struct {
	// TopManagersLimit truncates the manager ranking.
	TopManagersLimit int `json:"topManagersLimit" yaml:"topManagersLimit"`

	// DetailedRowCap is the fixed ceiling on detailed sale rows, independent
	// of any pagination.
	DetailedRowCap int `json:"detailedRowCap" yaml:"detailedRowCap"`

	// QueryTimeout is the explicit per-request deadline for one dashboard
	// aggregation, covering all five queries.
	QueryTimeout time.Duration `json:"queryTimeout" yaml:"queryTimeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: REDIS_ANALYTICSTTL -> redis.analyticsTtl (not redis.analyticsttl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.AnalyticsTTL <= 0 {
		cfg.Redis.AnalyticsTTL = defaultAnalyticsTTL
	}
	if cfg.Redis.ManagersTTL <= 0 {
		cfg.Redis.ManagersTTL = defaultManagersTTL
	}

	if cfg.Import == nil {
		cfg.Import = &ImportConfig{}
	}
	if cfg.Import.OnUnmatchedSale == "" {
		cfg.Import.OnUnmatchedSale = UnmatchedSaleDrop
	}

	if cfg.Analytics == nil {
		cfg.Analytics = &AnalyticsConfig{}
	}
	if cfg.Analytics.TopManagersLimit <= 0 {
		cfg.Analytics.TopManagersLimit = defaultTopManagersLimit
	}
	if cfg.Analytics.DetailedRowCap <= 0 {
		cfg.Analytics.DetailedRowCap = defaultDetailedRowCap
	}
	if cfg.Analytics.QueryTimeout <= 0 {
		cfg.Analytics.QueryTimeout = defaultQueryTimeout
	}
}

func validate(cfg *Config) error {
	switch cfg.Import.OnUnmatchedSale {
	case UnmatchedSaleDrop, UnmatchedSaleWarn, UnmatchedSaleFail:
	default:
		return errors.Errorf("unknown import.onUnmatchedSale policy: %s", cfg.Import.OnUnmatchedSale)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
