package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	// Directory sources.
	DirectorySourceHTTP     = "http"
	DirectorySourcePostgres = "postgres"
	DirectorySourceStatic   = "static"

	defaultDirectoryTimeout = 10 * time.Second

	// Map defaults match the campus the screen was built for.
	defaultCenterLatitude     = 30.2895659
	defaultCenterLongitude    = -97.739267
	defaultRegionRadiusMeters = 1500.0
	defaultPinSpanDegrees     = 0.01
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

	// Postgres is only required when the directory source is "postgres".
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Directory *DirectoryConfig `json:"directory" yaml:"directory"`

	Map *MapConfig `json:"map" yaml:"map"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DirectoryConfig selects where service locations are loaded from.
type DirectoryConfig struct {
	// Source is one of "http", "postgres" or "static".
	Source string `json:"source" yaml:"source"`

	// Endpoint is the base URL of the remote directory (http source).
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Timeout bounds a single directory request (http source).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Categories restricts the initial load. Empty loads every category.
	Categories []string `json:"categories" yaml:"categories"`

	// Locations is the directory itself for the static source.
	Locations []StaticLocation `json:"locations" yaml:"locations"`
}

// StaticLocation is a directory entry declared in configuration.
type StaticLocation struct {
	Name      string  `json:"name" yaml:"name"`
	Category  string  `json:"category" yaml:"category"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// MapConfig controls how the map is framed.
type MapConfig struct {
	// Fallback center when no location has a usable coordinate.
	DefaultCenterLatitude  float64 `json:"defaultCenterLatitude" yaml:"defaultCenterLatitude"`
	DefaultCenterLongitude float64 `json:"defaultCenterLongitude" yaml:"defaultCenterLongitude"`

	// Radius of the region framed around the averaged center.
	RegionRadiusMeters float64 `json:"regionRadiusMeters" yaml:"regionRadiusMeters"`

	// Span in degrees shown after dropping a pin.
	PinSpanDegrees float64 `json:"pinSpanDegrees" yaml:"pinSpanDegrees"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// A .env next to the config file (or in the working directory) seeds the environment.
	// Variables already set in the process win.
	loadDotEnv(filepath.Dir(configFile), defaultPath)

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DIRECTORY_ENDPOINT -> directory.endpoint, MAP_PINSPANDEGREES -> map.pinSpanDegrees
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections and rejects combinations that cannot start.
func (cfg *Config) applyDefaults() error {
	if cfg.Directory == nil {
		cfg.Directory = &DirectoryConfig{Source: DirectorySourceStatic}
	}
	cfg.Directory.Source = strings.ToLower(strings.TrimSpace(cfg.Directory.Source))
	if cfg.Directory.Source == "" {
		cfg.Directory.Source = DirectorySourceStatic
	}
	if cfg.Directory.Timeout <= 0 {
		cfg.Directory.Timeout = defaultDirectoryTimeout
	}

	switch cfg.Directory.Source {
	case DirectorySourceHTTP:
		if cfg.Directory.Endpoint == "" {
			return errors.New("directory.endpoint is required for the http source")
		}
	case DirectorySourcePostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres source")
		}
	case DirectorySourceStatic:
	default:
		return errors.Errorf("unknown directory source: %s", cfg.Directory.Source)
	}

	if cfg.Map == nil {
		cfg.Map = DefaultMapConfig()
	}
	if cfg.Map.DefaultCenterLatitude == 0 && cfg.Map.DefaultCenterLongitude == 0 {
		cfg.Map.DefaultCenterLatitude = defaultCenterLatitude
		cfg.Map.DefaultCenterLongitude = defaultCenterLongitude
	}
	if cfg.Map.RegionRadiusMeters <= 0 {
		cfg.Map.RegionRadiusMeters = defaultRegionRadiusMeters
	}
	if cfg.Map.PinSpanDegrees <= 0 {
		cfg.Map.PinSpanDegrees = defaultPinSpanDegrees
	}

	return nil
}

// DefaultMapConfig frames the campus the directory describes.
func DefaultMapConfig() *MapConfig {
	return &MapConfig{
		DefaultCenterLatitude:  defaultCenterLatitude,
		DefaultCenterLongitude: defaultCenterLongitude,
		RegionRadiusMeters:     defaultRegionRadiusMeters,
		PinSpanDegrees:         defaultPinSpanDegrees,
	}
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// loadDotEnv loads the first .env found. godotenv.Load never overrides existing variables.
func loadDotEnv(dirs ...string) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err == nil {
			return
		}
	}
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
