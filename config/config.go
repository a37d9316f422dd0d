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
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultPort               = 10000
	defaultMaxRequestBodySize = "11M"
	defaultBcryptCost         = 10
	defaultTokenTTL           = 24 * time.Hour
	defaultMaxUploadSize      = 10 * 1024 * 1024
	defaultAssetFolder        = "agadev"
	defaultTranslationTimeout = 10 * time.Second

	// multipartHeadroom is the body size allowed above assets.maxUploadSize for boundaries and part headers.
	multipartHeadroom = 256 * 1024

	// EnvProduction is the env.env value that suppresses error details.
	EnvProduction = "production"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Database takes precedence over Postgres when URL is set (e.g. DATABASE_URL on a PaaS).
	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Assets configures the external asset host. An empty BucketURL stores placeholder URLs.
	Assets *AssetsConfig `json:"assets" yaml:"assets"`

	Translation *TranslationConfig `json:"translation" yaml:"translation"`

	// Redis backs the token revocation set. In-memory storage is used when unset.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for content event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for share codes of published content
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Maintenance *MaintenanceConfig `json:"maintenance" yaml:"maintenance"`
}

// DatabaseConfig holds a single connection string and migration switch.
type DatabaseConfig struct {
	URL         string `json:"url" yaml:"url"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// AssetsConfig describes where uploaded media are stored.
type AssetsConfig struct {
	// BucketURL is a gocloud.dev blob URL: s3://bucket?region=..., gs://bucket, file:///path, mem://
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	Folder        string `json:"folder" yaml:"folder"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// TranslationConfig configures the machine translation provider.
type TranslationConfig struct {
	Provider string        `json:"provider" yaml:"provider"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	APIURL   string        `json:"apiUrl" yaml:"apiUrl"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// RedisConfig holds the redis connection URL.
type RedisConfig struct {
	URL    string `json:"url" yaml:"url"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL is the public website the codes point to, e.g. https://agadev-gabon.com
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// MaintenanceConfig holds defaults for the repair endpoints.
type MaintenanceConfig struct {
	DefaultCoverURL string `json:"defaultCoverUrl" yaml:"defaultCoverUrl"`
}

// IsProduction reports whether error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// LoadWithEnv loads .yaml files through koanf.
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: SECRETKEY_ACCESS -> secretKey.access, DATABASE_URL -> database.url
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fails fast on settings the service cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey.Access) == "" {
		return errors.New("secretKey.access (SECRETKEY_ACCESS) must be provided")
	}

	hasURL := c.Database != nil && strings.TrimSpace(c.Database.URL) != ""
	if !hasURL && c.Postgres == nil {
		return errors.New("a database connection must be configured (database.url or postgres)")
	}

	return c.validateBodyLimit()
}

// validateBodyLimit keeps an upload at assets.maxUploadSize under the HTTP body limit,
// so oversized files are reported as FILE_TOO_LARGE rather than a bare 413.
func (c *Config) validateBodyLimit() error {
	raw := strings.TrimSpace(c.HTTP.MaxRequestBodySize)
	if raw == "" || c.Assets == nil {
		return nil
	}

	limit, err := bytes.Parse(raw)
	if err != nil {
		return errors.Wrapf(err, "http.maxRequestBodySize %q is not a valid size", raw)
	}
	if limit < c.Assets.MaxUploadSize+multipartHeadroom {
		return errors.Errorf("http.maxRequestBodySize (%d bytes) must exceed assets.maxUploadSize (%d bytes) by at least %d bytes",
			limit, c.Assets.MaxUploadSize, multipartHeadroom)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}

	if c.Assets == nil {
		c.Assets = &AssetsConfig{}
	}
	if c.Assets.MaxUploadSize == 0 {
		c.Assets.MaxUploadSize = defaultMaxUploadSize
	}
	if c.Assets.Folder == "" {
		c.Assets.Folder = defaultAssetFolder
	}

	if c.Translation != nil && c.Translation.Timeout == 0 {
		c.Translation.Timeout = defaultTranslationTimeout
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
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
