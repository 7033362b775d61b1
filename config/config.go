package config

import (
	"os"
	"path/filepath"
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

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the campaign dedup lock.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Menu configuration for the NEIS school-meals API
	Menu *MenuConfig `json:"menu" yaml:"menu"`

	// Notify tunes dispatch batching and the dedup window
	Notify NotifyConfig `json:"notify" yaml:"notify"`

	// Scheduler configuration for meal-time triggers and the reservation poll
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// PubSub configuration for campaign audit events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for the app install QR
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// AppFiles configuration for app binary distribution
	AppFiles *AppFilesConfig `json:"appFiles" yaml:"appFiles"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the connection for the dedup lock store.
type RedisConfig struct {
	// URL format: redis://[:password@]host:port[/db]
	URL string `json:"url" yaml:"url"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// MenuConfig defines the NEIS open API parameters used to fetch daily menus.
type MenuConfig struct {
	BaseURL    string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey     string        `json:"apiKey" yaml:"apiKey"`
	OfficeCode string        `json:"officeCode" yaml:"officeCode"`
	SchoolCode string        `json:"schoolCode" yaml:"schoolCode"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// NotifyConfig tunes the batch dispatcher and the dedup gate.
type NotifyConfig struct {
	// BatchSize is the number of tokens per provider call (FCM caps at 500).
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// BatchWorkers bounds concurrent provider calls.
	BatchWorkers int `json:"batchWorkers" yaml:"batchWorkers"`

	// PushTimeout bounds a single provider call.
	PushTimeout time.Duration `json:"pushTimeout" yaml:"pushTimeout"`

	// DedupTTL is how long a dispatched campaign's lock key lingers.
	DedupTTL time.Duration `json:"dedupTtl" yaml:"dedupTtl"`

	// MatchWorkers bounds concurrent per-user preference matching.
	MatchWorkers int `json:"matchWorkers" yaml:"matchWorkers"`
}

// SchedulerConfig defines the fixed meal-time triggers and the minute poll.
type SchedulerConfig struct {
	// Timezone of the meal times, e.g. "Asia/Seoul".
	Timezone string `json:"timezone" yaml:"timezone"`

	// Local times in "HH:MM" form.
	MorningAt string `json:"morningAt" yaml:"morningAt"`
	LunchAt   string `json:"lunchAt" yaml:"lunchAt"`
	DinnerAt  string `json:"dinnerAt" yaml:"dinnerAt"`

	// PollInterval for due reserved campaigns.
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
}

// PubSubConfig defines Pub/Sub configuration for audit event publishing
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
	InstallURL           string `json:"installUrl" yaml:"installUrl"`
}

// AppFilesConfig defines where uploaded app binaries are stored.
type AppFilesConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. "file://./uploads" or "gs://bucket".
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
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
			// Example: REDIS_URL -> redis.url, FIREBASE_PROJECTID -> firebase.projectId
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

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Notify.BatchSize <= 0 {
		cfg.Notify.BatchSize = 500
	}
	if cfg.Notify.BatchWorkers <= 0 {
		cfg.Notify.BatchWorkers = 4
	}
	if cfg.Notify.PushTimeout <= 0 {
		cfg.Notify.PushTimeout = 10 * time.Second
	}
	if cfg.Notify.DedupTTL <= 0 {
		cfg.Notify.DedupTTL = 30 * time.Second
	}
	if cfg.Notify.MatchWorkers <= 0 {
		cfg.Notify.MatchWorkers = 8
	}
	if cfg.Scheduler.Timezone == "" {
		cfg.Scheduler.Timezone = "Asia/Seoul"
	}
	if cfg.Scheduler.MorningAt == "" {
		cfg.Scheduler.MorningAt = "07:30"
	}
	if cfg.Scheduler.LunchAt == "" {
		cfg.Scheduler.LunchAt = "12:20"
	}
	if cfg.Scheduler.DinnerAt == "" {
		cfg.Scheduler.DinnerAt = "18:00"
	}
	if cfg.Scheduler.PollInterval <= 0 {
		cfg.Scheduler.PollInterval = time.Minute
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
