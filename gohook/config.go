package gohook

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings consumed by the pipeline components.
// Values resolve in order: built-in defaults, optional YAML file,
// environment variables.
type Config struct {
	// AutoConfirmSubscriptions enables the automatic SNS
	// subscription-confirmation handshake. Default true.
	AutoConfirmSubscriptions bool

	// WebhookSecrets lists accepted "user:password" basic-auth pairs.
	// A non-empty list means a shared secret is configured and the
	// HTTP boundary authenticates every request before the pipeline
	// runs.
	WebhookSecrets []string

	BasicAuthRealm string
	ConfirmTimeout time.Duration

	HTTPPort int

	AWSProfile     string
	SQSQueueURL    string
	SQSWaitSeconds int

	KafkaBrokers []string
	KafkaTopic   string

	RedisAddr string
	DedupTTL  time.Duration
}

// SharedSecretConfigured reports whether callers must prove possession
// of a pre-shared secret. The subscription handshake refuses to
// auto-confirm without it.
func (c Config) SharedSecretConfigured() bool {
	return len(c.WebhookSecrets) > 0
}

type configFile struct {
	Webhook struct {
		AutoConfirmSubscriptions *bool    `yaml:"auto_confirm_subscriptions"`
		Secrets                  []string `yaml:"secrets"`
		BasicAuthRealm           string   `yaml:"basic_auth_realm"`
		ConfirmTimeoutSeconds    int      `yaml:"confirm_timeout_seconds"`
	} `yaml:"webhook"`
	Server struct {
		HTTPPort int `yaml:"http_port"`
	} `yaml:"server"`
	AWS struct {
		Profile        string `yaml:"profile"`
		SQSQueueURL    string `yaml:"sqs_queue_url"`
		SQSWaitSeconds int    `yaml:"sqs_wait_seconds"`
	} `yaml:"aws"`
	Kafka struct {
		Brokers []string `yaml:"brokers"`
		Topic   string   `yaml:"topic"`
	} `yaml:"kafka"`
	Redis struct {
		Addr          string `yaml:"addr"`
		DedupTTLHours int    `yaml:"dedup_ttl_hours"`
	} `yaml:"redis"`
}

// LoadConfig loads settings from the YAML file at path, if it exists,
// then applies environment overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		AutoConfirmSubscriptions: true,
		BasicAuthRealm:           "Amazon SES webhook",
		ConfirmTimeout:           30 * time.Second,
		HTTPPort:                 8080,
		SQSWaitSeconds:           20,
		KafkaTopic:               "ses-tracking-events",
		DedupTTL:                 24 * time.Hour,
	}

	if raw, err := os.ReadFile(path); err == nil {
		var f configFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if f.Webhook.AutoConfirmSubscriptions != nil {
			cfg.AutoConfirmSubscriptions = *f.Webhook.AutoConfirmSubscriptions
		}
		if len(f.Webhook.Secrets) > 0 {
			cfg.WebhookSecrets = f.Webhook.Secrets
		}
		if f.Webhook.BasicAuthRealm != "" {
			cfg.BasicAuthRealm = f.Webhook.BasicAuthRealm
		}
		if f.Webhook.ConfirmTimeoutSeconds > 0 {
			cfg.ConfirmTimeout = time.Duration(f.Webhook.ConfirmTimeoutSeconds) * time.Second
		}
		if f.Server.HTTPPort > 0 {
			cfg.HTTPPort = f.Server.HTTPPort
		}
		if f.AWS.Profile != "" {
			cfg.AWSProfile = f.AWS.Profile
		}
		if f.AWS.SQSQueueURL != "" {
			cfg.SQSQueueURL = f.AWS.SQSQueueURL
		}
		if f.AWS.SQSWaitSeconds > 0 {
			cfg.SQSWaitSeconds = f.AWS.SQSWaitSeconds
		}
		if len(f.Kafka.Brokers) > 0 {
			cfg.KafkaBrokers = f.Kafka.Brokers
		}
		if f.Kafka.Topic != "" {
			cfg.KafkaTopic = f.Kafka.Topic
		}
		if f.Redis.Addr != "" {
			cfg.RedisAddr = f.Redis.Addr
		}
		if f.Redis.DedupTTLHours > 0 {
			cfg.DedupTTL = time.Duration(f.Redis.DedupTTLHours) * time.Hour
		}
	}

	cfg.AutoConfirmSubscriptions = envBool("AUTO_CONFIRM_SUBSCRIPTIONS", cfg.AutoConfirmSubscriptions)
	cfg.WebhookSecrets = envList("WEBHOOK_SECRETS", cfg.WebhookSecrets)
	cfg.BasicAuthRealm = envString("BASIC_AUTH_REALM", cfg.BasicAuthRealm)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.AWSProfile = envString("AWS_PROFILE", cfg.AWSProfile)
	cfg.SQSQueueURL = envString("SQS_QUEUE_URL", cfg.SQSQueueURL)
	cfg.KafkaBrokers = envList("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaTopic = envString("KAFKA_TOPIC", cfg.KafkaTopic)
	cfg.RedisAddr = envString("REDIS_ADDR", cfg.RedisAddr)
	return cfg, nil
}

func envString(name, fallback string) string {
	if raw := os.Getenv(name); raw != "" {
		return raw
	}
	return fallback
}

func envInt(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envBool(name string, fallback bool) bool {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envList(name string, fallback []string) []string {
	if raw := os.Getenv(name); raw != "" {
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
