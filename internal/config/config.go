package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIKey is the fallback credential when API_KEY is unset.
// It is public knowledge and must not be relied on outside local testing.
const DefaultAPIKey = "shakti123"

// DefaultCallbackURL is the reporting endpoint the honeypot summarises sessions to
const DefaultCallbackURL = "https://hackathon.guvi.in/api/updateHoneyPotFinalResult"

// Auth schemes
const (
	SchemeRaw    = "raw"
	SchemeBearer = "bearer"
)

// Auth describes how the honeypot credential is carried
type Auth struct {
	APIKey       string
	Header       string
	Scheme       string
	UsingDefault bool
}

// Callback configures the external reporting endpoint
type Callback struct {
	URL       string
	Timeout   time.Duration
	QueueSize int
	Workers   int
}

// Twilio configures the optional operator alert
type Twilio struct {
	AccountSID   string
	AuthToken    string
	WhatsAppFrom string
	OperatorTo   string
}

// Enabled reports whether every Twilio setting is present
func (t Twilio) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.WhatsAppFrom != "" && t.OperatorTo != ""
}

// Rules is the detection vocabulary
type Rules struct {
	Keywords     []string `yaml:"keywords"`
	Replies      []string `yaml:"replies"`
	NeutralReply string   `yaml:"neutral_reply"`
	AgentNotes   string   `yaml:"agent_notes"`
}

// DefaultRules returns the built-in detection vocabulary
func DefaultRules() Rules {
	return Rules{
		Keywords: []string{"bank", "blocked", "verify", "urgent", "account", "upi", "link"},
		Replies: []string{
			"Why is my account being suspended?",
			"Which bank is this regarding?",
			"Can you explain what verification is needed?",
			"I need more details to understand this.",
		},
		NeutralReply: "Thank you for the information.",
		AgentNotes:   "Scammer used urgency and payment redirection tactics",
	}
}

// Config holds everything main needs to wire the service
type Config struct {
	Port     string
	Auth     Auth
	Callback Callback
	Twilio   Twilio
	Rules    Rules
}

// Load reads .env (when present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - checking environment variables")
	}

	cfg := &Config{
		Port: envString("PORT", "8080"),
		Auth: Auth{
			APIKey: os.Getenv("API_KEY"),
			Scheme: strings.ToLower(envString("AUTH_SCHEME", SchemeRaw)),
		},
		Callback: Callback{
			URL:       envString("CALLBACK_URL", DefaultCallbackURL),
			Timeout:   envDuration("CALLBACK_TIMEOUT", 5*time.Second),
			QueueSize: envInt("CALLBACK_QUEUE_SIZE", 100),
			Workers:   envInt("CALLBACK_WORKERS", 2),
		},
		Twilio: Twilio{
			AccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
			WhatsAppFrom: os.Getenv("TWILIO_WHATSAPP_FROM"),
			OperatorTo:   os.Getenv("OPERATOR_WHATSAPP_TO"),
		},
		Rules: DefaultRules(),
	}

	if cfg.Auth.APIKey == "" {
		cfg.Auth.APIKey = DefaultAPIKey
		cfg.Auth.UsingDefault = true
	}

	switch cfg.Auth.Scheme {
	case SchemeRaw:
		cfg.Auth.Header = envString("API_KEY_HEADER", "x-api-key")
	case SchemeBearer:
		cfg.Auth.Header = envString("API_KEY_HEADER", "Authorization")
	default:
		return nil, fmt.Errorf("unknown AUTH_SCHEME %q", cfg.Auth.Scheme)
	}

	if path := os.Getenv("DETECTION_RULES_FILE"); path != "" {
		rules, err := LoadRules(path)
		if err != nil {
			return nil, err
		}
		cfg.Rules = rules
	}

	return cfg, nil
}

// LoadRules reads a YAML rules file; fields it leaves out keep their defaults
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes YAML rules over the defaults
func ParseRules(data []byte) (Rules, error) {
	var overlay Rules
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules file: %w", err)
	}

	rules := DefaultRules()
	if len(overlay.Keywords) > 0 {
		keywords := make([]string, 0, len(overlay.Keywords))
		for _, k := range overlay.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		rules.Keywords = keywords
	}
	if len(overlay.Replies) > 0 {
		rules.Replies = overlay.Replies
	}
	if overlay.NeutralReply != "" {
		rules.NeutralReply = overlay.NeutralReply
	}
	if overlay.AgentNotes != "" {
		rules.AgentNotes = overlay.AgentNotes
	}
	return rules, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
