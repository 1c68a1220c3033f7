package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/diegoclair/weekend-coverage/internal/domain"
)

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageBolt   = "bolt"
)

type Config struct {
	GmailUser          string
	GmailAppPassword   string
	SMTPHost           string
	SMTPPort           int
	RecipientEmail     string
	HREmail            string
	AppURL             string
	Port               string
	StorageDriver      string
	DataFile           string
	DatabasePath       string
	BoltPath           string
	Timezone           string
	ReminderDay        int
	ReminderTime       string
	SlackBotToken      string
	SlackChannelID     string
	SlackSigningSecret string
	Debug              bool
}

func Load() *Config {
	return &Config{
		GmailUser:          getEnv("GMAIL_USER", ""),
		GmailAppPassword:   getEnv("GMAIL_APP_PASSWORD", ""),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 465),
		RecipientEmail:     getEnv("RECIPIENT_EMAIL", "coverage@example.com"),
		HREmail:            getEnv("HR_EMAIL", "hr@example.com"),
		AppURL:             strings.TrimRight(getEnv("APP_URL", "http://localhost:5000"), "/"),
		Port:               getEnv("PORT", "5000"),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
		DataFile:           getEnv("DATA_FILE", "data/submissions.json"),
		DatabasePath:       getEnv("DATABASE_PATH", "./coverage.db"),
		BoltPath:           getEnv("BOLT_PATH", "data/coverage.bolt"),
		Timezone:           getEnv("TIMEZONE", "America/New_York"),
		ReminderDay:        getEnvInt("REMINDER_DAY", domain.DefaultReminderDay),
		ReminderTime:       getEnv("REMINDER_TIME", domain.DefaultReminderTime),
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		Debug:              getEnvBool("DEBUG", false),
	}
}

// MailEnabled reports whether both sender credentials are present.
func (c *Config) MailEnabled() bool {
	return c.GmailUser != "" && c.GmailAppPassword != ""
}

// SlackEnabled reports whether the optional Slack reminder sink is configured.
func (c *Config) SlackEnabled() bool {
	return c.SlackBotToken != "" && c.SlackChannelID != ""
}

// SlashCommandsEnabled reports whether /coverage slash commands can be verified and served.
func (c *Config) SlashCommandsEnabled() bool {
	return c.SlackSigningSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
