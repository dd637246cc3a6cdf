package devops

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type SMTPEntry struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	From     string `yaml:"from"`
}

type SESEntry struct {
	From string `yaml:"from"`
}

type SlackEntry struct {
	ChannelID string `yaml:"channel_id"`
}

type Config struct {
	Addr       string     `yaml:"addr"`
	DataDir    string     `yaml:"data_dir"`
	AdminEmail string     `yaml:"admin_email"`
	Mailer     string     `yaml:"mailer"` // "smtp" or "ses"
	SMTP       SMTPEntry  `yaml:"smtp"`
	SES        SESEntry   `yaml:"ses"`
	Slack      SlackEntry `yaml:"slack"`
}

var (
	once    sync.Once
	cfg     Config
	loadErr error
)

// LoadConfig reads the YAML configuration once per process. The file path
// comes from ALMS_CONFIG (default alms.yaml); a .env alongside the binary
// is folded into the environment first so secrets stay out of the file.
// Secrets themselves are env-only: ALMS_SMTP_PASSWORD, ALMS_SIGNING_SECRET,
// SLACK_BOT_TOKEN.
func LoadConfig() (Config, error) {
	once.Do(func() {
		_ = godotenv.Load()

		path := os.Getenv("ALMS_CONFIG")
		if path == "" {
			path = "alms.yaml"
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("read config: %w", err)
			return
		}

		parsed := Config{
			Addr:    ":8090",
			DataDir: "./data",
			Mailer:  "smtp",
		}
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}
		if parsed.AdminEmail == "" {
			loadErr = fmt.Errorf("config: admin_email is required")
			return
		}

		cfg = parsed
	})

	return cfg, loadErr
}
