package config

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Api struct {
		BaseURL string        `env:"API_BASE_URL" env-default:"https://paulohenriquedev.site/api"`
		Timeout time.Duration `env:"API_TIMEOUT" env-default:"10s"`
	}
	Session struct {
		UserID string `env:"SESSION_USER_ID"`
		Peers  string `env:"SESSION_PEERS"`
	}
	Poll struct {
		Conversation time.Duration `env:"POLL_CONVERSATION_INTERVAL" env-default:"3s"`
		ChatList     time.Duration `env:"POLL_CHAT_LIST_INTERVAL" env-default:"5s"`
		StatusFeed   time.Duration `env:"POLL_STATUS_FEED_INTERVAL" env-default:"30s"`
	}
	Player struct {
		ItemDuration time.Duration `env:"PLAYER_ITEM_DURATION" env-default:"5s"`
		TickInterval time.Duration `env:"PLAYER_TICK_INTERVAL" env-default:"50ms"`
	}
	Engine struct {
		ViewCallsPerMinute int `env:"VIEW_CALLS_PER_MINUTE" env-default:"60"`
		ViewCallBurst      int `env:"VIEW_CALL_BURST" env-default:"10"`
		WarmupPoolSize     int `env:"WARMUP_POOL_SIZE" env-default:"5"`
	}
}

// PeerIDs splits the comma-separated peer list from the environment.
func (c *Config) PeerIDs() []string {
	if c.Session.Peers == "" {
		return nil
	}
	parts := strings.Split(c.Session.Peers, ",")
	peers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			peers = append(peers, p)
		}
	}
	return peers
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
