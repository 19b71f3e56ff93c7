package internal

import (
	"fmt"
	"presence-lab/domain"
	"presence-lab/errors"
	"presence-lab/runtime"
	"strconv"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	JWTSecret        string        `env:"JWT_SECRET,required=true" validate:"min=16"`
	JWTIssuer        string        `env:"JWT_ISSUER,default=presence-lab" validate:"required"`
	TokenDuration    time.Duration `env:"TOKEN_DURATION,default=1h" validate:"gt=0"`
	Rooms            string        `env:"ROOMS,default=Lobby:20"`
	DefaultMaxUsers  int           `env:"DEFAULT_MAX_USERS,default=20" validate:"gt=0"`
	OutboxSize       int           `env:"OUTBOX_SIZE,default=1024" validate:"gt=0"`
	OutboxTimeout    time.Duration `env:"OUTBOX_TIMEOUT,default=500ms" validate:"gt=0"`
	SinkTimeout      time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	MetricInterval   time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"gt=0"`
	EvictionInterval time.Duration `env:"EVICTION_INTERVAL,default=1m" validate:"gt=0"`
}

var validate = validator.New()

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if _, err := ParseRooms(c.Rooms); err != nil {
		return err
	}
	return nil
}

// Settings turns the configuration into what the orchestrator needs.
// Each call creates fresh room ids.
func (c Config) Settings() (runtime.Settings, error) {
	catalogue, err := ParseRooms(c.Rooms)
	if err != nil {
		return runtime.Settings{}, err
	}
	return runtime.Settings{
		Catalogue:        catalogue,
		DefaultMaxUsers:  c.DefaultMaxUsers,
		OutboxSize:       c.OutboxSize,
		OutboxTimeout:    c.OutboxTimeout,
		SinkTimeout:      c.SinkTimeout,
		RestartInterval:  c.RestartInterval,
		MetricInterval:   c.MetricInterval,
		EvictionInterval: c.EvictionInterval,
	}, nil
}

// ParseRooms reads a room catalogue written as "Name:max,Name:max".
// Blank entries are skipped and room names must be unique.
func ParseRooms(catalogue string) ([]domain.Room, error) {
	var rooms []domain.Room
	seen := make(map[string]struct{})

	for _, entry := range strings.Split(catalogue, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		i := strings.LastIndex(entry, ":")
		if i <= 0 {
			return nil, fmt.Errorf("%w: room %q must be written Name:max", errors.ErrInvalidConfig, entry)
		}
		name := strings.TrimSpace(entry[:i])
		maxUsers, err := strconv.Atoi(strings.TrimSpace(entry[i+1:]))
		if err != nil || maxUsers <= 0 {
			return nil, fmt.Errorf("%w: room %q needs a positive capacity", errors.ErrInvalidConfig, name)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: room name is empty in %q", errors.ErrInvalidConfig, entry)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: room %q declared twice", errors.ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
		rooms = append(rooms, domain.NewRoom(name, maxUsers))
	}
	return rooms, nil
}
