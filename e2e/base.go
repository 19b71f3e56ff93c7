package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"presence-lab/auth"
	"presence-lab/domain"
	"presence-lab/runtime"
	"presence-lab/transport"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BasePresenceSuite runs a whole presence engine per test, wired like the
// production binary but on an in-memory transport.
type BasePresenceSuite struct {
	suite.Suite
	Config       Config
	Tokens       *auth.TokenService
	Transport    *transport.Recorder
	Orchestrator *runtime.Orchestrator
	cancel       context.CancelFunc
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePresenceSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.Tokens = auth.NewTokenService(s.Config.JWTSecret, "presence-e2e", time.Minute)
}

// Start boots an engine over the given catalogue. It is stopped after the test.
func (s *BasePresenceSuite) Start(catalogue ...domain.Room) {
	s.Transport = transport.NewRecorder()
	orchestrator, err := runtime.NewOrchestrator(logs.GetLoggerFromLevel(slog.LevelInfo), s.Tokens,
		auth.DefaultAvatarSource{Descriptor: `{"skin":"default"}`}, s.Transport, runtime.Settings{
			Catalogue:        catalogue,
			DefaultMaxUsers:  2,
			OutboxSize:       128,
			OutboxTimeout:    100 * time.Millisecond,
			SinkTimeout:      100 * time.Millisecond,
			RestartInterval:  10 * time.Millisecond,
			MetricInterval:   time.Second,
			EvictionInterval: time.Second,
		})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.Orchestrator = orchestrator
	orchestrator.Start(ctx)
}

func (s *BasePresenceSuite) TearDownTest() {
	if s.Orchestrator == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Timeout)
	defer cancel()
	s.Require().NoError(s.Orchestrator.Stop(ctx))
	s.cancel()
	s.Orchestrator = nil
}

// Step prints a colorized header for a scenario step, then runs it.
func (s *BasePresenceSuite) Step(name string, fn func(ctx context.Context)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Timeout)
	defer cancel()
	fn(ctx)
}

// Connect authenticates a new virtual client with a freshly issued token.
func (s *BasePresenceSuite) Connect(ctx context.Context, connID domain.ConnectionID, nickname string) domain.ConnectedUser {
	token, err := s.Tokens.GenerateToken(uuid.New(), nickname)
	s.Require().NoError(err)
	user, err := s.Orchestrator.Coordinator().OnConnect(ctx, connID, token)
	s.Require().NoError(err, "connect %s", connID)
	return user
}

// Received waits until connID received exactly the given event names.
func (s *BasePresenceSuite) Received(connID domain.ConnectionID, names ...string) {
	s.T().Helper()
	ok := s.Eventually(func() bool {
		return len(s.Transport.Events(connID)) >= len(names)
	}, s.Config.Timeout, 5*time.Millisecond)
	if s.Config.DebugEvents || !ok {
		s.dump(connID)
	}
	s.Equal(names, s.Transport.Names(connID), "events of %s", connID)
}

func (s *BasePresenceSuite) dump(connID domain.ConnectionID) {
	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "EVENTS of %s:", connID)
	for _, e := range s.Transport.Events(connID) {
		payload, _ := json.MarshalIndent(e, "", "  ")
		fmt.Fprintf(&logBuilder, "\n%s %s", e.EventName(), payload)
	}
	s.T().Log(logBuilder.String())
}
