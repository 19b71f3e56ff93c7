package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"presence-lab/auth"
	"presence-lab/domain"
	"presence-lab/domain/event"
	"presence-lab/errors"
	"presence-lab/internal"
	"presence-lab/runtime"
	"presence-lab/transport"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	scenario, err := LoadScenario()
	if err != nil {
		return fmt.Errorf("scenario error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	settings, err := config.Settings()
	if err != nil {
		return err
	}

	// 2. Presence engine on an in-memory transport
	tokens := auth.NewTokenService(config.JWTSecret, config.JWTIssuer, config.TokenDuration)
	recorder := transport.NewRecorder()
	orchestrator, err := runtime.NewOrchestrator(log, tokens, auth.DefaultAvatarSource{}, recorder, settings)
	if err != nil {
		return fmt.Errorf("orchestrator error: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	orchestrator.Start(ctx)

	// 3. Virtual clients
	sim := &simulation{
		log:          log,
		scenario:     scenario,
		tokens:       tokens,
		coordinator:  orchestrator.Coordinator(),
		recorder:     recorder,
		destinations: settings.Catalogue,
	}
	clients := sim.connectAll(ctx)
	sim.printRooms("Rooms after join", orchestrator.Rooms().Rooms())

	sim.leave(ctx, clients)
	time.Sleep(scenario.Settle)
	sim.printRooms("Rooms after leaves", orchestrator.Rooms().Rooms())

	// 4. Drain: every remaining client receives the final leaves
	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = orchestrator.Stop(stopCtx); err != nil {
		return fmt.Errorf("orchestrator failed to stop: %w", err)
	}
	sim.printInboxes(clients)
	log.Info("Simulation finished", "clients", len(clients))
	return nil
}

type simulation struct {
	log          *slog.Logger
	scenario     Scenario
	tokens       *auth.TokenService
	coordinator  *runtime.Coordinator
	recorder     *transport.Recorder
	destinations []domain.Room
}

type client struct {
	connID   domain.ConnectionID
	nickname string
	room     string
}

func (s *simulation) connectAll(ctx context.Context) []client {
	clients := make([]client, s.scenario.Clients)
	var wg sync.WaitGroup
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clients[i] = s.play(ctx, i)
		}(i)
	}
	wg.Wait()
	return clients
}

// play connects one client, lets the coordinator place it, optionally moves it
// to the last catalogue room and types once.
func (s *simulation) play(ctx context.Context, i int) client {
	c := client{
		connID:   domain.ConnectionID("sim-" + strconv.Itoa(i)),
		nickname: fmt.Sprintf("player-%02d", i),
	}
	token, err := s.tokens.GenerateToken(uuid.New(), c.nickname)
	if err != nil {
		s.log.Warn("Token generation failed", "nickname", c.nickname, "error", err)
		return c
	}
	if _, err = s.coordinator.OnConnect(ctx, c.connID, token); err != nil {
		s.log.Warn("Connect failed", "connection_id", c.connID, "error", err)
		return c
	}

	assignment, err := s.coordinator.OnJoinRoomRequest(ctx, c.connID, uuid.Nil)
	if err != nil {
		s.log.Warn("Join failed", "connection_id", c.connID, "error", err)
		return c
	}
	c.room = assignment.RoomName

	if i < s.scenario.Switchers && len(s.destinations) > 0 {
		target := s.destinations[len(s.destinations)-1]
		moved, err := s.coordinator.OnJoinRoomRequest(ctx, c.connID, target.ID)
		switch {
		case err == nil:
			c.room = moved.RoomName
		case stderrors.Is(err, errors.ErrRoomFull):
			s.log.Warn("Target room full, staying", "connection_id", c.connID, "room", c.room)
		default:
			s.log.Warn("Move failed", "connection_id", c.connID, "error", err)
		}
	}

	if s.scenario.Typing {
		_ = s.coordinator.OnTyping(ctx, c.connID, true)
		// stop is accepted but not relayed
		_ = s.coordinator.OnTyping(ctx, c.connID, false)
	}
	return c
}

func (s *simulation) leave(ctx context.Context, clients []client) {
	for i := 0; i < s.scenario.Leavers && i < len(clients); i++ {
		c := &clients[len(clients)-1-i]
		if err := s.coordinator.OnDisconnect(ctx, c.connID); err != nil {
			s.log.Warn("Disconnect failed", "connection_id", c.connID, "error", err)
			continue
		}
		c.room = "(left)"
	}
}

func (s *simulation) printRooms(title string, rooms []domain.RoomInfo) {
	s.title(title)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Room", "Users", "Max", "Kind"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range rooms {
		kind := "catalogue"
		if r.OnDemand {
			kind = "on demand"
		}
		users := strconv.Itoa(r.UsersInRoom)
		if s.scenario.Colours && !r.HasSpace() {
			users = color.New(color.FgRed).Render(users)
		}
		table.Append([]string{r.Name, users, strconv.Itoa(r.MaxUsers), kind})
	}
	table.Render()
}

func (s *simulation) printInboxes(clients []client) {
	s.title("Events received")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Connection", "Nickname", "Room", "Assigned", "Joined", "Left", "Typing"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, c := range clients {
		table.Append([]string{
			string(c.connID),
			c.nickname,
			c.room,
			strconv.Itoa(s.recorder.Count(c.connID, event.RoomAssigned)),
			strconv.Itoa(s.recorder.Count(c.connID, event.UserJoined)),
			strconv.Itoa(s.recorder.Count(c.connID, event.UserLeft)),
			strconv.Itoa(s.recorder.Count(c.connID, event.UserTyping)),
		})
	}
	table.Render()
}

func (s *simulation) title(text string) {
	header := fmt.Sprintf("  ====== %s ======", text)
	if s.scenario.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
}
