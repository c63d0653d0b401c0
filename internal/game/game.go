package game

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chupacabra/internal/entity"
	"github.com/samdwyer/chupacabra/internal/gamedata"
	"github.com/samdwyer/chupacabra/internal/telemetry"
	"github.com/samdwyer/chupacabra/internal/ui"
	"github.com/samdwyer/chupacabra/internal/world"
)

// Game owns one session: its room graph, its player, and the turn loop.
// Each session builds a fresh graph so replays start clean.
type Game struct {
	registry   *gamedata.RoomRegistry
	rooms      map[string]*world.Room
	player     *entity.Player
	totalItems int
	state      State
	console    *ui.Console
	cfg        Config
	divider    string
	turns      int
}

// New constructs a session from the embedded room data. The console
// carries all input and output so tests can script whole sessions.
func New(cfg Config, console *ui.Console) (*Game, error) {
	registry, err := gamedata.LoadRoomRegistry()
	if err != nil {
		return nil, err
	}

	rooms := world.BuildRooms(registry)

	return &Game{
		registry:   registry,
		rooms:      rooms,
		player:     entity.NewPlayer(rooms[registry.Start()]),
		totalItems: registry.ItemCount(),
		state:      StateInit,
		console:    console,
		cfg:        cfg,
		divider:    strings.Repeat("-", cfg.DividerWidth),
	}, nil
}

// State returns the session's current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Player returns the session's player.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Interpret parses one raw command line and dispatches it. Every outcome
// is an advisory string; bad input never errors the session.
func (g *Game) Interpret(raw string) string {
	tokens := strings.Fields(strings.ToLower(raw))
	if len(tokens) == 0 {
		return ValidationMessage
	}

	switch tokens[0] {
	case "go":
		if len(tokens) < 2 {
			return ValidationMessage
		}
		// Extra tokens after the direction are ignored.
		return g.movePlayer(tokens[1])
	case "get":
		if len(tokens) < 2 {
			return ValidationMessage
		}
		msg, _ := g.player.Collect(strings.Join(tokens[1:], " "))
		return msg
	default:
		return ValidationMessage
	}
}

// movePlayer moves through the exit named by token. An unknown direction
// is a validation failure; a known direction with no exit is a normal
// blocked move, and the two stay distinguishable.
func (g *Game) movePlayer(token string) string {
	dir, ok := world.ParseDirection(token)
	if !ok {
		return ValidationMessage
	}

	target, ok := g.player.CurrentRoom.Exit(dir)
	if !ok {
		return NoRoomMessage
	}

	g.player.MoveTo(g.rooms[target])
	return fmt.Sprintf("You moved to the %s.", target)
}

// Outcome evaluates the win/lose condition. It is defined only while the
// player stands in the terminal room; elsewhere the second return is
// false and play continues.
func (g *Game) Outcome() (State, bool) {
	if g.player.CurrentRoom.Name != g.registry.Terminal() {
		return StatePlaying, false
	}

	collected := len(g.player.Inventory)
	if collected > g.totalItems {
		// Items are unique and collected at most once; more than
		// totalItems means the graph or collect logic is broken.
		panic(fmt.Sprintf("inventory holds %d items, only %d exist", collected, g.totalItems))
	}
	if collected == g.totalItems {
		return StateWon, true
	}
	return StateLost, true
}

// Run drives the session from the opening banner to a terminal state
// and returns that state.
func (g *Game) Run(ctx context.Context) State {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()

	span.SetAttributes(
		attribute.Int("game.rooms", g.registry.Count()),
		attribute.Int("game.total_items", g.totalItems),
		attribute.String("game.start_room", g.registry.Start()),
	)

	g.printOpening()
	g.state = StatePlaying

	for g.state == StatePlaying {
		g.playTurn(ctx)
	}

	span.SetAttributes(
		attribute.Int("game.turns", g.turns),
		attribute.Int("game.items_collected", len(g.player.Inventory)),
		attribute.String("game.final_state", g.state.String()),
	)
	return g.state
}

// playTurn shows status, reads one command, and resolves it.
func (g *Game) playTurn(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	g.turns++

	g.console.Println(g.player.Status())
	g.console.Println(g.player.CurrentRoom.Describe())

	line, err := g.console.ReadLine(g.cfg.Prompt + "\n")
	if err != nil {
		// Input is gone; treat it like the player walking away.
		g.state = StateQuit
		span.SetAttributes(attribute.String("turn.command", "<eof>"))
		return
	}

	if strings.EqualFold(strings.TrimSpace(line), "q") {
		g.state = StateQuit
		span.SetAttributes(attribute.String("turn.command", "q"))
		return
	}

	result := g.Interpret(line)
	g.console.Println(result)
	g.console.Println(g.divider)

	span.SetAttributes(
		attribute.String("turn.command", strings.TrimSpace(line)),
		attribute.String("turn.result", result),
		attribute.String("turn.room", g.player.CurrentRoom.Name),
	)

	if outcome, decided := g.Outcome(); decided {
		g.state = outcome
		switch outcome {
		case StateWon:
			g.console.WrapPrintln(WinningMessage)
		case StateLost:
			g.console.WrapPrintln(LosingMessage)
		}
	}
}

// printOpening emits the banner, story, and instructions.
func (g *Game) printOpening() {
	g.console.Println(WelcomeMessage)
	g.console.WrapPrintln(GameInfo)
	g.console.WrapPrintln(MovingInstructions)
	g.console.WrapPrintln(ItemInstructions)
	g.console.Println(g.divider)
}
