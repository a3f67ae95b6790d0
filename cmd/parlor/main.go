package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/parlor/internal/common/uuid"
	"github.com/KirkDiggler/parlor/internal/draw"
	"github.com/KirkDiggler/parlor/internal/handlers/overlay"
	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
	"github.com/KirkDiggler/parlor/internal/services/ledger"
	"github.com/KirkDiggler/parlor/internal/services/payout"
	"github.com/KirkDiggler/parlor/internal/services/registry"
	"github.com/KirkDiggler/parlor/internal/services/table"
	"github.com/KirkDiggler/parlor/internal/store"
)

// CLI is the top-level command structure
type CLI struct {
	RedisAddr     string `help:"Redis address." env:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `help:"Redis password." env:"REDIS_PASSWORD" default:""`
	DealerSecret  string `help:"Shared secret for dealer actions." env:"DEALER_SECRET" required:""`

	Serve ServeCmd `cmd:"" help:"Run the table ticker and the overlay websocket server."`
	Reset ResetCmd `cmd:"" help:"Reset every participant's bankroll to a preset value."`
	Deal  DealCmd  `cmd:"" help:"Generate a house outcome and resolve the live round."`
}

// ServeCmd runs the long-lived server
type ServeCmd struct {
	ListenAddr    string `help:"Overlay websocket listen address." env:"LISTEN_ADDR" default:":8080"`
	BettingWindow int    `help:"Betting window in seconds, 0 for the default." default:"0"`
}

// ResetCmd performs the dealer bulk bankroll reset
type ResetCmd struct {
	StartingBankroll int `arg:"" help:"New bankroll, one of the preset values."`
}

// DealCmd resolves the live round with a generated outcome
type DealCmd struct {
	Seed int64 `help:"RNG seed, 0 for time-based." default:"0"`
}

// app holds everything the commands need
type app struct {
	logger   *log.Logger
	store    store.Store
	registry registry.Service
	ledger   ledger.Service
	table    table.Service
	overlay  *overlay.Server
	secret   string
}

func main() {
	// Optional; env vars win over the file
	_ = godotenv.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "parlor",
	})

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("parlor"),
		kong.Description("Multiplayer virtual casino session server."),
		kong.UsageOnError(),
	)

	application, err := newApp(&cli, logger)
	if err != nil {
		logger.Fatal("failed to initialize", "error", err)
	}

	if err := kctx.Run(application); err != nil {
		logger.Fatal("command failed", "error", err)
	}
}

func newApp(cli *CLI, logger *log.Logger) (*app, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cli.RedisAddr,
		Password: cli.RedisPassword,
		DB:       0,
	})

	sharedStore, err := store.NewRedis(&store.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, err
	}

	rr, err := roundRepo.New(&roundRepo.Config{Store: sharedStore})
	if err != nil {
		return nil, err
	}

	sr, err := sessionRepo.New(&sessionRepo.Config{Store: sharedStore})
	if err != nil {
		return nil, err
	}

	registrySvc, err := registry.New(&registry.Config{
		SessionRepo:   sr,
		UUIDGenerator: uuid.New(),
		Clock:         quartz.NewReal(),
		DealerSecret:  cli.DealerSecret,
	})
	if err != nil {
		return nil, err
	}

	payoutSvc, err := payout.New(&payout.Config{
		RoundRepo:   rr,
		SessionRepo: sr,
	})
	if err != nil {
		return nil, err
	}

	ledgerSvc, err := ledger.New(&ledger.Config{
		RoundRepo:   rr,
		SessionRepo: sr,
	})
	if err != nil {
		return nil, err
	}

	tableSvc, err := table.New(&table.Config{
		RoundRepo:    rr,
		SessionRepo:  sr,
		Payout:       payoutSvc,
		Registry:     registrySvc,
		Clock:        quartz.NewReal(),
		DealerSecret: cli.DealerSecret,
	})
	if err != nil {
		return nil, err
	}

	overlayServer, err := overlay.New(&overlay.Config{
		Store:       sharedStore,
		RoundRepo:   rr,
		SessionRepo: sr,
		Clock:       quartz.NewReal(),
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		logger:   logger,
		store:    sharedStore,
		registry: registrySvc,
		ledger:   ledgerSvc,
		table:    tableSvc,
		overlay:  overlayServer,
		secret:   cli.DealerSecret,
	}, nil
}

// Run starts the countdown ticker, the overlay refresh loop and the
// websocket listener, and stops them all on SIGINT/SIGTERM
func (c *ServeCmd) Run(a *app) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/overlay", a.overlay)

	httpServer := &http.Server{
		Addr:    c.ListenAddr,
		Handler: mux,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		a.logger.Info("countdown ticker running")
		return a.table.Run(groupCtx)
	})

	group.Go(func() error {
		a.logger.Info("overlay refresh loop running")
		return a.overlay.Run(groupCtx)
	})

	group.Go(func() error {
		a.logger.Info("overlay websocket listening", "addr", c.ListenAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		return err
	}

	a.logger.Info("shut down cleanly")
	return nil
}

// Run performs the bulk bankroll reset and reports how many
// participants were touched
func (c *ResetCmd) Run(a *app) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	output, err := a.registry.ResetAll(ctx, &registry.ResetAllInput{
		DealerSecret:     a.secret,
		StartingBankroll: c.StartingBankroll,
	})
	if err != nil {
		return err
	}

	a.logger.Info("bankrolls reset",
		"participants", output.ResetCount,
		"startingBankroll", c.StartingBankroll)
	return nil
}

// Run generates an outcome for the live game and resolves the round
func (c *DealCmd) Run(a *app) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state, err := a.table.GetState(ctx)
	if err != nil {
		return err
	}
	if state.ActiveGame == nil {
		return errors.New("no game is active")
	}

	dealer := draw.New(&draw.Config{Seed: c.Seed})

	var outcome *models.Outcome
	switch state.ActiveGame.Kind {
	case models.GameKindWheel:
		outcome = dealer.SpinWheel()
	case models.GameKindDice:
		outcome = dealer.RollDice()
	case models.GameKindCards:
		outcome = dealer.DealCards()
	default:
		return fmt.Errorf("unknown game kind %q", state.ActiveGame.Kind)
	}

	output, err := a.table.Resolve(ctx, &table.ResolveInput{
		DealerSecret: a.secret,
		Outcome:      outcome,
	})
	if err != nil {
		return err
	}

	a.logger.Info("round resolved",
		"game", state.ActiveGame.Kind,
		"result", output.Round.ResultHistory[0],
		"round", output.Round.RoundNumber,
		"settled", len(output.Settlement.Results))
	return nil
}
