package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-duel/internal/config"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-duel/internal/render"
	"github.com/rocketscienceinc/tictactoe-duel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-duel/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-duel/internal/usecase"
)

// RunApp - plays the configured rounds and prints the results.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, finishing current match", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var matchRepo repository.MatchRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		matchRepo = repository.NewMatchRepository(redisStorage.Connection)
	}

	console := render.NewConsole(os.Stdout)
	runner := usecase.NewMatchRunner(logger, matchRepo, console)

	tally, err := runner.PlayRounds(ctx, conf.Match.Rounds, matchSettings(conf.Match))
	if err != nil {
		return fmt.Errorf("failed to play matches: %w", err)
	}

	if conf.Match.Rounds > 1 {
		console.RenderTally(tally)
	}

	if matchRepo != nil {
		total, err := matchRepo.GetTally(ctx)
		if err != nil {
			return fmt.Errorf("failed to read stored tally: %w", err)
		}
		log.Info("Stored results", "x_wins", total[entity.OutcomeWinnerX], "o_wins", total[entity.OutcomeWinnerO], "draws", total[entity.OutcomeDraw])
	}

	return nil
}

// matchSettings - maps config onto runner settings, seeding from the clock where no seed is set.
func matchSettings(conf config.Match) usecase.MatchSettings {
	return usecase.MatchSettings{
		FirstMark: entity.Mark(conf.FirstMark),
		Pause:     conf.Pause,
		PlayerX: usecase.PlayerSettings{
			Policy: conf.PlayerXPolicy,
			Seed:   seedOrClock(conf.PlayerXSeed),
		},
		PlayerO: usecase.PlayerSettings{
			Policy: conf.PlayerOPolicy,
			Seed:   seedOrClock(conf.PlayerOSeed),
		},
	}
}

func seedOrClock(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}

	return uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
}
