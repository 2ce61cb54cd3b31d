package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-duel/internal/player"
	"github.com/rocketscienceinc/tictactoe-duel/internal/tictactoe"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	IncrementOutcome(ctx context.Context, outcome entity.Outcome) error
}

type renderer interface {
	RenderMove(move entity.Move, snapshot entity.Snapshot)
	RenderSummary(match *entity.Match)
}

type PlayerSettings struct {
	Policy string
	Seed   uint64
}

type MatchSettings struct {
	FirstMark entity.Mark
	Pause     time.Duration
	PlayerX   PlayerSettings
	PlayerO   PlayerSettings
}

// MatchRunner plays matches between two concurrent actors on a shared board.
// The repository is optional; with a nil repository matches are not persisted.
type MatchRunner struct {
	logger   *slog.Logger
	repo     matchRepo
	renderer renderer
}

func NewMatchRunner(logger *slog.Logger, repo matchRepo, renderer renderer) *MatchRunner {
	return &MatchRunner{
		logger:   logger.With("component", "match_runner"),
		repo:     repo,
		renderer: renderer,
	}
}

// Play runs one match to completion and returns its record.
func (that *MatchRunner) Play(ctx context.Context, round int, settings MatchSettings) (*entity.Match, error) {
	policyX, err := player.NewPolicy(settings.PlayerX.Policy, settings.PlayerX.Seed)
	if err != nil {
		return nil, fmt.Errorf("player X: %w", err)
	}

	policyO, err := player.NewPolicy(settings.PlayerO.Policy, settings.PlayerO.Seed)
	if err != nil {
		return nil, fmt.Errorf("player O: %w", err)
	}

	match := entity.NewMatch(uuid.NewString(), round, settings.FirstMark, settings.PlayerX.Policy, settings.PlayerO.Policy)
	log := that.logger.With("match_id", match.ID, "round", round)

	board := tictactoe.NewBoard(
		tictactoe.WithFirstMark(settings.FirstMark),
		tictactoe.WithMoveListener(that.renderer.RenderMove),
	)

	actors := []*player.Actor{
		player.NewActor(log, entity.PlayerX, policyX, board, player.WithPause(settings.Pause)),
		player.NewActor(log, entity.PlayerO, policyO, board, player.WithPause(settings.Pause)),
	}

	log.Info("Match started", "first_mark", board.Turn(), "policy_x", settings.PlayerX.Policy, "policy_o", settings.PlayerO.Policy)

	var wg sync.WaitGroup
	for _, actor := range actors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			actor.Run()
		}()
	}
	wg.Wait()

	snapshot := board.Snapshot()
	if !snapshot.Finished {
		return nil, fmt.Errorf("%w: match %s", apperror.ErrMatchFailed, match.ID)
	}

	match.Finish(snapshot)
	that.renderer.RenderSummary(match)

	for _, actor := range actors {
		stats := actor.Stats()
		log.Debug("Actor stats", "mark", actor.Mark(), "attempts", stats.Attempts, "moves", stats.Moves, "rejected", stats.Rejected())
	}

	log.Info("Match finished", "outcome", match.Outcome, "moves", len(match.Moves))

	if err = that.save(ctx, match); err != nil {
		return match, err
	}

	return match, nil
}

// PlayRounds plays rounds matches one after another. Seeds are shifted per
// round so random players do not replay the same game. It stops early when
// ctx is canceled between matches.
func (that *MatchRunner) PlayRounds(ctx context.Context, rounds int, settings MatchSettings) (entity.Tally, error) {
	tally := entity.Tally{}

	for round := 1; round <= rounds; round++ {
		if err := ctx.Err(); err != nil {
			that.logger.Info("Stopping before next round", "round", round, "error", err)
			return tally, nil
		}

		roundSettings := settings
		roundSettings.PlayerX.Seed += uint64(round - 1)
		roundSettings.PlayerO.Seed += uint64(round - 1)

		match, err := that.Play(ctx, round, roundSettings)
		if err != nil {
			return tally, fmt.Errorf("round %d: %w", round, err)
		}

		tally[match.Outcome]++
	}

	return tally, nil
}

func (that *MatchRunner) save(ctx context.Context, match *entity.Match) error {
	if that.repo == nil {
		return nil
	}

	if err := that.repo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed save match: %w", err)
	}

	if err := that.repo.IncrementOutcome(ctx, match.Outcome); err != nil {
		return fmt.Errorf("failed update tally: %w", err)
	}

	return nil
}
