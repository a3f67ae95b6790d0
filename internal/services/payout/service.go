package payout

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/parlor/internal/games"
	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/parlor/internal/services/payout Service

// Service settles resolved rounds against the full active-bet set
type Service interface {
	// Settle evaluates every active bet against the outcome and applies
	// the resulting credits. All-or-nothing: any invalid input fails the
	// whole settlement before a single bankroll is touched.
	Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error)
}

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new payout engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RoundRepo == nil {
		return nil, errors.New("round repository cannot be nil")
	}
	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	return &service{
		config: cfg,
	}, nil
}

// Evaluate computes the settlement of one active-bet map against an
// outcome. Each bet type is judged independently against the single
// outcome, so any evaluation order produces the same result; the breakdown
// is sorted by bet type only to keep output stable.
func Evaluate(kind models.GameKind, active models.BetMap, outcome *models.Outcome) ([]BetResult, int, error) {
	betTypes := make([]string, 0, len(active))
	for betType := range active {
		betTypes = append(betTypes, betType)
	}
	sort.Strings(betTypes)

	results := make([]BetResult, 0, len(betTypes))
	credit := 0
	for _, betType := range betTypes {
		stake := active[betType]
		if stake <= 0 {
			continue
		}

		bet, err := games.ParseBet(kind, betType)
		if err != nil {
			return nil, 0, err
		}

		result := BetResult{
			BetType: betType,
			Stake:   stake,
		}
		if bet.Wins(outcome) {
			result.Won = true
			result.Return = bet.Odds.Return(stake)
			credit += result.Return
		}
		results = append(results, result)
	}

	return results, credit, nil
}

// Settle evaluates every participant's active bets against the outcome,
// credits bankrolls, zeroes the settled stakes, and updates the
// leaderboard and session stats. The whole input set is validated before
// the first write.
func (s *service) Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := games.ValidateOutcome(input.Kind, input.Outcome); err != nil {
		return nil, err
	}

	records, err := s.config.RoundRepo.ListBetRecords(ctx, &roundRepo.ListBetRecordsInput{
		Kind: input.Kind,
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records.Records, func(i, j int) bool {
		return records.Records[i].ParticipantID < records.Records[j].ParticipantID
	})

	// Validation pass: every bet token of every participant must parse
	// before any bankroll moves
	type pending struct {
		record  *models.BetRecord
		results []BetResult
		credit  int
	}
	settlements := make([]pending, 0, len(records.Records))
	for _, record := range records.Records {
		if record.Active.Total() == 0 {
			continue
		}
		results, credit, err := Evaluate(input.Kind, record.Active, input.Outcome)
		if err != nil {
			return nil, fmt.Errorf("participant %s: %w", record.ParticipantID, err)
		}
		settlements = append(settlements, pending{
			record:  record,
			results: results,
			credit:  credit,
		})
	}

	output := &SettleOutput{}

	// Mutation pass
	for _, settlement := range settlements {
		participant, err := s.config.SessionRepo.GetParticipant(ctx, &sessionRepo.GetParticipantInput{
			ParticipantID: settlement.record.ParticipantID,
		})
		if err != nil {
			return nil, err
		}

		participant.Bankroll += settlement.credit
		if err := s.config.SessionRepo.SaveParticipant(ctx, &sessionRepo.SaveParticipantInput{
			Participant: participant,
		}); err != nil {
			return nil, err
		}

		// Zero the settled stakes so a stale read can never double-pay
		settlement.record.Active = models.BetMap{}
		if err := s.config.RoundRepo.SaveBetRecord(ctx, &roundRepo.SaveBetRecordInput{
			Kind:   input.Kind,
			Record: settlement.record,
		}); err != nil {
			return nil, err
		}

		// The bankroll change is externally visible only once the
		// leaderboard reflects it
		if err := s.config.SessionRepo.SaveLeaderboardEntry(ctx, &sessionRepo.SaveLeaderboardEntryInput{
			Entry: &models.LeaderboardEntry{
				ParticipantID: participant.ID,
				Name:          participant.DisplayName,
				Bankroll:      participant.Bankroll,
				UpdatedAt:     participant.LastActiveAt,
			},
		}); err != nil {
			return nil, err
		}

		for _, result := range settlement.results {
			output.TotalWagered += result.Stake
			if result.Return > output.BiggestWin {
				output.BiggestWin = result.Return
			}
		}

		output.Results = append(output.Results, ParticipantResult{
			ParticipantID: participant.ID,
			Bets:          settlement.results,
			Credit:        settlement.credit,
			NewBankroll:   participant.Bankroll,
		})
	}

	if err := s.updateStats(ctx, output); err != nil {
		return nil, err
	}

	return output, nil
}

func (s *service) updateStats(ctx context.Context, output *SettleOutput) error {
	stats, err := s.config.SessionRepo.GetStats(ctx)
	if err != nil {
		return err
	}

	stats.Stats.TotalWagered += output.TotalWagered
	stats.Stats.RoundsPlayed++
	if output.BiggestWin > stats.Stats.BiggestWin {
		stats.Stats.BiggestWin = output.BiggestWin
	}

	return s.config.SessionRepo.SaveStats(ctx, &sessionRepo.SaveStatsInput{
		Stats: stats.Stats,
	})
}
