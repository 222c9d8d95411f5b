package report

import (
	"context"
	"log/slog"
	"sort"

	"github.com/congo-pay/bankaccount/internal/account"
	"github.com/congo-pay/bankaccount/internal/scenario"
)

// LoggerReporter writes each scenario outcome to the structured logger and
// keeps a running summary.
type LoggerReporter struct {
	logger  *slog.Logger
	summary Summary
}

// NewLoggerReporter constructs a reporter writing to logger.
func NewLoggerReporter(logger *slog.Logger) *LoggerReporter {
	return &LoggerReporter{logger: logger, summary: newSummary()}
}

// Report logs the outcome. Rejected stages are logged at debug level since
// they are expected for out-of-domain inputs.
func (r *LoggerReporter) Report(ctx context.Context, outcome scenario.Outcome) error {
	r.summary.add(outcome)
	if r.logger == nil {
		return nil
	}

	attrs := []any{
		slog.String("account_id", outcome.AccountID),
		slog.String("initial", outcome.Initial.String()),
		slog.String("deposit", outcome.Deposit.String()),
		slog.String("withdraw", outcome.Withdraw.String()),
		slog.String("stage", outcome.Stage),
	}
	if outcome.Stage != scenario.StageOpen {
		attrs = append(attrs,
			slog.String("balance", outcome.Balance.String()),
			slog.String("status", outcome.Status.String()),
		)
	}
	if outcome.Err != nil {
		attrs = append(attrs, slog.String("kind", account.Kind(outcome.Err)), slog.Any("error", outcome.Err))
		r.logger.DebugContext(ctx, "case rejected", attrs...)
		return nil
	}
	r.logger.InfoContext(ctx, "case completed", attrs...)
	return nil
}

// Summary returns the counts accumulated so far.
func (r *LoggerReporter) Summary() Summary {
	return r.summary
}

// Summary counts outcomes per final stage, tier and error kind.
type Summary struct {
	Total    int
	ByStage  map[string]int
	ByStatus map[account.Tier]int
	ByKind   map[string]int
}

func newSummary() Summary {
	return Summary{
		ByStage:  make(map[string]int),
		ByStatus: make(map[account.Tier]int),
		ByKind:   make(map[string]int),
	}
}

func (s *Summary) add(outcome scenario.Outcome) {
	s.Total++
	s.ByStage[outcome.Stage]++
	if outcome.Stage != scenario.StageOpen {
		s.ByStatus[outcome.Status]++
	}
	if kind := account.Kind(outcome.Err); kind != "" {
		s.ByKind[kind]++
	}
}

// LogValue renders the summary as a single group with stable key order.
func (s Summary) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("total", s.Total)}
	for _, key := range sortedKeys(s.ByStage) {
		attrs = append(attrs, slog.Int("stage_"+key, s.ByStage[key]))
	}
	for _, tier := range []account.Tier{account.TierLow, account.TierNormal, account.TierHigh} {
		attrs = append(attrs, slog.Int("status_"+tier.String(), s.ByStatus[tier]))
	}
	for _, key := range sortedKeys(s.ByKind) {
		attrs = append(attrs, slog.Int("kind_"+key, s.ByKind[key]))
	}
	return slog.GroupValue(attrs...)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
