package dataprocessing

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"paymerge/internal/infrastructure"
	"paymerge/pkg/contracts/domain"
)

// Processor is the core ingest entrypoint. One call fully processes two
// independent upload buffers; no state is shared across calls.
type Processor struct {
	logger       *slog.Logger
	aggregator   *Aggregator
	validate     *validator.Validate
	extraAliases map[Role][]string
}

// ProcessorConfig holds configuration options for the Processor.
type ProcessorConfig struct {
	// MaxBreakdownRows caps sample rows per employee breakdown.
	MaxBreakdownRows int
	// ExtraAliases extends (never replaces) the built-in per-role column
	// alias lists, keyed by role name.
	ExtraAliases map[string][]string
}

// IngestResult pairs the payload with the records and diagnostics behind it.
// Records are the only per-line artifact a caller may persist.
type IngestResult struct {
	Payload            *domain.Payload
	Records            []domain.CanonicalRecord
	PayrollOutcomes    []SectionOutcome
	CommissionOutcomes []SectionOutcome
}

// NewProcessor creates a processor with the given configuration.
func NewProcessor(logger *slog.Logger, config ProcessorConfig) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	extra := make(map[Role][]string, len(config.ExtraAliases))
	for role, list := range config.ExtraAliases {
		extra[Role(role)] = list
	}
	return &Processor{
		logger:       logger,
		aggregator:   NewAggregator(logger, AggregatorConfig{MaxBreakdownRows: config.MaxBreakdownRows}),
		validate:     validator.New(),
		extraAliases: extra,
	}
}

// Ingest processes one payroll buffer and one commission buffer into the
// output payload. The two pipelines are independent until aggregation, so
// they run concurrently. Parse failures degrade to empty or partial results;
// the only error returned is context cancellation.
func (p *Processor) Ingest(ctx context.Context, payrollData []byte, payrollName string, commissionData []byte, commissionName string, location string) (*IngestResult, error) {
	ctx = infrastructure.WithRunID(ctx, uuid.NewString())
	logger := p.logger
	logger.InfoContext(ctx, "ingest started",
		slog.String("payroll_file", payrollName),
		slog.String("commission_file", commissionName),
		slog.Int("payroll_bytes", len(payrollData)),
		slog.Int("commission_bytes", len(commissionData)))

	var payroll, commission ParseResult
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		payroll = ParsePayroll(ctx, logger, payrollData, payrollName, p.extraAliases)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		commission = ParseCommission(ctx, logger, commissionData, commissionName, p.extraAliases)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.auditRecords(ctx, logger, payroll.Records)
	p.auditRecords(ctx, logger, commission.Records)

	payload := p.aggregator.Build(payroll.Records, commission.Records, location)

	records := make([]domain.CanonicalRecord, 0, len(payroll.Records)+len(commission.Records))
	records = append(records, payroll.Records...)
	records = append(records, commission.Records...)

	logger.InfoContext(ctx, "ingest complete",
		slog.Int("record_count", len(records)),
		slog.Int("employee_count", len(payload.EmployeeTotals)),
		slog.Int("skipped_sections", payroll.SkippedCount()+commission.SkippedCount()),
		slog.Float64("combined_total", payload.GrandTotals.CombinedTotal))

	return &IngestResult{
		Payload:            payload,
		Records:            records,
		PayrollOutcomes:    payroll.Outcomes,
		CommissionOutcomes: commission.Outcomes,
	}, nil
}

// auditRecords checks extracted records against the canonical schema
// constraints. Violations are diagnostics only; no record is ever dropped
// for failing validation.
func (p *Processor) auditRecords(ctx context.Context, logger *slog.Logger, records []domain.CanonicalRecord) {
	invalid := 0
	for _, rec := range records {
		if err := p.validate.Struct(rec); err != nil {
			invalid++
		}
	}
	if invalid > 0 {
		logger.WarnContext(ctx, "records violate canonical schema constraints",
			slog.Int("invalid_count", invalid),
			slog.Int("record_count", len(records)))
	}
}
