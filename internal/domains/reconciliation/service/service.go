package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marketplace/config"
	"marketplace/infras/otel"
	bookingModel "marketplace/internal/domains/booking/model"
	bookingRepo "marketplace/internal/domains/booking/repository"
	bookingService "marketplace/internal/domains/booking/service"
	"marketplace/internal/domains/reconciliation/model/dto"
	"marketplace/shared/clock"
	"marketplace/shared/constant"
	"marketplace/shared/failure"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	defaultConcurrency = 4
	defaultBatchSize   = 500
)

// Reconciliation applies the time driven booking transitions. Sweeps are safe
// to run repeatedly and concurrently with user actions.
type Reconciliation interface {
	SweepAcceptanceTimeouts(ctx context.Context) (dto.Report, error)
	SweepPaymentTimeouts(ctx context.Context) (dto.Report, error)
	SweepCompletions(ctx context.Context) (dto.Report, error)
	SweepAll(ctx context.Context) (map[string]dto.Report, error)
	Run(ctx context.Context, sweep string) (map[string]dto.Report, error)
}

type serviceImpl struct {
	repo        bookingRepo.Booking
	bookings    bookingService.Booking
	clock       clock.Clock
	otel        otel.Otel
	concurrency int
	batchSize   int
}

func New(repo bookingRepo.Booking, bookings bookingService.Booking, cfg *config.Config, clk clock.Clock, otel otel.Otel) Reconciliation {
	concurrency := cfg.Booking.SweepConcurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	batchSize := cfg.Booking.SweepBatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &serviceImpl{
		repo:        repo,
		bookings:    bookings,
		clock:       clk,
		otel:        otel,
		concurrency: concurrency,
		batchSize:   batchSize,
	}
}

type transitionFunc func(ctx context.Context, booking bookingModel.Booking) (bool, error)

func (s *serviceImpl) SweepAcceptanceTimeouts(ctx context.Context) (res dto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reconciliation.SweepAcceptanceTimeouts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guard := bookingModel.Guard{
		Status:        bookingModel.StatusPending,
		CreatedBefore: s.clock.Now().Add(-s.bookings.AcceptanceTimeout(ctx)),
	}

	return s.sweep(ctx, dto.SweepAcceptance, guard, s.bookings.ExpireAcceptance)
}

func (s *serviceImpl) SweepPaymentTimeouts(ctx context.Context) (res dto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reconciliation.SweepPaymentTimeouts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guard := bookingModel.Guard{
		Status:          bookingModel.StatusConfirmed,
		PaymentStatus:   bookingModel.PaymentPending,
		ConfirmedBefore: s.clock.Now().Add(-s.bookings.PaymentTimeout(ctx)),
	}

	return s.sweep(ctx, dto.SweepPayment, guard, s.bookings.ExpirePayment)
}

func (s *serviceImpl) SweepCompletions(ctx context.Context) (res dto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reconciliation.SweepCompletions")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guard := bookingModel.Guard{
		Status:        bookingModel.StatusConfirmed,
		PaymentStatus: bookingModel.PaymentPaid,
		EndedBefore:   s.clock.Now(),
	}

	return s.sweep(ctx, dto.SweepCompletion, guard, s.bookings.Complete)
}

// SweepAll runs every sweep in order. A failing sweep does not stop the
// following ones.
func (s *serviceImpl) SweepAll(ctx context.Context) (res map[string]dto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reconciliation.SweepAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sweeps := []struct {
		name string
		run  func(ctx context.Context) (dto.Report, error)
	}{
		{dto.SweepAcceptance, s.SweepAcceptanceTimeouts},
		{dto.SweepPayment, s.SweepPaymentTimeouts},
		{dto.SweepCompletion, s.SweepCompletions},
	}

	var result *multierror.Error

	res = make(map[string]dto.Report, len(sweeps))

	for _, sweep := range sweeps {
		report, sweepErr := sweep.run(ctx)
		if sweepErr != nil {
			result = multierror.Append(result, sweepErr)
		}

		res[sweep.name] = report
	}

	return res, result.ErrorOrNil()
}

// Run executes the named sweep, or all of them.
func (s *serviceImpl) Run(ctx context.Context, sweep string) (map[string]dto.Report, error) {
	var (
		report dto.Report
		err    error
	)

	switch sweep {
	case dto.SweepAll:
		return s.SweepAll(ctx)
	case dto.SweepAcceptance:
		report, err = s.SweepAcceptanceTimeouts(ctx)
	case dto.SweepPayment:
		report, err = s.SweepPaymentTimeouts(ctx)
	case dto.SweepCompletion:
		report, err = s.SweepCompletions(ctx)
	default:
		return nil, failure.BadRequestField("sweep", fmt.Sprintf("unknown sweep %q, use one of acceptance payment completion all", sweep)) // nolint:wrapcheck
	}

	return map[string]dto.Report{sweep: report}, err
}

// sweep pages through candidates until a short page comes back or a page holds
// nothing new. Items run detached from ctx so a caller going away does not
// turn the rest of the batch into failures.
func (s *serviceImpl) sweep(ctx context.Context, name string, guard bookingModel.Guard, apply transitionFunc) (dto.Report, error) {
	report := dto.Report{Sweep: name}
	work := context.WithoutCancel(ctx)
	seen := make(map[string]struct{})

	for {
		candidates, err := s.repo.ListMatching(ctx, guard, s.batchSize)
		if err != nil {
			log.Error().Err(err).Str("sweep", name).Msg("failed to list sweep candidates")

			return report, fmt.Errorf("failed to list %s candidates: %w", name, err)
		}

		fresh := make([]bookingModel.Booking, 0, len(candidates))
		for _, candidate := range candidates {
			if _, ok := seen[candidate.ID]; !ok {
				seen[candidate.ID] = struct{}{}
				fresh = append(fresh, candidate)
			}
		}

		s.applyBatch(work, name, fresh, apply, &report)

		if len(candidates) < s.batchSize || len(fresh) == 0 || ctx.Err() != nil {
			break
		}
	}

	log.Info().
		Str("sweep", name).
		Int("candidates", report.Candidates).
		Int("transitioned", report.Transitioned).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("sweep finished")

	return report, nil
}

func (s *serviceImpl) applyBatch(ctx context.Context, name string, candidates []bookingModel.Booking, apply transitionFunc, report *dto.Report) {
	var transitioned, skipped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, candidate := range candidates {
		g.Go(func() error {
			ok, err := apply(gctx, candidate)

			switch {
			case err != nil:
				failed.Add(1)
				log.Error().Err(err).Str("sweep", name).Str("booking_id", candidate.ID).Msg("failed to reconcile booking")
			case ok:
				transitioned.Add(1)
			default:
				skipped.Add(1)
			}

			return nil
		})
	}

	_ = g.Wait()

	report.Candidates += len(candidates)
	report.Transitioned += int(transitioned.Load())
	report.Skipped += int(skipped.Load())
	report.Failed += int(failed.Load())
}
