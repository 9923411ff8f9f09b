package commands

import (
	"context"
	"time"

	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/core/ports"
)

// Reference delays for multi-parcel label polling. The initial wait gives the
// aggregation service time to generate sibling transactions; the retry wait
// applies when the first poll finds at most one completed label.
const (
	DefaultInitialPollDelay = 3 * time.Second
	DefaultRetryPollDelay   = 5 * time.Second
)

// Sleeper abstracts the delays in the polling state machine so tests can run
// it without real waits.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// ClockSleeper waits in real time, honoring context cancellation.
type ClockSleeper struct{}

// Sleep blocks for d or until the context is done, whichever comes first.
func (ClockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LabelPurchaser buys a label for a selected rate and collects the per-parcel
// sibling labels that the aggregation service generates asynchronously for
// multi-parcel shipments.
//
// The collection is a bounded, time-based state machine rather than an event
// subscription: purchase, wait, poll, and — when at most one completed
// transaction has appeared — wait once more and poll exactly once more. This
// accepts a fixed worst-case latency per multi-parcel purchase instead of
// requiring a callback channel from the carrier service. Whatever completed
// transactions exist after the retry budget is exhausted are reported;
// finding fewer labels than parcels is not an error.
type LabelPurchaser struct {
	carrier      ports.CarrierService
	sleeper      Sleeper
	initialDelay time.Duration
	retryDelay   time.Duration
}

// NewLabelPurchaser creates a LabelPurchaser. A nil sleeper falls back to real
// waits; non-positive delays fall back to the reference defaults.
func NewLabelPurchaser(carrier ports.CarrierService, sleeper Sleeper, initialDelay, retryDelay time.Duration) LabelPurchaser {
	if sleeper == nil {
		sleeper = ClockSleeper{}
	}
	if initialDelay <= 0 {
		initialDelay = DefaultInitialPollDelay
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryPollDelay
	}

	return LabelPurchaser{
		carrier:      carrier,
		sleeper:      sleeper,
		initialDelay: initialDelay,
		retryDelay:   retryDelay,
	}
}

// Purchase buys a label for rateID and returns the master transaction. When
// more than one completed transaction exists across both polls, all of them
// are attached to the master as AllLabels. The master's status decides the
// terminal outcome; the caller maps it to purchased or failed.
func (p LabelPurchaser) Purchase(ctx context.Context, apiKey, rateID string) (*shipping.Transaction, error) {
	master, err := p.carrier.PurchaseLabel(ctx, apiKey, rateID)
	if err != nil {
		return nil, err
	}

	if err = p.sleeper.Sleep(ctx, p.initialDelay); err != nil {
		return nil, err
	}

	succeeded, err := p.pollSucceeded(ctx, apiKey, rateID, nil)
	if err != nil {
		return nil, err
	}

	if len(succeeded) <= 1 {
		if err = p.sleeper.Sleep(ctx, p.retryDelay); err != nil {
			return nil, err
		}
		succeeded, err = p.pollSucceeded(ctx, apiKey, rateID, succeeded)
		if err != nil {
			return nil, err
		}
	}

	if len(succeeded) > 1 {
		labels := make([]shipping.Label, 0, len(succeeded))
		for _, tx := range succeeded {
			labels = append(labels, tx.Label())
		}
		master.AllLabels = labels
	}

	return master, nil
}

// pollSucceeded fetches all transactions for the rate and merges the completed
// ones into the accumulated set, deduplicating by transaction id so a
// transaction seen in both polls counts once.
func (p LabelPurchaser) pollSucceeded(
	ctx context.Context,
	apiKey, rateID string,
	accumulated []shipping.Transaction,
) ([]shipping.Transaction, error) {
	transactions, err := p.carrier.ListTransactionsByRate(ctx, apiKey, rateID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(accumulated))
	for _, tx := range accumulated {
		seen[tx.ID] = true
	}

	for _, tx := range transactions {
		if tx.Succeeded() && !seen[tx.ID] {
			seen[tx.ID] = true
			accumulated = append(accumulated, tx)
		}
	}

	return accumulated, nil
}
