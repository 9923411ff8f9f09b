package commands

import (
	"context"
	"log/slog"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/core/ports"
)

// BatchSuccess is one processed order in a batch report. Carrier and Amount
// are filled from the selected rate when one was chosen.
type BatchSuccess struct {
	OrderID        kernel.UUID
	Status         shipping.LabelStatus
	Carrier        string
	Amount         float64
	TrackingNumber string
}

// BatchFailure is one order whose pipeline run errored. The failure is already
// recorded on the order itself; the report entry exists for the caller and the
// audit trail.
type BatchFailure struct {
	OrderID kernel.UUID
	Message string
}

// BatchReport summarizes one batch run. Requested counts the submitted orders;
// every order lands in exactly one of Succeeded or Failed.
type BatchReport struct {
	Requested int
	Succeeded []BatchSuccess
	Failed    []BatchFailure
}

// ProcessBatchShippingCommandHandler processes orders strictly sequentially,
// isolating failures: one order's error never stops the rest of the batch.
// Sequential processing is deliberate — it keeps per-organization carrier API
// pressure bounded and makes audit entries reflect submission order.
type ProcessBatchShippingCommandHandler struct {
	processor OrderProcessor
	audit     ports.AuditLog
	logger    *slog.Logger
}

// NewProcessBatchShippingCommandHandler creates a batch handler delegating
// per-order work to the given processor.
func NewProcessBatchShippingCommandHandler(
	processor OrderProcessor,
	audit ports.AuditLog,
	logger *slog.Logger,
) ProcessBatchShippingCommandHandler {
	return ProcessBatchShippingCommandHandler{
		processor: processor,
		audit:     audit,
		logger:    logger.With("component", "batch_shipping"),
	}
}

// Handle runs the pipeline for each order in submission order and records an
// audit entry with the batch totals. The returned error covers only command
// validation; per-order failures live in the report.
func (h ProcessBatchShippingCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessBatchShippingCommand,
) (BatchReport, error) {
	if err := cmd.Validate(); err != nil {
		return BatchReport{}, err
	}

	report := BatchReport{Requested: len(cmd.OrderIDs())}

	for _, orderID := range cmd.OrderIDs() {
		orderCmd, err := NewProcessOrderShippingCommand(cmd.OrganizationID(), orderID, "", cmd.AutoPurchase())
		if err != nil {
			report.Failed = append(report.Failed, BatchFailure{OrderID: orderID, Message: err.Error()})
			continue
		}

		result, err := h.processor.Handle(ctx, orderCmd)
		if err != nil {
			h.logger.WarnContext(ctx, "order shipping failed",
				"order_id", orderID.String(),
				"error", err)
			report.Failed = append(report.Failed, BatchFailure{OrderID: orderID, Message: err.Error()})
			continue
		}

		success := BatchSuccess{
			OrderID:        orderID,
			Status:         result.Status,
			TrackingNumber: result.TrackingNumber,
		}
		if result.SelectedRate != nil {
			success.Carrier = result.SelectedRate.Carrier
			success.Amount = result.SelectedRate.Amount
		}
		report.Succeeded = append(report.Succeeded, success)
	}

	h.recordAudit(ctx, cmd.OrganizationID(), report)

	return report, nil
}

// recordAudit writes the batch summary. The audit log is a best-effort sink:
// a write failure is logged but never fails a batch that already ran.
func (h ProcessBatchShippingCommandHandler) recordAudit(
	ctx context.Context,
	organizationID kernel.UUID,
	report BatchReport,
) {
	entry := ports.AuditEntry{
		Action:         ports.AuditActionShippingBatch,
		OrganizationID: organizationID,
		Details: map[string]any{
			"requested": report.Requested,
			"succeeded": len(report.Succeeded),
			"failed":    len(report.Failed),
		},
	}

	if err := h.audit.Record(ctx, entry); err != nil {
		h.logger.WarnContext(ctx, "audit record failed",
			"organization_id", organizationID.String(),
			"error", err)
	}
}
