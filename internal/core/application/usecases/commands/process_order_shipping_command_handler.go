package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"shiplabel/internal/core/domain/model/order"
	"shiplabel/internal/core/domain/model/organization"
	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/core/domain/services"
	"shiplabel/internal/core/ports"
)

var (
	ErrAPIKeyIsNotConfigured      = errors.New("organization has no carrier API key configured")
	ErrFromAddressIsNotConfigured = errors.New("organization has no warehouse from address configured")
	ErrOrderHasNoDestination      = errors.New("order has no destination address")
)

// ProcessOrderShippingCommandHandler runs the shipping pipeline for one order:
// load settings and order, resolve the destination, build parcels and customs
// paperwork, fetch rates, select one, and optionally purchase a label.
//
// Every attempt that gets past loading the order persists a shipping result,
// including attempts that end in a pipeline error; the result's status is the
// single source of truth for what happened.
type ProcessOrderShippingCommandHandler struct {
	organizations ports.OrganizationStore
	orders        ports.OrderStore
	carrier       ports.CarrierService
	purchaser     LabelPurchaser

	resolver services.AddressResolver
	parcels  services.ParcelBuilder
	customs  services.CustomsBuilder
	selector services.RateSelector
}

// NewProcessOrderShippingCommandHandler creates a handler wired to the given
// stores and carrier service.
func NewProcessOrderShippingCommandHandler(
	organizations ports.OrganizationStore,
	orders ports.OrderStore,
	carrier ports.CarrierService,
	purchaser LabelPurchaser,
) ProcessOrderShippingCommandHandler {
	return ProcessOrderShippingCommandHandler{
		organizations: organizations,
		orders:        orders,
		carrier:       carrier,
		purchaser:     purchaser,
		resolver:      services.NewAddressResolver(),
		parcels:       services.NewParcelBuilder(),
		customs:       services.NewCustomsBuilder(),
		selector:      services.NewRateSelector(),
	}
}

// Handle processes the shipping command and returns the persisted result.
// A pipeline failure after the order was loaded still writes an error-status
// result onto the order record before returning the error.
func (h ProcessOrderShippingCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessOrderShippingCommand,
) (*shipping.ShippingResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	org, err := h.organizations.Get(ctx, cmd.OrganizationID())
	if err != nil {
		return nil, err
	}

	ord, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	result, err := h.process(ctx, org, ord, cmd)
	if err != nil {
		failure := &shipping.ShippingResult{
			Status:      shipping.LabelStatusError,
			Message:     err.Error(),
			ProcessedAt: time.Now().UTC(),
		}
		// Best effort: the pipeline error is what the caller needs to see.
		_ = h.orders.UpdateShippingResult(ctx, ord.ID, failure)
		return failure, err
	}

	if err = h.orders.UpdateShippingResult(ctx, ord.ID, result); err != nil {
		return result, err
	}

	return result, nil
}

func (h ProcessOrderShippingCommandHandler) process(
	ctx context.Context,
	org *organization.Organization,
	ord *order.Order,
	cmd ProcessOrderShippingCommand,
) (*shipping.ShippingResult, error) {
	settings := org.Shipping
	if settings.APIKey == "" {
		return nil, ErrAPIKeyIsNotConfigured
	}

	if cmd.RateID() != "" {
		return h.purchaseRate(ctx, settings.APIKey, cmd.RateID())
	}

	if settings.From.IsZero() {
		return nil, ErrFromAddressIsNotConfigured
	}
	if !ord.HasDestination() {
		return nil, ErrOrderHasNoDestination
	}

	destination := h.resolveDestination(ord)

	fromCountry := settings.From.Country
	if fromCountry == "" {
		fromCountry = shipping.DefaultCountry
	}
	international := !strings.EqualFold(fromCountry, destination.Country)

	parcels := h.parcels.Build(ord, ord.InsurableAmount())

	var customsID string
	if international {
		declaration := h.customs.Build(ord, settings.From.Name)
		id, err := h.carrier.CreateCustomsDeclaration(ctx, settings.APIKey, declaration)
		if err != nil {
			return nil, err
		}
		customsID = id
	}

	shipmentID, rates, err := h.carrier.CreateShipment(ctx, settings.APIKey, shipping.Shipment{
		From:                 settings.From,
		To:                   destination,
		Parcels:              parcels,
		CustomsDeclarationID: customsID,
	})
	if err != nil {
		return nil, err
	}

	selected := h.selector.Select(rates, settings.PreferredCarrier)

	result := &shipping.ShippingResult{
		ShipmentID:         shipmentID,
		International:      international,
		DestinationCountry: destination.Country,
		Rates:              rates,
		SelectedRate:       selected,
		ParcelCount:        len(parcels),
		Status:             shipping.LabelStatusRatesReady,
		ProcessedAt:        time.Now().UTC(),
	}

	if selected != nil && cmd.AutoPurchase() && settings.AutoPurchase {
		tx, err := h.purchaser.Purchase(ctx, settings.APIKey, selected.ID)
		if err != nil {
			return nil, err
		}
		applyTransaction(result, tx)
	}

	return result, nil
}

// purchaseRate handles the direct-purchase path: a caller already picked a
// rate, so rate shopping and address work are skipped entirely.
func (h ProcessOrderShippingCommandHandler) purchaseRate(
	ctx context.Context,
	apiKey, rateID string,
) (*shipping.ShippingResult, error) {
	tx, err := h.purchaser.Purchase(ctx, apiKey, rateID)
	if err != nil {
		return nil, err
	}

	result := &shipping.ShippingResult{
		Status:      shipping.LabelStatusRatesReady,
		ProcessedAt: time.Now().UTC(),
	}
	applyTransaction(result, tx)

	return result, nil
}

// resolveDestination picks the destination address from the order's sources in
// priority order and applies the customs destination-country override when
// present.
func (h ProcessOrderShippingCommandHandler) resolveDestination(ord *order.Order) shipping.Address {
	raw := ord.ShippingAddress
	if raw == "" {
		raw = ord.CustomerAddress
	}

	destination := h.resolver.Resolve(ord.ShipTo, raw, ord.ShipToName, ord.ShipToEmail, ord.ShipToPhone)

	if ord.Customs != nil && ord.Customs.DestinationCountry != "" {
		destination.Country = strings.ToUpper(ord.Customs.DestinationCountry)
	}

	return destination
}

// applyTransaction stamps the purchase outcome onto the result. A failed
// master transaction is a terminal "failed", not a pipeline error: the
// attempt itself completed and its reason is recorded on the result.
func applyTransaction(result *shipping.ShippingResult, tx *shipping.Transaction) {
	result.TransactionID = tx.ID
	result.LabelURL = tx.LabelURL
	result.TrackingNumber = tx.TrackingNumber
	result.TrackingURL = tx.TrackingURL
	result.AllLabels = tx.AllLabels

	if tx.Succeeded() {
		result.Status = shipping.LabelStatusPurchased
		return
	}

	result.Status = shipping.LabelStatusFailed
	result.Message = tx.FailureReason()
}
