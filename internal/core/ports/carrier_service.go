package ports

import (
	"context"

	"shiplabel/internal/core/domain/model/shipping"
)

// CarrierService is the external carrier-aggregation API: address validation,
// customs paperwork, rate shopping, and label purchase across multiple
// carriers behind one REST surface.
//
// Every call takes the organization's API key explicitly — authentication is
// per-tenant and the engine carries no ambient credentials. Non-2xx responses
// surface as errors whose message is the provider's own detail text when the
// provider supplied one.
type CarrierService interface {
	// ValidateAddress submits an address for carrier-side normalization and
	// returns the validated form.
	ValidateAddress(ctx context.Context, apiKey string, addr shipping.Address) (shipping.Address, error)

	// CreateCustomsDeclaration registers an export declaration and returns its
	// carrier-side id for referencing in a shipment request.
	CreateCustomsDeclaration(ctx context.Context, apiKey string, decl shipping.CustomsDeclaration) (string, error)

	// CreateShipment submits a shipment and returns its id together with the
	// candidate rates. Zero rates is not an error.
	CreateShipment(ctx context.Context, apiKey string, shipment shipping.Shipment) (string, []shipping.Rate, error)

	// PurchaseLabel buys a label for the given rate and returns the master
	// transaction. For multi-parcel shipments this covers one parcel only;
	// siblings are discovered via ListTransactionsByRate.
	PurchaseLabel(ctx context.Context, apiKey string, rateID string) (*shipping.Transaction, error)

	// ListTransactionsByRate fetches all transactions generated for a rate,
	// including the master and any asynchronously generated siblings.
	ListTransactionsByRate(ctx context.Context, apiKey string, rateID string) ([]shipping.Transaction, error)
}
