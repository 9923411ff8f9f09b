package shippo

import (
	"context"
	"fmt"
	"time"

	"shiplabel/internal/core/domain/model/shipping"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production endpoint of the carrier-aggregation API.
const DefaultBaseURL = "https://api.goshippo.com"

const defaultTimeout = 30 * time.Second

// Client implements ports.CarrierService over the aggregation API's REST
// surface. One client serves all tenants; the per-organization API key is
// supplied per call and sent as an authorization header.
type Client struct {
	rest *resty.Client
}

// NewClient creates a client against the given base URL. An empty baseURL
// targets the production API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json")

	return &Client{rest: rest}
}

func (c *Client) request(ctx context.Context, apiKey string) *resty.Request {
	return c.rest.R().
		SetContext(ctx).
		SetHeader("Authorization", "ShippoToken "+apiKey)
}

// apiError turns a non-2xx response into an error carrying the provider's own
// detail text when one was returned.
func apiError(operation string, resp *resty.Response) error {
	var body errorResponseDTO
	if parsed, ok := resp.Error().(*errorResponseDTO); ok && parsed != nil {
		body = *parsed
	}

	detail := body.Detail
	if detail == "" {
		detail = body.Message
	}
	if detail == "" && len(body.Errors) > 0 {
		detail = body.Errors[0].Text
	}
	if detail == "" {
		detail = resp.Status()
	}

	return fmt.Errorf("%s: %s", operation, detail)
}

// ValidateAddress submits an address for carrier-side normalization.
func (c *Client) ValidateAddress(
	ctx context.Context,
	apiKey string,
	addr shipping.Address,
) (shipping.Address, error) {
	payload := addressToWire(addr)

	var result addressDTO
	resp, err := c.request(ctx, apiKey).
		SetBody(payload).
		SetResult(&result).
		SetError(&errorResponseDTO{}).
		Post("/addresses")
	if err != nil {
		return shipping.Address{}, err
	}
	if resp.IsError() {
		return shipping.Address{}, apiError("validate address", resp)
	}

	return addressFromWire(result), nil
}

// CreateCustomsDeclaration registers an export declaration and returns its id.
func (c *Client) CreateCustomsDeclaration(
	ctx context.Context,
	apiKey string,
	decl shipping.CustomsDeclaration,
) (string, error) {
	payload := declarationToWire(decl)

	var result customsDeclarationDTO
	resp, err := c.request(ctx, apiKey).
		SetBody(payload).
		SetResult(&result).
		SetError(&errorResponseDTO{}).
		Post("/customs/declarations")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", apiError("create customs declaration", resp)
	}

	return result.ObjectID, nil
}

// CreateShipment submits a shipment synchronously and returns its id with the
// quoted rates. Zero rates is a valid outcome, not an error.
func (c *Client) CreateShipment(
	ctx context.Context,
	apiKey string,
	shipment shipping.Shipment,
) (string, []shipping.Rate, error) {
	parcels := make([]parcelDTO, 0, len(shipment.Parcels))
	for _, p := range shipment.Parcels {
		parcels = append(parcels, parcelToWire(p))
	}

	payload := shipmentRequestDTO{
		AddressFrom:        addressToWire(shipment.From),
		AddressTo:          addressToWire(shipment.To),
		Parcels:            parcels,
		CustomsDeclaration: shipment.CustomsDeclarationID,
		Async:              false,
	}

	var result shipmentResponseDTO
	resp, err := c.request(ctx, apiKey).
		SetBody(payload).
		SetResult(&result).
		SetError(&errorResponseDTO{}).
		Post("/shipments")
	if err != nil {
		return "", nil, err
	}
	if resp.IsError() {
		return "", nil, apiError("create shipment", resp)
	}

	rates := make([]shipping.Rate, 0, len(result.Rates))
	for _, dto := range result.Rates {
		rates = append(rates, rateFromWire(dto))
	}

	return result.ObjectID, rates, nil
}

// PurchaseLabel buys a label for the given rate and returns the master
// transaction.
func (c *Client) PurchaseLabel(
	ctx context.Context,
	apiKey string,
	rateID string,
) (*shipping.Transaction, error) {
	payload := transactionRequestDTO{
		Rate:          rateID,
		LabelFileType: "PDF",
		Async:         false,
	}

	var result transactionDTO
	resp, err := c.request(ctx, apiKey).
		SetBody(payload).
		SetResult(&result).
		SetError(&errorResponseDTO{}).
		Post("/transactions")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("purchase label", resp)
	}

	tx := transactionFromWire(result)
	return &tx, nil
}

// ListTransactionsByRate fetches all transactions generated for a rate.
func (c *Client) ListTransactionsByRate(
	ctx context.Context,
	apiKey string,
	rateID string,
) ([]shipping.Transaction, error) {
	var result transactionListDTO
	resp, err := c.request(ctx, apiKey).
		SetQueryParam("rate", rateID).
		SetResult(&result).
		SetError(&errorResponseDTO{}).
		Get("/transactions")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("list transactions", resp)
	}

	transactions := make([]shipping.Transaction, 0, len(result.Results))
	for _, dto := range result.Results {
		transactions = append(transactions, transactionFromWire(dto))
	}

	return transactions, nil
}
