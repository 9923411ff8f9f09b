// Package shippo implements the carrier-aggregation port against a
// goshippo-style REST API: addresses, customs declarations, shipments with
// synchronous rates, and transactions.
package shippo

import (
	"strconv"

	"shiplabel/internal/core/domain/model/shipping"
)

// Wire representations. The API speaks decimal strings for money and weights
// and uses object_id for identifiers; the domain uses float64 and plain ids,
// so every call site converts at this boundary.

type addressDTO struct {
	ObjectID string `json:"object_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Company  string `json:"company,omitempty"`
	Street1  string `json:"street1"`
	Street2  string `json:"street2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type parcelDTO struct {
	Length       string          `json:"length"`
	Width        string          `json:"width"`
	Height       string          `json:"height"`
	DistanceUnit string          `json:"distance_unit"`
	Weight       string          `json:"weight"`
	MassUnit     string          `json:"mass_unit"`
	Extra        *parcelExtraDTO `json:"extra,omitempty"`
}

type parcelExtraDTO struct {
	Insurance *insuranceDTO `json:"insurance,omitempty"`
}

type insuranceDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Provider string `json:"provider,omitempty"`
}

type customsItemDTO struct {
	Description   string `json:"description"`
	Quantity      int    `json:"quantity"`
	NetWeight     string `json:"net_weight"`
	MassUnit      string `json:"mass_unit"`
	ValueAmount   string `json:"value_amount"`
	ValueCurrency string `json:"value_currency"`
	OriginCountry string `json:"origin_country"`
	TariffNumber  string `json:"tariff_number,omitempty"`
}

type customsDeclarationDTO struct {
	ObjectID            string           `json:"object_id,omitempty"`
	ContentsType        string           `json:"contents_type"`
	ContentsExplanation string           `json:"contents_explanation,omitempty"`
	NonDeliveryOption   string           `json:"non_delivery_option"`
	Certify             bool             `json:"certify"`
	CertifySigner       string           `json:"certify_signer"`
	Incoterm            string           `json:"incoterm"`
	EELPFC              string           `json:"eel_pfc,omitempty"`
	Items               []customsItemDTO `json:"items"`
}

type shipmentRequestDTO struct {
	AddressFrom        addressDTO  `json:"address_from"`
	AddressTo          addressDTO  `json:"address_to"`
	Parcels            []parcelDTO `json:"parcels"`
	CustomsDeclaration string      `json:"customs_declaration,omitempty"`
	Async              bool        `json:"async"`
}

type rateDTO struct {
	ObjectID      string            `json:"object_id"`
	Amount        string            `json:"amount"`
	Currency      string            `json:"currency"`
	Provider      string            `json:"provider"`
	ServiceLevel  serviceLevelDTO   `json:"servicelevel"`
	EstimatedDays int               `json:"estimated_days"`
	DurationTerms string            `json:"duration_terms"`
	Attributes    []string          `json:"attributes,omitempty"`
	Messages      []wireMessageDTO  `json:"messages,omitempty"`
}

type serviceLevelDTO struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type shipmentResponseDTO struct {
	ObjectID string    `json:"object_id"`
	Status   string    `json:"status"`
	Rates    []rateDTO `json:"rates"`
}

type transactionDTO struct {
	ObjectID       string           `json:"object_id"`
	Status         string           `json:"status"`
	Rate           string           `json:"rate"`
	LabelURL       string           `json:"label_url"`
	TrackingNumber string           `json:"tracking_number"`
	TrackingURL    string           `json:"tracking_url_provider"`
	Messages       []wireMessageDTO `json:"messages,omitempty"`
}

type transactionListDTO struct {
	Results []transactionDTO `json:"results"`
}

type transactionRequestDTO struct {
	Rate          string `json:"rate"`
	LabelFileType string `json:"label_file_type,omitempty"`
	Async         bool   `json:"async"`
}

type wireMessageDTO struct {
	Source string `json:"source,omitempty"`
	Code   string `json:"code,omitempty"`
	Text   string `json:"text"`
}

type errorResponseDTO struct {
	Detail  string           `json:"detail,omitempty"`
	Message string           `json:"message,omitempty"`
	Errors  []wireMessageDTO `json:"errors,omitempty"`
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func addressToWire(a shipping.Address) addressDTO {
	return addressDTO{
		Name:    a.Name,
		Company: a.Company,
		Street1: a.Street1,
		Street2: a.Street2,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
		Email:   a.Email,
		Phone:   a.Phone,
	}
}

func addressFromWire(dto addressDTO) shipping.Address {
	return shipping.Address{
		Name:    dto.Name,
		Company: dto.Company,
		Street1: dto.Street1,
		Street2: dto.Street2,
		City:    dto.City,
		State:   dto.State,
		Zip:     dto.Zip,
		Country: dto.Country,
		Email:   dto.Email,
		Phone:   dto.Phone,
	}
}

func parcelToWire(p shipping.Parcel) parcelDTO {
	dto := parcelDTO{
		Length:       decimal(p.Length),
		Width:        decimal(p.Width),
		Height:       decimal(p.Height),
		DistanceUnit: "in",
		Weight:       decimal(p.Weight),
		MassUnit:     "lb",
	}

	if p.Insurance != nil {
		dto.Extra = &parcelExtraDTO{
			Insurance: &insuranceDTO{
				Amount:   decimal(p.Insurance.Amount),
				Currency: p.Insurance.Currency,
				Provider: p.Insurance.Provider,
			},
		}
	}

	return dto
}

func declarationToWire(d shipping.CustomsDeclaration) customsDeclarationDTO {
	items := make([]customsItemDTO, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, customsItemDTO{
			Description:   item.Description,
			Quantity:      item.Quantity,
			NetWeight:     decimal(item.NetWeight),
			MassUnit:      "lb",
			ValueAmount:   decimal(item.Value),
			ValueCurrency: item.Currency,
			OriginCountry: item.OriginCountry,
			TariffNumber:  item.TariffCode,
		})
	}

	return customsDeclarationDTO{
		ContentsType:        d.ContentsType,
		ContentsExplanation: d.ContentsExplanation,
		NonDeliveryOption:   d.NonDeliveryOption,
		Certify:             d.Certify,
		CertifySigner:       d.CertifySigner,
		Incoterm:            d.Incoterm,
		EELPFC:              d.ExportControlCode,
		Items:               items,
	}
}

func rateFromWire(dto rateDTO) shipping.Rate {
	amount, err := strconv.ParseFloat(dto.Amount, 64)
	if err != nil {
		amount = 0
	}

	return shipping.Rate{
		ID:            dto.ObjectID,
		Carrier:       dto.Provider,
		Service:       dto.ServiceLevel.Name,
		Amount:        amount,
		Currency:      dto.Currency,
		TransitDays:   dto.EstimatedDays,
		DurationTerms: dto.DurationTerms,
	}
}

func transactionFromWire(dto transactionDTO) shipping.Transaction {
	var messages []string
	for _, msg := range dto.Messages {
		if msg.Text != "" {
			messages = append(messages, msg.Text)
		}
	}

	return shipping.Transaction{
		ID:             dto.ObjectID,
		Status:         dto.Status,
		RateID:         dto.Rate,
		LabelURL:       dto.LabelURL,
		TrackingNumber: dto.TrackingNumber,
		TrackingURL:    dto.TrackingURL,
		Messages:       messages,
	}
}
