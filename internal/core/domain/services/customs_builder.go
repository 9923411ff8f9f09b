package services

import (
	"math"

	"shiplabel/internal/core/domain/model/order"
	"shiplabel/internal/core/domain/model/shipping"
)

// CustomsBuilder assembles the export declaration for an international
// shipment from the order's line items. The caller decides whether a
// declaration is needed at all; domestic shipments never reach this builder.
//
// Defaults guarantee a well-formed declaration: merchandise contents, return
// on non-delivery, DDU incoterm, and certification signed with the
// organization's from-address name. Any field in the order's customs info
// block overrides its default.
type CustomsBuilder struct{}

// NewCustomsBuilder creates a CustomsBuilder.
func NewCustomsBuilder() CustomsBuilder {
	return CustomsBuilder{}
}

// Build produces the customs declaration for an order. One customs item is
// emitted per line item; an order with no line items synthesizes a single
// fallback item from the order's description and totals.
func (b CustomsBuilder) Build(ord *order.Order, signerName string) shipping.CustomsDeclaration {
	decl := shipping.CustomsDeclaration{
		ContentsType:      shipping.ContentsTypeMerchandise,
		NonDeliveryOption: shipping.NonDeliveryOptionReturn,
		Incoterm:          shipping.IncotermDDU,
		Certify:           true,
		CertifySigner:     signerName,
		Items:             b.buildItems(ord),
	}

	if ci := ord.Customs; ci != nil {
		if ci.ContentsType != "" {
			decl.ContentsType = ci.ContentsType
		}
		if ci.ContentsExplanation != "" {
			decl.ContentsExplanation = ci.ContentsExplanation
		}
		if ci.NonDeliveryOption != "" {
			decl.NonDeliveryOption = ci.NonDeliveryOption
		}
		if ci.Incoterm != "" {
			decl.Incoterm = ci.Incoterm
		}
		if ci.Signer != "" {
			decl.CertifySigner = ci.Signer
		}
		if ci.ExportControlCode != "" {
			decl.ExportControlCode = ci.ExportControlCode
		}
	}

	return decl
}

func (b CustomsBuilder) buildItems(ord *order.Order) []shipping.CustomsItem {
	if len(ord.Items) == 0 {
		return []shipping.CustomsItem{b.fallbackItem(ord)}
	}

	items := make([]shipping.CustomsItem, 0, len(ord.Items))
	for _, line := range ord.Items {
		items = append(items, shipping.CustomsItem{
			Description:   itemDescription(line.Description, ord),
			Quantity:      quantityOrOne(line.Quantity),
			NetWeight:     itemNetWeight(line.WeightLb),
			Value:         itemValue(line.UnitPrice),
			Currency:      "USD",
			OriginCountry: shipping.CustomsOriginCountry,
			TariffCode:    line.TariffCode,
		})
	}
	return items
}

// fallbackItem covers orders packed without line-item detail: one declaration
// line built from the order's own description and totals, at a fixed 5 lb.
func (b CustomsBuilder) fallbackItem(ord *order.Order) shipping.CustomsItem {
	value := ord.Subtotal
	if value <= 0 {
		value = ord.Total
	}
	if value <= 0 {
		value = shipping.CustomsDefaultItemValue
	}

	return shipping.CustomsItem{
		Description:   itemDescription(ord.Description, ord),
		Quantity:      1,
		NetWeight:     shipping.CustomsDefaultItemWeight,
		Value:         value,
		Currency:      "USD",
		OriginCountry: shipping.CustomsOriginCountry,
	}
}

// itemNetWeight converts an optional line weight into whole pounds, never
// below one. Missing weights count as 2 lb before rounding.
func itemNetWeight(weightLb float64) float64 {
	if weightLb <= 0 {
		weightLb = 2
	}
	return math.Max(1, math.Round(weightLb))
}

func itemValue(unitPrice float64) float64 {
	if unitPrice <= 0 {
		return shipping.CustomsDefaultItemValue
	}
	return unitPrice
}

func quantityOrOne(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}

func itemDescription(desc string, ord *order.Order) string {
	if desc != "" {
		return desc
	}
	if ord.Number != "" {
		return "Order " + ord.Number
	}
	return "Merchandise"
}
