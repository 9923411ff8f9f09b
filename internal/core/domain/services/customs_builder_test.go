package services_test

import (
	"testing"

	"shiplabel/internal/core/domain/model/order"
	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomsBuilder_Build_Defaults(t *testing.T) {
	builder := services.NewCustomsBuilder()

	ord := &order.Order{
		Items: []order.LineItem{
			{Description: "Widget", Quantity: 3, WeightLb: 1.4, UnitPrice: 19.99, TariffCode: "8471.30"},
		},
	}

	decl := builder.Build(ord, "Acme Warehouse")

	assert.Equal(t, shipping.ContentsTypeMerchandise, decl.ContentsType)
	assert.Equal(t, shipping.NonDeliveryOptionReturn, decl.NonDeliveryOption)
	assert.Equal(t, shipping.IncotermDDU, decl.Incoterm)
	assert.True(t, decl.Certify)
	assert.Equal(t, "Acme Warehouse", decl.CertifySigner)

	require.Len(t, decl.Items, 1)
	item := decl.Items[0]
	assert.Equal(t, "Widget", item.Description)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, 1.0, item.NetWeight) // round(1.4) = 1
	assert.Equal(t, 19.99, item.Value)
	assert.Equal(t, "US", item.OriginCountry)
	assert.Equal(t, "8471.30", item.TariffCode)
}

func TestCustomsBuilder_Build_ItemDefaults(t *testing.T) {
	builder := services.NewCustomsBuilder()

	t.Run("missing weight counts as two pounds", func(t *testing.T) {
		ord := &order.Order{Items: []order.LineItem{{Description: "Gadget"}}}

		decl := builder.Build(ord, "Signer")

		require.Len(t, decl.Items, 1)
		assert.Equal(t, 2.0, decl.Items[0].NetWeight)
		assert.Equal(t, 1, decl.Items[0].Quantity)
		assert.Equal(t, 10.0, decl.Items[0].Value)
	})

	t.Run("net weight never drops below one pound", func(t *testing.T) {
		ord := &order.Order{Items: []order.LineItem{{Description: "Feather", WeightLb: 0.2}}}

		decl := builder.Build(ord, "Signer")

		assert.Equal(t, 1.0, decl.Items[0].NetWeight)
	})
}

func TestCustomsBuilder_Build_FallbackItem(t *testing.T) {
	builder := services.NewCustomsBuilder()

	t.Run("order without line items synthesizes one item", func(t *testing.T) {
		ord := &order.Order{
			Number:      "SO-1042",
			Description: "Replacement pump assembly",
			Subtotal:    480.5,
			Total:       512.0,
		}

		decl := builder.Build(ord, "Signer")

		require.Len(t, decl.Items, 1)
		item := decl.Items[0]
		assert.Equal(t, "Replacement pump assembly", item.Description)
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, 5.0, item.NetWeight)
		assert.Equal(t, 480.5, item.Value)
	})

	t.Run("fallback value uses total when subtotal is absent", func(t *testing.T) {
		ord := &order.Order{Number: "SO-7", Total: 99.0}

		decl := builder.Build(ord, "Signer")

		assert.Equal(t, 99.0, decl.Items[0].Value)
		assert.Equal(t, "Order SO-7", decl.Items[0].Description)
	})
}

func TestCustomsBuilder_Build_Overrides(t *testing.T) {
	builder := services.NewCustomsBuilder()

	ord := &order.Order{
		Items: []order.LineItem{{Description: "Widget"}},
		Customs: &order.CustomsInfo{
			ContentsType:        "GIFT",
			ContentsExplanation: "birthday present",
			NonDeliveryOption:   "ABANDON",
			Incoterm:            "DDP",
			Signer:              "Override Signer",
			ExportControlCode:   "NOEEI_30_37_a",
		},
	}

	decl := builder.Build(ord, "Default Signer")

	assert.Equal(t, "GIFT", decl.ContentsType)
	assert.Equal(t, "birthday present", decl.ContentsExplanation)
	assert.Equal(t, "ABANDON", decl.NonDeliveryOption)
	assert.Equal(t, "DDP", decl.Incoterm)
	assert.Equal(t, "Override Signer", decl.CertifySigner)
	assert.Equal(t, "NOEEI_30_37_a", decl.ExportControlCode)
}
