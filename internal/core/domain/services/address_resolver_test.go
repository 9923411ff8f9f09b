package services_test

import (
	"testing"

	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestAddressResolver_Parse(t *testing.T) {
	resolver := services.NewAddressResolver()

	t.Run("full US address with state and zip", func(t *testing.T) {
		addr := resolver.Parse("123 Main St, Springfield, IL 62704")

		assert.Equal(t, "123 Main St", addr.Street1)
		assert.Equal(t, "Springfield", addr.City)
		assert.Equal(t, "IL", addr.State)
		assert.Equal(t, "62704", addr.Zip)
		assert.Equal(t, "US", addr.Country)
	})

	t.Run("nine digit zip", func(t *testing.T) {
		addr := resolver.Parse("55 Water St, New York, NY 10041-0004")

		assert.Equal(t, "NY", addr.State)
		assert.Equal(t, "10041-0004", addr.Zip)
	})

	t.Run("canadian address detected via postal code", func(t *testing.T) {
		addr := resolver.Parse("10 King St, Toronto, ON M5H 1J9")

		assert.Equal(t, "10 King St", addr.Street1)
		assert.Equal(t, "Toronto", addr.City)
		assert.Equal(t, "ON", addr.State)
		assert.Equal(t, "M5H 1J9", addr.Zip)
		assert.Equal(t, "CA", addr.Country)
	})

	t.Run("canadian postal code without space", func(t *testing.T) {
		addr := resolver.Parse("800 Rue Sherbrooke, Montreal, QC, h3a0g4")

		assert.Equal(t, "CA", addr.Country)
		assert.Equal(t, "H3A0G4", addr.Zip)
		assert.Equal(t, "QC", addr.State)
	})

	t.Run("four segments with separate state and zip", func(t *testing.T) {
		addr := resolver.Parse("500 Oak Ave, Dallas, Texas, 75201")

		assert.Equal(t, "Dallas", addr.City)
		assert.Equal(t, "Texas", addr.State)
		assert.Equal(t, "75201", addr.Zip)
		assert.Equal(t, "US", addr.Country)
	})

	t.Run("trailing country override", func(t *testing.T) {
		addr := resolver.Parse("1 High St, London, Greater London, SW1, GB")

		assert.Equal(t, "GB", addr.Country)
	})

	t.Run("trailing token matching state is not a country", func(t *testing.T) {
		addr := resolver.Parse("123 Main St, Springfield, il, IL")

		assert.Equal(t, "US", addr.Country)
	})

	t.Run("two segments yield street and city only", func(t *testing.T) {
		addr := resolver.Parse("42 Elm St, Portland")

		assert.Equal(t, "42 Elm St", addr.Street1)
		assert.Equal(t, "Portland", addr.City)
		assert.Empty(t, addr.State)
		assert.Empty(t, addr.Zip)
		assert.Equal(t, "US", addr.Country)
	})

	t.Run("single segment is street only", func(t *testing.T) {
		addr := resolver.Parse("742 Evergreen Terrace")

		assert.Equal(t, "742 Evergreen Terrace", addr.Street1)
		assert.Empty(t, addr.City)
	})

	t.Run("empty input never fails", func(t *testing.T) {
		addr := resolver.Parse("")

		assert.Empty(t, addr.Street1)
		assert.Equal(t, "US", addr.Country)
	})
}

func TestAddressResolver_Resolve(t *testing.T) {
	resolver := services.NewAddressResolver()

	t.Run("structured address wins over raw", func(t *testing.T) {
		structured := &shipping.Address{
			Street1: "1 Warehouse Way",
			City:    "Reno",
			State:   "NV",
			Zip:     "89501",
		}

		addr := resolver.Resolve(structured, "ignored, raw", "Jane Doe", "jane@example.com", "555-0100")

		assert.Equal(t, "1 Warehouse Way", addr.Street1)
		assert.Equal(t, "US", addr.Country)
		assert.Equal(t, "Jane Doe", addr.Name)
		assert.Equal(t, "jane@example.com", addr.Email)
		assert.Equal(t, "555-0100", addr.Phone)
	})

	t.Run("structured contact fields are not overwritten", func(t *testing.T) {
		structured := &shipping.Address{
			Street1: "1 Warehouse Way",
			City:    "Reno",
			Name:    "Receiving Dept",
			Country: "CA",
		}

		addr := resolver.Resolve(structured, "", "Jane Doe", "", "")

		assert.Equal(t, "Receiving Dept", addr.Name)
		assert.Equal(t, "CA", addr.Country)
	})

	t.Run("falls back to parsing raw input", func(t *testing.T) {
		addr := resolver.Resolve(nil, "123 Main St, Springfield, IL 62704", "John", "j@example.com", "")

		assert.Equal(t, "Springfield", addr.City)
		assert.Equal(t, "John", addr.Name)
		assert.Equal(t, "j@example.com", addr.Email)
	})
}
