package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotamaster/calculadora-precios-telefonos/internal/ingest"
)

func TestStoreInitialState(t *testing.T) {
	s := NewStore()

	current, hasData := s.Snapshot()
	assert.False(t, hasData)
	assert.Equal(t, 0, current.Len())
	assert.False(t, s.HasData())
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()

	s.Replace(Build([]ingest.OfferRecord{
		{EquipmentName: "iPhone 15", OperatorName: "CLARO", Discount: 1000},
	}))

	current, hasData := s.Snapshot()
	assert.True(t, hasData)
	assert.Equal(t, 1, current.Len())

	model, ok := s.Find("iPhone 15")
	require.True(t, ok)
	assert.Equal(t, "iPhone 15", model.Name)
}

// A second upload replaces the catalog wholesale, no merging.
func TestStoreReplaceIsWholesale(t *testing.T) {
	s := NewStore()

	s.Replace(Build([]ingest.OfferRecord{
		{EquipmentName: "iPhone 15", OperatorName: "CLARO", Discount: 1000},
	}))
	s.Replace(Build([]ingest.OfferRecord{
		{EquipmentName: "Galaxy S24", OperatorName: "WOM", Discount: 500},
	}))

	_, ok := s.Find("iPhone 15")
	assert.False(t, ok)
	_, ok = s.Find("Galaxy S24")
	assert.True(t, ok)
}

func TestStoreReset(t *testing.T) {
	s := NewStore()

	s.Replace(Build([]ingest.OfferRecord{
		{EquipmentName: "iPhone 15", OperatorName: "CLARO", Discount: 1000},
	}))
	s.Reset()

	current, hasData := s.Snapshot()
	assert.False(t, hasData)
	assert.Equal(t, 0, current.Len())
}
