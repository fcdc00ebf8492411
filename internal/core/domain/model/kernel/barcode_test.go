package kernel_test

import (
	"strings"
	"testing"

	"parcelflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarcode(t *testing.T) {
	t.Run("should create barcode from valid string", func(t *testing.T) {
		bc, err := kernel.NewBarcode("TN-2024-000187")

		require.NoError(t, err)
		assert.Equal(t, "TN-2024-000187", bc.String())
		assert.NoError(t, bc.Validate())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		bc, err := kernel.NewBarcode("  TN-2024-000187\n")

		require.NoError(t, err)
		assert.Equal(t, "TN-2024-000187", bc.String())
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := kernel.NewBarcode("   ")

		require.Error(t, err)
	})

	t.Run("should reject inner whitespace", func(t *testing.T) {
		_, err := kernel.NewBarcode("TN 2024")

		require.Error(t, err)
	})

	t.Run("should reject overlong value", func(t *testing.T) {
		_, err := kernel.NewBarcode(strings.Repeat("9", kernel.BarcodeMaxLength+1))

		require.Error(t, err)
	})
}

func TestBarcode_IsEqual(t *testing.T) {
	bc1, _ := kernel.NewBarcode("TN-2024-000187")
	bc2, _ := kernel.NewBarcode("TN-2024-000187")
	bc3, _ := kernel.NewBarcode("TN-2024-000188")

	assert.True(t, bc1.IsEqual(bc2))
	assert.False(t, bc1.IsEqual(bc3))
}

func TestBarcode_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var bc kernel.Barcode

		require.Error(t, bc.Validate())
	})
}
