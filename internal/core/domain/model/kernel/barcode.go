package kernel

import (
	"fmt"
	"strings"

	"parcelflow/internal/pkg/errs"
)

// BarcodeMaxLength is the maximum accepted length of a barcode identifier.
const BarcodeMaxLength = 64

// ErrBarcodeIsNotConstructed is returned when attempting to use an improperly
// initialized Barcode. Barcodes must be created via NewBarcode to ensure validity.
var ErrBarcodeIsNotConstructed = errs.NewValueIsRequiredError(
	"barcode must be created via NewBarcode constructor")

// Barcode is the immutable unique identifier of a parcel as printed on its
// label and read by scanners. It is a value object: the zero value is invalid
// and must be constructed through NewBarcode.
//
// Example:
//
//	bc, err := kernel.NewBarcode("TN-2024-000187")
//	if err != nil {
//	    // Handle validation error
//	}
type Barcode struct {
	value string
}

// NewBarcode creates a Barcode from its scanned string form.
// Leading and trailing whitespace is trimmed. The result must be non-empty,
// contain no inner whitespace, and be at most BarcodeMaxLength characters.
func NewBarcode(value string) (Barcode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}
	if len(value) > BarcodeMaxLength {
		return Barcode{}, errs.NewValueIsOutOfRangeError("barcode length", len(value), 1, BarcodeMaxLength)
	}
	if strings.ContainsAny(value, " \t\r\n") {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause(
			"barcode",
			fmt.Errorf("%q contains whitespace", value),
		)
	}

	return Barcode{value: value}, nil
}

// String returns the barcode in its scanned string form.
func (b Barcode) String() string {
	return b.value
}

// IsEqual compares two barcodes by value.
func (b Barcode) IsEqual(other Barcode) bool {
	return b.value == other.value
}

// Validate checks that the barcode was created through NewBarcode.
// Returns ErrBarcodeIsNotConstructed for the zero value.
func (b Barcode) Validate() error {
	if b.value == "" {
		return ErrBarcodeIsNotConstructed
	}
	return nil
}
