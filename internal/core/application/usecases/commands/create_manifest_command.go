package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/manifest"
	"parcelflow/internal/pkg/guard"
)

var ErrCreateManifestCommandIsNotConstructed = errors.New(
	"CreateManifestCommand must be created via NewCreateManifestCommand constructor",
)

// CreateManifestCommand represents a request to group a selection of a
// client's warehouse parcels into one dispatch batch. The selection order is
// preserved: it becomes the printed run sheet order.
type CreateManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	clientID   kernel.UUID
	barcodes   []kernel.Barcode

	guard guard.ConstructorGuard
}

// NewCreateManifestCommand creates a command to batch the given barcodes for
// clientID under manifestID. The selection must be non-empty, every barcode
// valid, and no barcode listed twice.
//
// Example:
//
//	manifestID := kernel.NewUUID()
//	cmd, err := NewCreateManifestCommand(manifestID, clientID, barcodes)
func NewCreateManifestCommand(
	manifestID, clientID kernel.UUID,
	barcodes []kernel.Barcode,
) (CreateManifestCommand, error) {
	cmd := CreateManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setClientID(clientID),
		cmd.setBarcodes(barcodes),
	); err != nil {
		return CreateManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManifestCommand) Validate() error {
	return c.guard.Validate(ErrCreateManifestCommandIsNotConstructed)
}

// ManifestID returns the identifier for the new manifest.
func (c CreateManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// ClientID returns the owning client's identifier.
func (c CreateManifestCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Barcodes returns the selected barcodes in request order.
func (c CreateManifestCommand) Barcodes() []kernel.Barcode {
	return c.barcodes
}

func (c *CreateManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	c.manifestID = manifestID
	return nil
}

func (c *CreateManifestCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateManifestCommand) setBarcodes(barcodes []kernel.Barcode) error {
	if len(barcodes) == 0 {
		return manifest.ErrEmptySelection
	}

	seen := make(map[string]struct{}, len(barcodes))
	selection := make([]kernel.Barcode, 0, len(barcodes))
	for _, barcode := range barcodes {
		if err := barcode.Validate(); err != nil {
			return err
		}
		if _, ok := seen[barcode.String()]; ok {
			return manifest.ErrDuplicateMember
		}
		seen[barcode.String()] = struct{}{}
		selection = append(selection, barcode)
	}

	c.barcodes = selection
	return nil
}
