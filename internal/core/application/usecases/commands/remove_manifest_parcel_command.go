package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrRemoveManifestParcelCommandIsNotConstructed = errors.New(
	"RemoveManifestParcelCommand must be created via NewRemoveManifestParcelCommand constructor",
)

// RemoveManifestParcelCommand represents a request to pull one parcel out of
// a dispatch batch before the run goes out, putting it back in EN_ATTENTE.
type RemoveManifestParcelCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	barcode    kernel.Barcode
	actor      string

	guard guard.ConstructorGuard
}

// NewRemoveManifestParcelCommand creates a command to remove barcode from the
// manifest identified by manifestID.
func NewRemoveManifestParcelCommand(
	manifestID kernel.UUID,
	barcode kernel.Barcode,
	actor string,
) (RemoveManifestParcelCommand, error) {
	cmd := RemoveManifestParcelCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setBarcode(barcode),
	); err != nil {
		return RemoveManifestParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveManifestParcelCommand) Validate() error {
	return c.guard.Validate(ErrRemoveManifestParcelCommandIsNotConstructed)
}

// ManifestID returns the batch to modify.
func (c RemoveManifestParcelCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// Barcode returns the member to remove.
func (c RemoveManifestParcelCommand) Barcode() kernel.Barcode {
	return c.barcode
}

// Actor returns the identity performing the removal.
func (c RemoveManifestParcelCommand) Actor() string {
	return c.actor
}

func (c *RemoveManifestParcelCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	c.manifestID = manifestID
	return nil
}

func (c *RemoveManifestParcelCommand) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	c.barcode = barcode
	return nil
}
