package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrDeleteManifestCommandIsNotConstructed = errors.New(
	"DeleteManifestCommand must be created via NewDeleteManifestCommand constructor",
)

// DeleteManifestCommand represents a request to dissolve a dispatch batch:
// every member is detached and returned to EN_ATTENTE, then the manifest
// itself is removed. Parcels are never deleted.
type DeleteManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewDeleteManifestCommand creates a command to dissolve the manifest
// identified by manifestID.
func NewDeleteManifestCommand(manifestID kernel.UUID, actor string) (DeleteManifestCommand, error) {
	cmd := DeleteManifestCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setManifestID(manifestID); err != nil {
		return DeleteManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteManifestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteManifestCommandIsNotConstructed)
}

// ManifestID returns the batch to dissolve.
func (c DeleteManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// Actor returns the identity performing the dissolution.
func (c DeleteManifestCommand) Actor() string {
	return c.actor
}

func (c *DeleteManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	c.manifestID = manifestID
	return nil
}
