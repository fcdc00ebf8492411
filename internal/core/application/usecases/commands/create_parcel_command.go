package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrArticleCountIsInvalid = errors.New("article count must be at least 1")
)

// CreateParcelCommand represents a client's request to register a new parcel
// for pickup. The parcel enters the workflow in EN_ATTENTE.
//
// Example:
//
//	barcode, _ := kernel.NewBarcode("TN-2024-000187")
//	price, _ := kernel.NewMoneyFromString("12.500")
//	cmd, err := NewCreateParcelCommand(barcode, clientID, price, 1, recipient, nil, "fragile")
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory, locker)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	barcode      kernel.Barcode
	clientID     kernel.UUID
	price        kernel.Money
	articleCount int
	recipient    parcel.Recipient
	exchange     *parcel.Exchange
	note         string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates the barcode, client, article count, recipient, and the optional
// exchange linkage. Returns an error if any validation fails.
func NewCreateParcelCommand(
	barcode kernel.Barcode,
	clientID kernel.UUID,
	price kernel.Money,
	articleCount int,
	recipient parcel.Recipient,
	exchange *parcel.Exchange,
	note string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBarcode(barcode),
		cmd.setClientID(clientID),
		cmd.setPrice(price),
		cmd.setArticleCount(articleCount),
		cmd.setRecipient(recipient),
		cmd.setExchange(exchange),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// Barcode returns the parcel's label identifier.
func (c CreateParcelCommand) Barcode() kernel.Barcode {
	return c.barcode
}

// ClientID returns the owning client's identifier.
func (c CreateParcelCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Price returns the amount to collect on delivery.
func (c CreateParcelCommand) Price() kernel.Money {
	return c.price
}

// ArticleCount returns the number of articles in the parcel.
func (c CreateParcelCommand) ArticleCount() int {
	return c.articleCount
}

// Recipient returns the delivery contact details.
func (c CreateParcelCommand) Recipient() parcel.Recipient {
	return c.recipient
}

// Exchange returns the optional exchange linkage, or nil.
func (c CreateParcelCommand) Exchange() *parcel.Exchange {
	return c.exchange
}

// Note returns the client's free-text note.
func (c CreateParcelCommand) Note() string {
	return c.note
}

func (c *CreateParcelCommand) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	c.barcode = barcode
	return nil
}

func (c *CreateParcelCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateParcelCommand) setPrice(price kernel.Money) error {
	c.price = price
	return nil
}

func (c *CreateParcelCommand) setArticleCount(articleCount int) error {
	if articleCount < 1 {
		return ErrArticleCountIsInvalid
	}
	c.articleCount = articleCount
	return nil
}

func (c *CreateParcelCommand) setRecipient(recipient parcel.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	c.recipient = recipient
	return nil
}

func (c *CreateParcelCommand) setExchange(exchange *parcel.Exchange) error {
	if exchange == nil {
		return nil
	}
	if err := exchange.Validate(); err != nil {
		return err
	}
	c.exchange = exchange
	return nil
}
