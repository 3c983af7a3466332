package types

import (
	"errors"
	"strconv"

	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeCreateEscrow = "create_escrow"
	EventTypeDeposit      = "deposit"

	AttributeKeySender  = "sender"
	AttributeKeySeller  = "seller"
	AttributeKeyBuyer   = "buyer"
	AttributeKeyTimeout = "timeout"
	AttributeKeyID      = "id"
)

var (
	// ErrUnknownEvent is returned by ParseEvent for events of other types or modules
	ErrUnknownEvent = errors.New("unknown event")
	// ErrMissingAttribute is returned by ParseEvent when a required attribute is absent
	ErrMissingAttribute = errors.New("missing event attribute")
)

// ModuleEvent is an escrow event that can be emitted into an sdk.EventManager
type ModuleEvent interface {
	ToSDKEvent() sdk.Event
}

// EventEscrowCreated is emitted when a draft becomes a pending escrow
type EventEscrowCreated struct {
	Sender  string `json:"sender"`
	ID      uint64 `json:"id"`
	Seller  string `json:"seller"`
	Buyer   string `json:"buyer"`
	Timeout uint64 `json:"timeout"`
}

func NewEventEscrowCreated(sender string, escrow Escrow) EventEscrowCreated {
	return EventEscrowCreated{
		Sender:  sender,
		ID:      escrow.ID,
		Seller:  escrow.Seller,
		Buyer:   escrow.Buyer,
		Timeout: escrow.Timeout,
	}
}

func (ev EventEscrowCreated) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(
		EventTypeCreateEscrow,
		sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
		sdk.NewAttribute(AttributeKeySender, ev.Sender),
		sdk.NewAttribute(AttributeKeySeller, ev.Seller),
		sdk.NewAttribute(AttributeKeyBuyer, ev.Buyer),
		sdk.NewAttribute(AttributeKeyTimeout, strconv.FormatUint(ev.Timeout, 10)),
		sdk.NewAttribute(AttributeKeyID, strconv.FormatUint(ev.ID, 10)),
	)
}

// EventEscrowFunded is emitted when the seller deposits the condition
type EventEscrowFunded struct {
	Sender string `json:"sender"`
	ID     uint64 `json:"id"`
}

func NewEventEscrowFunded(sender string, escrow Escrow) EventEscrowFunded {
	return EventEscrowFunded{
		Sender: sender,
		ID:     escrow.ID,
	}
}

func (ev EventEscrowFunded) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(
		EventTypeDeposit,
		sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
		sdk.NewAttribute(AttributeKeySender, ev.Sender),
		sdk.NewAttribute(AttributeKeyID, strconv.FormatUint(ev.ID, 10)),
	)
}

// ParseEvent turns an emitted escrow event back into its typed form
func ParseEvent(ev abci.Event) (ModuleEvent, error) {
	attrs := make(map[string]string, len(ev.Attributes))
	for _, attr := range ev.Attributes {
		attrs[attr.Key] = attr.Value
	}

	if attrs[sdk.AttributeKeyModule] != ModuleName {
		return nil, ErrUnknownEvent
	}

	switch ev.Type {
	case EventTypeCreateEscrow:
		var res EventEscrowCreated
		var err error

		if res.Sender, err = getString(attrs, AttributeKeySender); err != nil {
			return nil, err
		}
		if res.Seller, err = getString(attrs, AttributeKeySeller); err != nil {
			return nil, err
		}
		if res.Buyer, err = getString(attrs, AttributeKeyBuyer); err != nil {
			return nil, err
		}
		if res.Timeout, err = getUint64(attrs, AttributeKeyTimeout); err != nil {
			return nil, err
		}
		if res.ID, err = getUint64(attrs, AttributeKeyID); err != nil {
			return nil, err
		}

		return res, nil
	case EventTypeDeposit:
		var res EventEscrowFunded
		var err error

		if res.Sender, err = getString(attrs, AttributeKeySender); err != nil {
			return nil, err
		}
		if res.ID, err = getUint64(attrs, AttributeKeyID); err != nil {
			return nil, err
		}

		return res, nil
	default:
		return nil, ErrUnknownEvent
	}
}

func getString(attrs map[string]string, key string) (string, error) {
	val, ok := attrs[key]
	if !ok {
		return "", ErrMissingAttribute
	}
	return val, nil
}

func getUint64(attrs map[string]string, key string) (uint64, error) {
	sval, err := getString(attrs, key)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(sval, 10, 64)
}
