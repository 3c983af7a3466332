package types

import (
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EscrowState is the lifecycle position of an escrow record. States only move
// forward: Pending -> Funded -> Completed.
type EscrowState int32

const (
	// EscrowStateUnspecified is the zero value carried by drafts.
	EscrowStateUnspecified EscrowState = iota
	EscrowPending
	EscrowFunded
	// EscrowCompleted is set by downstream settlement, never by this module.
	EscrowCompleted
)

var escrowStateNames = map[EscrowState]string{
	EscrowStateUnspecified: "Unspecified",
	EscrowPending:          "Pending",
	EscrowFunded:           "Funded",
	EscrowCompleted:        "Completed",
}

func (s EscrowState) String() string {
	if name, ok := escrowStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("EscrowState(%d)", int32(s))
}

// ParseEscrowState is the inverse of EscrowState.String, case insensitive.
func ParseEscrowState(val string) (EscrowState, error) {
	for state, name := range escrowStateNames {
		if strings.EqualFold(name, val) {
			return state, nil
		}
	}
	return EscrowStateUnspecified, fmt.Errorf("unknown escrow state %q", val)
}

func (s EscrowState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EscrowState) UnmarshalJSON(bz []byte) error {
	var name string
	if err := json.Unmarshal(bz, &name); err != nil {
		return err
	}

	state, err := ParseEscrowState(name)
	if err != nil {
		return err
	}
	*s = state

	return nil
}

func (s EscrowState) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Escrow is one seller/buyer agreement.
//
// In a draft, ID and State are unset and Timeout is a duration in blocks
// relative to the creation height. Once created, ID is a positive integer
// that never changes and Timeout is the absolute deadline height.
type Escrow struct {
	ID        uint64      `json:"id,omitempty" yaml:"id,omitempty"`
	Seller    string      `json:"seller" yaml:"seller"`
	Buyer     string      `json:"buyer" yaml:"buyer"`
	Condition sdk.Coins   `json:"condition" yaml:"condition"`
	Timeout   uint64      `json:"timeout" yaml:"timeout"`
	State     EscrowState `json:"state,omitempty" yaml:"state,omitempty"`
}

// Deadline returns the absolute height at which funding closes. Only
// meaningful for a created escrow.
func (e Escrow) Deadline() uint64 {
	return e.Timeout
}

// Expired reports whether funding is closed at the given height.
func (e Escrow) Expired(height uint64) bool {
	return height >= e.Timeout
}

// ValidateBasic checks a stored escrow for structural soundness.
func (e Escrow) ValidateBasic() error {
	if e.ID == 0 {
		return ErrEscrowIntegrity
	}
	if _, err := sdk.AccAddressFromBech32(e.Seller); err != nil {
		return ErrInvalidAddress.Wrapf("seller: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(e.Buyer); err != nil {
		return ErrInvalidAddress.Wrapf("buyer: %s", err)
	}
	if err := ValidateCondition(e.Condition); err != nil {
		return err
	}
	switch e.State {
	case EscrowPending, EscrowFunded, EscrowCompleted:
	default:
		return ErrInvalidEscrowState.Wrapf("unknown state %s", e.State)
	}
	return nil
}

// ValidateCondition requires a non-empty coin set with positive amounts and
// unique denominations in the sdk denom format. Order is irrelevant.
func ValidateCondition(condition sdk.Coins) error {
	if len(condition) == 0 {
		return ErrInvalidCondition.Wrap("condition must not be empty")
	}
	if err := SortedCoins(condition).Validate(); err != nil {
		return ErrInvalidCondition.Wrap(err.Error())
	}
	return nil
}

// SortedCoins returns a sorted copy of coins, leaving the argument untouched.
func SortedCoins(coins sdk.Coins) sdk.Coins {
	res := make(sdk.Coins, len(coins))
	copy(res, coins)
	return res.Sort()
}

// CoinsMatch reports whether attached exactly equals condition as a multiset
// of (denom, amount) pairs, irrespective of order.
func CoinsMatch(attached, condition sdk.Coins) bool {
	if len(attached) != len(condition) {
		return false
	}

	a := SortedCoins(attached)
	c := SortedCoins(condition)
	for i := range a {
		if a[i].Denom != c[i].Denom {
			return false
		}
		if a[i].Amount.IsNil() || c[i].Amount.IsNil() {
			if a[i].Amount.IsNil() != c[i].Amount.IsNil() {
				return false
			}
			continue
		}
		if !a[i].Amount.Equal(c[i].Amount) {
			return false
		}
	}
	return true
}
