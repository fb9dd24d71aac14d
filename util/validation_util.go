// util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/jackoske/AllGoGrand/ledger"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidateWalletAddress checks that address is a well-formed ledger identity.
func (v *ValidationUtil) ValidateWalletAddress(address string) error {
	if address == "" {
		return fmt.Errorf("wallet address cannot be empty")
	}
	if !ledger.IsValidAddress(address) {
		return fmt.Errorf("wallet address is not a valid ledger identity")
	}
	return nil
}

// ValidateCity checks that a resource key names a city.
func (v *ValidationUtil) ValidateCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}
