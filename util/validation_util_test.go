package util_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackoske/AllGoGrand/ledger"
	"github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/util"
)

func TestMain(m *testing.M) {
	logging.InitLogger("")
	os.Exit(m.Run())
}

func TestValidateWalletAddress(t *testing.T) {
	v := util.NewValidationUtil()

	account, err := ledger.GenerateAccount()
	require.NoError(t, err)
	assert.NoError(t, v.ValidateWalletAddress(account.Address))

	assert.Error(t, v.ValidateWalletAddress(""))
	assert.Error(t, v.ValidateWalletAddress("not-a-wallet"))
}

func TestValidateCity(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateCity("London"))
	assert.Error(t, v.ValidateCity(""))
	assert.Error(t, v.ValidateCity("   "))
}
