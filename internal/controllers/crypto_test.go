package controllers_test

import (
	"testing"

	"pairtrader/internal/controllers"

	"github.com/stretchr/testify/assert"
)

func TestCryptoController(t *testing.T) {
	secretKey := "H6kbAHyGNNUdpp1aFEQpqwcQgDLTEWCe45W46vDcWGRtcZuKLJ2g52MdqC6QjuI5"

	cryptoController := controllers.NewCryptoController(secretKey, "open sesame")

	t.Run("signature is deterministic", func(t *testing.T) {
		sig := cryptoController.GetSignature("symbol=KO&timestamp=1693000000")

		assert.Len(t, sig, 64)
		assert.Equal(t, sig, cryptoController.GetSignature("symbol=KO&timestamp=1693000000"))
		assert.NotEqual(t, sig, cryptoController.GetSignature("symbol=PEP&timestamp=1693000000"))
	})

	t.Run("signature depends on the key", func(t *testing.T) {
		other := controllers.NewCryptoController("another-key", "open sesame")

		assert.NotEqual(t,
			cryptoController.GetSignature("symbol=KO"),
			other.GetSignature("symbol=KO"),
		)
	})

	t.Run("passphrase", func(t *testing.T) {
		assert.True(t, cryptoController.PassphraseValid("open sesame"))
		assert.False(t, cryptoController.PassphraseValid("open Sesame"))
		assert.False(t, cryptoController.PassphraseValid(""))
	})
}
