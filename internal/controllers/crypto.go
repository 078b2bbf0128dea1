package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

type CryptoController struct {
	secretKey  string
	passphrase string
}

func NewCryptoController(secretKey, passphrase string) *CryptoController {
	return &CryptoController{
		secretKey:  secretKey,
		passphrase: passphrase,
	}
}

func (c *CryptoController) GetSignature(query string) string {

	h := hmac.New(sha256.New, []byte(c.secretKey))
	h.Write([]byte(query))
	sig := hex.EncodeToString(h.Sum(nil))

	return sig
}

// PassphraseValid compares digests so the check runs in constant time.
func (c *CryptoController) PassphraseValid(passphrase string) bool {
	return hmac.Equal(
		[]byte(c.GetSignature(passphrase)),
		[]byte(c.GetSignature(c.passphrase)),
	)
}
