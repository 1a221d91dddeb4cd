package security

import (
	"fmt"

	"aidanwoods.dev/go-paseto"
)

// ViewerClaims is the identity payload minted by the auth subsystem. This
// service only verifies tokens; it never issues credentials.
type ViewerClaims struct {
	Name string `json:"name"`
	Nick string `json:"nick"`
}

type TokenReader struct {
	parser paseto.Parser
	key    paseto.V4AsymmetricPublicKey
}

func NewTokenReader(publicKeyHex string) (*TokenReader, error) {
	key, err := paseto.NewV4AsymmetricPublicKeyFromHex(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("unable to parse auth public key: %v", err)
	}

	return &TokenReader{
		parser: paseto.NewParser(),
		key:    key,
	}, nil
}

func (v *TokenReader) ReadToken(value string) (ViewerClaims, error) {
	var claims ViewerClaims

	token, err := v.parser.ParseV4Public(v.key, value, nil)
	if err != nil {
		return claims, fmt.Errorf("invalid viewer token: %v", err)
	}

	if claims.Name, err = token.GetString("name"); err != nil {
		return claims, fmt.Errorf("viewer token has no name claim: %v", err)
	}
	claims.Nick, _ = token.GetString("nick")

	return claims, nil
}
