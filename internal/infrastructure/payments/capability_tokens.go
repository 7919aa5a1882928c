package payments

import (
	"errors"
	"fmt"
	"strings"

	"underwriting_service/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

var ErrMissingTokenSecret = errors.New("missing PAYMENT_TOKEN_SECRET")

const tokenIssuer = "underwriting-service"

type capabilityClaims struct {
	Amount string `json:"amt"`
	jwt.RegisteredClaims
}

// JWTCapabilityTokens signs customer payment tokens with HS256.
//
// sub is the proposal id, jti the artifact id, amt the amount to collect.
type JWTCapabilityTokens struct {
	secret []byte
}

var _ interfaces.ICapabilityTokens = (*JWTCapabilityTokens)(nil)

func NewJWTCapabilityTokens(secret string) (*JWTCapabilityTokens, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrMissingTokenSecret
	}
	return &JWTCapabilityTokens{secret: []byte(secret)}, nil
}

func (t *JWTCapabilityTokens) Issue(c interfaces.CapabilityClaims) (string, error) {
	claims := capabilityClaims{
		Amount: c.Amount.StringFixed(2),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   c.ProposalID,
			ID:        c.ArtifactID,
			IssuedAt:  jwt.NewNumericDate(c.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *JWTCapabilityTokens) Verify(token string) (interfaces.CapabilityClaims, error) {
	var claims capabilityClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return interfaces.CapabilityClaims{}, err
	}
	if !parsed.Valid || claims.Subject == "" || claims.ID == "" {
		return interfaces.CapabilityClaims{}, errors.New("token missing subject or id")
	}
	amount, err := decimal.NewFromString(claims.Amount)
	if err != nil {
		return interfaces.CapabilityClaims{}, fmt.Errorf("token amount: %w", err)
	}

	out := interfaces.CapabilityClaims{
		ProposalID: claims.Subject,
		ArtifactID: claims.ID,
		Amount:     amount,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return out, nil
}
