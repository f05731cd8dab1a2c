package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedOfferError(t *testing.T) {
	t.Run("names the offending offers", func(t *testing.T) {
		err := NewMalformedOfferError("missing price currency", "12", "15")

		assert.Contains(t, err.Error(), "12")
		assert.Contains(t, err.Error(), "15")
		assert.Contains(t, err.Error(), "missing price currency")
	})

	t.Run("unwraps to ErrMalformedOffer", func(t *testing.T) {
		err := NewMalformedOfferError("bad id", "3")

		assert.True(t, errors.Is(err, ErrMalformedOffer))
		assert.True(t, IsMalformedOffer(err))
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		err := fmt.Errorf("provider search: %w", NewMalformedOfferError("bad", "1"))

		assert.True(t, IsMalformedOffer(err))

		var moErr *MalformedOfferError
		assert.True(t, errors.As(err, &moErr))
		assert.Equal(t, []string{"1"}, moErr.OfferIDs)
	})

	t.Run("no ids still readable", func(t *testing.T) {
		err := NewMalformedOfferError("empty batch reason")
		assert.Contains(t, err.Error(), "empty batch reason")
	})
}

func TestWrapInvalidRequest(t *testing.T) {
	err := WrapInvalidRequest("adults must be at least %d", 1)

	assert.True(t, IsInvalidRequest(err))
	assert.Contains(t, err.Error(), "adults must be at least 1")
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
		want    bool
	}{
		{
			name:    "IsProviderAuth matches wrapped sentinel",
			err:     fmt.Errorf("call failed: %w", ErrProviderAuth),
			checker: IsProviderAuth,
			want:    true,
		},
		{
			name:    "IsProviderAuth rejects other errors",
			err:     ErrProviderUnavailable,
			checker: IsProviderAuth,
			want:    false,
		},
		{
			name:    "IsStaleSearch matches sentinel",
			err:     ErrStaleSearch,
			checker: IsStaleSearch,
			want:    true,
		},
		{
			name:    "IsInvalidRequest rejects nil",
			err:     nil,
			checker: IsInvalidRequest,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.checker(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "auth failure",
			err:  fmt.Errorf("%w: token endpoint returned 401", ErrProviderAuth),
			want: "Failed to authenticate with the flight search provider.",
		},
		{
			name: "no results",
			err:  ErrNoResults,
			want: "No flights found. Try adjusting your search criteria.",
		},
		{
			name: "invalid parameters",
			err:  ErrInvalidParameters,
			want: "Failed to search flights. Please check your search criteria.",
		},
		{
			name: "provider unreachable",
			err:  ErrProviderUnavailable,
			want: "No response from flight search API. Please try again.",
		},
		{
			name: "malformed offers",
			err:  NewMalformedOfferError("missing id", "7"),
			want: "Flight search failed. Please try again.",
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: "An unexpected error occurred. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
