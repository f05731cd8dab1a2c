package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

func sampleLocations() []domain.Location {
	return []domain.Location{
		{IataCode: "MAD", Name: "ADOLFO SUAREZ BARAJAS", CityName: "MADRID", CountryName: "SPAIN"},
		{IataCode: "JFK", Name: "JOHN F KENNEDY INTL", CityName: "NEW YORK", CountryName: "UNITED STATES"},
	}
}

func TestLocationSearchUseCase_Lookup(t *testing.T) {
	tests := []struct {
		name        string
		keyword     string
		expectCall  bool
		provided    []domain.Location
		providerErr error
		wantLen     int
		wantErr     bool
	}{
		{
			name:       "keyword reaches provider",
			keyword:    "mad",
			expectCall: true,
			provided:   sampleLocations(),
			wantLen:    2,
		},
		{
			name:       "short keyword short-circuits",
			keyword:    "m",
			expectCall: false,
			wantLen:    0,
		},
		{
			name:       "empty keyword short-circuits",
			keyword:    "",
			expectCall: false,
			wantLen:    0,
		},
		{
			name:       "whitespace only short-circuits",
			keyword:    "   ",
			expectCall: false,
			wantLen:    0,
		},
		{
			name:       "keyword trimmed before length check",
			keyword:    " ma ",
			expectCall: true,
			provided:   sampleLocations(),
			wantLen:    2,
		},
		{
			name:        "provider error propagates",
			keyword:     "mad",
			expectCall:  true,
			providerErr: domain.ErrProviderUnavailable,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock := domain.NewMockLocationProvider(ctrl)
			if tt.expectCall {
				mock.EXPECT().SearchLocations(gomock.Any(), gomock.Any()).
					Return(tt.provided, tt.providerErr)
			}

			uc := NewLocationSearchUseCase(mock, 0)

			got, err := uc.Lookup(context.Background(), tt.keyword)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.providerErr))
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestLocationSearchUseCase_LookupDebounced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Only the last keyword of a rapid burst reaches the provider.
	mock := domain.NewMockLocationProvider(ctrl)
	mock.EXPECT().SearchLocations(gomock.Any(), "madrid").
		Return(sampleLocations(), nil)

	uc := NewLocationSearchUseCase(mock, 20*time.Millisecond)

	results := make(chan []domain.Location, 3)
	apply := func(locs []domain.Location, err error) {
		require.NoError(t, err)
		results <- locs
	}

	ctx := context.Background()
	uc.LookupDebounced(ctx, "ma", apply)
	uc.LookupDebounced(ctx, "madr", apply)
	uc.LookupDebounced(ctx, "madrid", apply)

	select {
	case locs := <-results:
		assert.Len(t, locs, 2)
	case <-time.After(time.Second):
		t.Fatal("debounced lookup never delivered")
	}

	// No further deliveries from the superseded triggers.
	select {
	case <-results:
		t.Fatal("superseded lookup delivered a result")
	case <-time.After(60 * time.Millisecond):
	}
}
