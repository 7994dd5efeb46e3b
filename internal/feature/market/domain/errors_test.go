package domain

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFetchError_Is は各種別のFetchErrorがerrors.Isで正しく判定できることを検証します。
func TestFetchError_Is(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    error
		matches []error
		misses  []error
	}{
		{
			name:    "network",
			kind:    ErrNetwork,
			matches: []error{ErrNetwork},
			misses:  []error{ErrTimeout, ErrProvider, ErrRateLimited, ErrMalformedResponse},
		},
		{
			name:    "timeout",
			kind:    ErrTimeout,
			matches: []error{ErrTimeout},
			misses:  []error{ErrNetwork, ErrProvider, ErrRateLimited, ErrMalformedResponse},
		},
		{
			name:    "provider",
			kind:    ErrProvider,
			matches: []error{ErrProvider},
			misses:  []error{ErrRateLimited, ErrNetwork},
		},
		{
			name:    "rate limited also matches provider",
			kind:    ErrRateLimited,
			matches: []error{ErrRateLimited, ErrProvider},
			misses:  []error{ErrNetwork, ErrTimeout, ErrMalformedResponse},
		},
		{
			name:    "malformed",
			kind:    ErrMalformedResponse,
			matches: []error{ErrMalformedResponse},
			misses:  []error{ErrProvider, ErrNetwork},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fmt.Errorf("wrapped: %w", &FetchError{Op: "FetchMovers", Kind: tt.kind, Status: 500, Message: "boom"})
			for _, target := range tt.matches {
				assert.True(t, errors.Is(err, target), "expected match with %v", target)
			}
			for _, target := range tt.misses {
				assert.False(t, errors.Is(err, target), "unexpected match with %v", target)
			}
		})
	}
}

// TestFetchError_Cause は元となったエラーもerrors.Asで取り出せることを検証します。
func TestFetchError_Cause(t *testing.T) {
	t.Parallel()

	_, cause := strconv.ParseFloat("abc", 64)
	err := error(&FetchError{Op: "FetchMovers", Kind: ErrMalformedResponse, Message: "parse price", Err: cause})

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.True(t, errors.Is(err, ErrMalformedResponse))
	assert.Equal(t, "parse price", err.Error())

	var fe *FetchError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "FetchMovers", fe.Op)
}
