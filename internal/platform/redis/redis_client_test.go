package redis

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions_Addr はポート未指定時に6379が使われることを検証します。
func TestOptions_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"explicit port", Options{Host: "cache", Port: "6380"}, "cache:6380"},
		{"default port", Options{Host: "localhost"}, "localhost:6379"},
		{"ipv6", Options{Host: "::1", Port: "6379"}, "[::1]:6379"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.opts.Addr())
		})
	}
}

// TestNewRedisClient_EmptyHost はホスト未設定の場合にエラーになることを検証します。
func TestNewRedisClient_EmptyHost(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), Options{})
	assert.Error(t, err)
	assert.Nil(t, rdb)
}

// TestNewRedisClient_Unreachable は接続できない場合にPINGのエラーが返されることを検証します。
func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	// 空きポートを確保してすぐ閉じる
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	rdb, err := NewRedisClient(context.Background(), Options{Host: "127.0.0.1", Port: port})
	assert.Error(t, err)
	assert.Nil(t, rdb)
}
