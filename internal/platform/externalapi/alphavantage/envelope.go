package alphavantage

import (
	"encoding/json"
	"net/http"
)

// ErrorKind はプロバイダ呼び出しが失敗した理由の種別です。
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNetwork
	KindTimeout
	KindProvider
	KindRateLimited
	KindMalformedResponse
)

// String はログとメトリクスで使うラベルを返します。
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindProvider:
		return "provider"
	case KindRateLimited:
		return "rate_limited"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

const (
	// TimeoutMessage は呼び出しごとの期限が切れたときのメッセージです。
	TimeoutMessage = "Request timeout - please check your internet connection"
	// RateLimitMessage はプロバイダのレート制限通知(Note)を置き換えるメッセージです。
	RateLimitMessage = "API call frequency limit reached. Please try again later."
)

// Envelope は1回のプロバイダ呼び出しの結果です。
// Success が true になるのは Kind が KindNone かつ Error が空のときだけです。
// Status には常に値が入り、応答を受け取れた場合はそのHTTPステータス、それ以外は500です。
type Envelope struct {
	Success bool
	Data    json.RawMessage
	Status  int
	Error   string
	Kind    ErrorKind
}

func succeeded(status int, data json.RawMessage) Envelope {
	return Envelope{Success: true, Data: data, Status: status, Kind: KindNone}
}

func failed(kind ErrorKind, status int, msg string) Envelope {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Envelope{Success: false, Status: status, Error: msg, Kind: kind}
}
