package domain

import "testing"

func TestBackendResponseTransient(t *testing.T) {
	tests := []struct {
		name string
		resp BackendResponse
		want bool
	}{
		{
			name: "transport failures always retryable",
			resp: BackendResponse{Kind: ResponseTransportFailure},
			want: true,
		},
		{
			name: "throttling retryable",
			resp: BackendResponse{Kind: ResponseApplicationError, Message: "ThrottlingException: slow down"},
			want: true,
		},
		{
			name: "too many requests retryable",
			resp: BackendResponse{Kind: ResponseApplicationError, Message: "Too Many Requests"},
			want: true,
		},
		{
			name: "quota exhaustion retryable",
			resp: BackendResponse{Kind: ResponseApplicationError, Message: "ServiceQuotaExceededException"},
			want: true,
		},
		{
			name: "validation never retryable",
			resp: BackendResponse{Kind: ResponseApplicationError, Message: "ValidationException: query is required"},
			want: false,
		},
		{
			name: "invalid request never retryable",
			resp: BackendResponse{Kind: ResponseApplicationError, Message: "invalid request"},
			want: false,
		},
		{
			name: "validation wins over throttle wording",
			resp: BackendResponse{Kind: ResponseApplicationError, Message: "invalid request: rate limit header malformed"},
			want: false,
		},
		{
			name: "unclassified application error not retried",
			resp: BackendResponse{Kind: ResponseApplicationError, Message: "internal server error"},
			want: false,
		},
		{
			name: "decode failure not retried",
			resp: BackendResponse{Kind: ResponseDecodeFailure, Message: "no command field in response"},
			want: false,
		},
		{
			name: "success not retried",
			resp: BackendResponse{Kind: ResponseSuccess, Command: "ls"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.Transient(); got != tt.want {
				t.Fatalf("Transient() = %v, want %v", got, tt.want)
			}
		})
	}
}
