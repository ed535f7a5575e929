package util

import (
	"testing"
)

func TestToScreamingSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Port", "PORT"},
		{"SelfTLS", "SELF_TLS"},
		{"TLSCert", "TLS_CERT"},
		{"TLSKey", "TLS_KEY"},
		{"CacheSize", "CACHE_SIZE"},
		{"TLSCert TLSKey", "TLS_CERT TLS_KEY"},
		{"SelfTLS false", "SELF_TLS FALSE"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := ToScreamingSnakeCase(tc.in); got != tc.want {
			t.Errorf("ToScreamingSnakeCase(%q): %q, want: %q", tc.in, got, tc.want)
		}
	}
}
