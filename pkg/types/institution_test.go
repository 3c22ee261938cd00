// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestInstitutionKind(t *testing.T) {
	tests := []struct {
		name     string
		inst     Institution
		wantKind SourceKind
		wantSrc  string
	}{
		{"domain", Institution{Name: "Revolut", Domain: "revolut.com"}, SourceDomain, "revolut.com"},
		{"url", Institution{Name: "Kraken", URL: "https://example.com/kraken.svg"}, SourceURL, "https://example.com/kraken.svg"},
		{"site", Institution{Name: "Degiro", Site: "https://www.degiro.com"}, SourceSite, "https://www.degiro.com"},
		{"none", Institution{Name: "Empty"}, SourceNone, ""},
		{"two sources", Institution{Name: "Both", Domain: "a.com", URL: "https://a.com/x.png"}, SourceNone, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inst.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", got, tt.wantKind)
			}
			if got := tt.inst.Source(); got != tt.wantSrc {
				t.Errorf("Source() = %q, want %q", got, tt.wantSrc)
			}
		})
	}
}
