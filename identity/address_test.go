package identity

import (
	"errors"
	"reflect"
	"testing"
)

func staticProvider(name string) HostNameProvider {
	return func(bool) (string, error) { return name, nil }
}

func TestResolveAddress(t *testing.T) {
	order := []MetadataKey{PublicHostname, LocalIPv4}

	t.Run("first key wins when present", func(t *testing.T) {
		dc := NewAmazonInfo(map[MetadataKey]string{
			PublicHostname: "ec2-1-2-3-4.compute.amazonaws.com",
			LocalIPv4:      "10.0.0.5",
		})
		got, err := ResolveAddress(order, dc, staticProvider("dummyDefault"))
		if err != nil {
			t.Fatalf("ResolveAddress: %v", err)
		}
		if got != "ec2-1-2-3-4.compute.amazonaws.com" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("falls through to next key in order", func(t *testing.T) {
		dc := NewAmazonInfo(map[MetadataKey]string{LocalIPv4: "10.0.0.5"})
		got, err := ResolveAddress(order, dc, staticProvider("dummyDefault"))
		if err != nil {
			t.Fatalf("ResolveAddress: %v", err)
		}
		if got != "10.0.0.5" {
			t.Errorf("expected fallback within order, got %q", got)
		}
	})

	t.Run("empty value treated as absent", func(t *testing.T) {
		dc := NewAmazonInfo(map[MetadataKey]string{
			PublicHostname: "",
			LocalIPv4:      "10.0.0.5",
		})
		got, err := ResolveAddress(order, dc, staticProvider("dummyDefault"))
		if err != nil {
			t.Fatalf("ResolveAddress: %v", err)
		}
		if got != "10.0.0.5" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("order exhausted uses fallback provider", func(t *testing.T) {
		dc := NewAmazonInfo(nil)
		got, err := ResolveAddress(order, dc, staticProvider("dummyDefault"))
		if err != nil {
			t.Fatalf("ResolveAddress: %v", err)
		}
		if got != "dummyDefault" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("no metadata capability uses fallback provider", func(t *testing.T) {
		got, err := ResolveAddress(order, NewMyOwnInfo(), staticProvider("dummyDefault"))
		if err != nil {
			t.Fatalf("ResolveAddress: %v", err)
		}
		if got != "dummyDefault" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("fallback provider error propagates", func(t *testing.T) {
		wantErr := errors.New("hostname lookup failed")
		failing := func(bool) (string, error) { return "", wantErr }
		_, err := ResolveAddress(order, NewAmazonInfo(nil), failing)
		if !errors.Is(err, wantErr) {
			t.Errorf("expected provider error, got %v", err)
		}
	})

	t.Run("nil fallback yields empty", func(t *testing.T) {
		got, err := ResolveAddress(order, NewAmazonInfo(nil), nil)
		if err != nil {
			t.Fatalf("ResolveAddress: %v", err)
		}
		if got != "" {
			t.Errorf("got %q", got)
		}
	})
}

func TestParseResolutionOrder(t *testing.T) {
	def := DefaultAddressResolutionOrder

	tests := []struct {
		name   string
		tokens []string
		want   []MetadataKey
	}{
		{"nil tokens select default", nil, def},
		{"empty tokens select default", []string{}, def},
		{"all-empty tokens select default", []string{"", ""}, def},
		{"configured tokens", []string{"localIpv4", "publicIpv4"}, []MetadataKey{LocalIPv4, PublicIPv4}},
		{"empty tokens skipped", []string{"publicHostname", "", "localIpv4"}, []MetadataKey{PublicHostname, LocalIPv4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseResolutionOrder(tc.tokens, def)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
