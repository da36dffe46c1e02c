package config

import (
	"sync"
	"testing"
)

func TestMapSourceGetString(t *testing.T) {
	s := NewMapSource(map[string]string{"eureka.region": "eu-west-1"})

	if got := s.GetString("eureka.region", "us-east-1"); got != "eu-west-1" {
		t.Errorf("expected override, got %q", got)
	}
	if got := s.GetString("eureka.missing", "fallback"); got != "fallback" {
		t.Errorf("expected default, got %q", got)
	}
}

func TestMapSourceGetInt(t *testing.T) {
	s := NewMapSource(map[string]string{
		"valid":     "42",
		"malformed": "not-a-number",
		"spaced":    " 7 ",
	})

	tests := []struct {
		name string
		key  string
		def  int
		want int
	}{
		{"valid value", "valid", 1, 42},
		{"missing key", "missing", 30, 30},
		{"malformed value resolves to default", "malformed", 8, 8},
		{"surrounding whitespace tolerated", "spaced", 1, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.GetInt(tc.key, tc.def); got != tc.want {
				t.Errorf("GetInt(%q, %d) = %d, want %d", tc.key, tc.def, got, tc.want)
			}
		})
	}
}

func TestMapSourceGetBool(t *testing.T) {
	s := NewMapSource(map[string]string{
		"yes":       "true",
		"no":        "false",
		"malformed": "yep",
	})

	if !s.GetBool("yes", false) {
		t.Error("expected true")
	}
	if s.GetBool("no", true) {
		t.Error("expected false")
	}
	if !s.GetBool("malformed", true) {
		t.Error("expected default for malformed value")
	}
	if s.GetBool("missing", false) {
		t.Error("expected default for missing key")
	}
}

func TestMapSourceHas(t *testing.T) {
	s := NewMapSource(map[string]string{"present": ""})

	if !s.Has("present") {
		t.Error("expected Has to see present key, even with empty value")
	}
	if s.Has("absent") {
		t.Error("expected Has to miss absent key")
	}
}

func TestMapSourceSetDelete(t *testing.T) {
	s := NewMapSource(nil)

	s.Set("k", "v")
	if got := s.GetString("k", ""); got != "v" {
		t.Errorf("expected 'v' after Set, got %q", got)
	}

	s.Delete("k")
	if s.Has("k") {
		t.Error("expected key gone after Delete")
	}
}

func TestMapSourceConcurrentAccess(t *testing.T) {
	s := NewMapSource(map[string]string{"k": "v"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set("k", "v2")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.GetString("k", "")
				_ = s.Has("k")
			}
		}()
	}
	wg.Wait()
}
