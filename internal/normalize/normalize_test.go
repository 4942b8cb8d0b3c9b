package normalize

import (
	"net/url"
	"testing"
)

func TestTrimText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  plain text  ", "plain text"},
		{" padded ", "padded"},
		{"inner nbsp", "inner nbsp"},
		{"", ""},
	}

	for _, tt := range tests {
		result := TrimText(tt.input)
		if result != tt.expected {
			t.Errorf("TrimText(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestAbsoluteURL(t *testing.T) {
	base, err := url.Parse("https://www.j-archive.com/")
	if err != nil {
		t.Fatalf("failed to parse base URL: %v", err)
	}

	tests := []struct {
		href     string
		expected string
	}{
		{"/media/x.jpg", "https://www.j-archive.com/media/x.jpg"},
		{"media/x.jpg", "https://www.j-archive.com/media/x.jpg"},
		{"https://other.example.com/y.png", "https://other.example.com/y.png"},
		{"https://other.example.com/y.png#zoom", "https://other.example.com/y.png#zoom"},
		{"  /media/z.jpg  ", "https://www.j-archive.com/media/z.jpg"},
		{"", ""},
	}

	for _, tt := range tests {
		result := AbsoluteURL(base, tt.href)
		if result != tt.expected {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", tt.href, result, tt.expected)
		}
	}
}

