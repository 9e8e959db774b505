package security

import "testing"

func TestValidateImageURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https public host", "https://example.com/image.jpg", false},
		{"http public host", "http://example.com/image.png", false},
		{"empty", "", true},
		{"bad scheme", "ftp://example.com/image.jpg", true},
		{"file scheme", "file:///etc/passwd", true},
		{"no host", "https:///image.jpg", true},
		{"localhost", "http://localhost:8080/image.jpg", true},
		{"localhost subdomain", "http://api.localhost/image.jpg", true},
		{"loopback", "http://127.0.0.1/image.jpg", true},
		{"private 10", "http://10.0.0.5/image.jpg", true},
		{"private 172", "http://172.16.1.1/image.jpg", true},
		{"private 192", "http://192.168.1.1/image.jpg", true},
		{"link local", "http://169.254.1.1/image.jpg", true},
		{"unspecified", "http://0.0.0.0/image.jpg", true},
		{"ipv6 loopback", "http://[::1]/image.jpg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImageURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
