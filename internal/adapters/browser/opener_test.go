package browser

import (
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "https url",
			raw:  "https://www.promptingguide.ai",
			want: "https://www.promptingguide.ai",
		},
		{
			name: "bare host gets https",
			raw:  "example.com/docs",
			want: "https://example.com/docs",
		},
		{
			name: "surrounding whitespace",
			raw:  "  http://example.com  ",
			want: "http://example.com",
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "non web scheme",
			raw:     "file:///etc/passwd",
			wantErr: true,
		},
		{
			name:    "not a link",
			raw:     "Book: Clean Code",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeURL(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCommand_PerOS(t *testing.T) {
	tests := []struct {
		goos     string
		wantBin  string
		wantLast string
		wantErr  bool
	}{
		{goos: "darwin", wantBin: "open", wantLast: "https://example.com"},
		{goos: "linux", wantBin: "xdg-open", wantLast: "https://example.com"},
		{goos: "windows", wantBin: "cmd", wantLast: "https://example.com"},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			o := &Opener{goos: tt.goos}
			cmd, err := o.Command("https://example.com")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cmd.Args[0] != tt.wantBin {
				t.Errorf("binary = %q, want %q", cmd.Args[0], tt.wantBin)
			}
			if last := cmd.Args[len(cmd.Args)-1]; last != tt.wantLast {
				t.Errorf("last arg = %q, want %q", last, tt.wantLast)
			}
		})
	}
}
