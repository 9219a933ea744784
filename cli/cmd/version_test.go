package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/ardnew/spiral/pkg"
)

func TestVersionRun(t *testing.T) {
	tests := []struct {
		name  string
		short bool
		want  string
	}{
		{name: "full", want: pkg.Name + " " + pkg.Version + "\n"},
		{name: "short", short: true, want: pkg.Version + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			if err := (&Version{Short: tt.short, out: &buf}).Run(context.Background()); err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}
