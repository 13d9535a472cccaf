package main

import (
	"testing"

	"github.com/lixenwraith/rainbench/engine"
	"github.com/lixenwraith/rainbench/render"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    engine.Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: engine.Config{NumColors: 1530},
		},
		{
			name: "foreground only",
			args: []string{"-fg"},
			want: engine.Config{NumColors: 1530, Mode: render.ModeForeground},
		},
		{
			name: "background only",
			args: []string{"-bg", "300"},
			want: engine.Config{NumColors: 300, Mode: render.ModeBackground},
		},
		{
			name: "no color wins over fg",
			args: []string{"-fg", "-ng"},
			want: engine.Config{NumColors: 1530, Mode: render.ModeNone},
		},
		{
			name: "glyph metric",
			args: []string{"-glyphs"},
			want: engine.Config{NumColors: 1530, Metric: engine.MetricGlyphs},
		},
		{
			name: "count clamped high",
			args: []string{"99999"},
			want: engine.Config{NumColors: 1530},
		},
		{
			name: "count clamped low",
			args: []string{"0"},
			want: engine.Config{NumColors: 1},
		},
		{
			name:    "non-numeric count",
			args:    []string{"lots"},
			wantErr: true,
		},
		{
			name:    "too many arguments",
			args:    []string{"10", "20"},
			wantErr: true,
		},
		{
			name:    "bad code point",
			args:    []string{"-ch=zz"},
			wantErr: true,
		},
		{
			name:    "surrogate code point",
			args:    []string{"-ch=d800"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.NumColors != tt.want.NumColors || got.Mode != tt.want.Mode || got.Metric != tt.want.Metric {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseGlyph(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"21", "!"},
		{"2580", "▀"},   // upper half block, 3-byte UTF-8
		{"1F308", "🌈"}, // 4-byte UTF-8
	}

	for _, tt := range tests {
		got, err := parseGlyph(tt.in)
		if err != nil {
			t.Errorf("parseGlyph(%q): %v", tt.in, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("parseGlyph(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
