package main

import (
	"reflect"
	"testing"

	"github.com/pinefile/pine"
)

func TestParseTaskArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		argv    []string
		want    pine.Args
		wantErr bool
	}{
		{
			name: "empty",
			argv: nil,
			want: pine.Args{},
		},
		{
			name: "key equals value",
			argv: []string{"-env=prod"},
			want: pine.Args{"env": "prod"},
		},
		{
			name: "key space value",
			argv: []string{"-env", "prod"},
			want: pine.Args{"env": "prod"},
		},
		{
			name: "bare flag is true",
			argv: []string{"-verbose"},
			want: pine.Args{"verbose": true},
		},
		{
			name: "double dash keys",
			argv: []string{"--env=prod"},
			want: pine.Args{"env": "prod"},
		},
		{
			name: "mixed",
			argv: []string{"-env=prod", "-force", "-region", "eu"},
			want: pine.Args{"env": "prod", "force": true, "region": "eu"},
		},
		{
			name: "bare flag before another flag",
			argv: []string{"-force", "-env=prod"},
			want: pine.Args{"force": true, "env": "prod"},
		},
		{
			name:    "positional value rejected",
			argv:    []string{"prod"},
			wantErr: true,
		},
		{
			name:    "dash only",
			argv:    []string{"-"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseTaskArgs(tt.argv)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTaskArgs(%v) error = %v, wantErr %v", tt.argv, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTaskArgs(%v) = %v, want %v", tt.argv, got, tt.want)
			}
		})
	}
}
