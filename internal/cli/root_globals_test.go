package cli

import (
	"reflect"
	"testing"
)

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantGF   GlobalFlags
		wantRest []string
		wantErr  bool
	}{
		{
			name:     "no args",
			args:     nil,
			wantRest: nil,
		},
		{
			name:     "prefix globals",
			args:     []string{"--json", "-q", "list"},
			wantGF:   GlobalFlags{JSON: true, Quiet: true},
			wantRest: []string{"list"},
		},
		{
			name:     "globals after command",
			args:     []string{"copy", "basic-code", "--json"},
			wantGF:   GlobalFlags{JSON: true},
			wantRest: []string{"copy", "basic-code"},
		},
		{
			name:     "request id with value",
			args:     []string{"--request-id", "abc", "status"},
			wantGF:   GlobalFlags{RequestID: "abc"},
			wantRest: []string{"status"},
		},
		{
			name:     "request id equals form",
			args:     []string{"status", "--request-id=abc"},
			wantGF:   GlobalFlags{RequestID: "abc"},
			wantRest: []string{"status"},
		},
		{
			name:    "request id missing value",
			args:    []string{"--request-id"},
			wantErr: true,
		},
		{
			name:     "local value flag not consumed as global",
			args:     []string{"generate", "--theme", "dark", "--json"},
			wantGF:   GlobalFlags{JSON: true},
			wantRest: []string{"generate", "--theme", "dark"},
		},
		{
			name:     "logs tail keeps lines value",
			args:     []string{"logs", "tail", "--lines", "10", "--json"},
			wantGF:   GlobalFlags{JSON: true},
			wantRest: []string{"logs", "tail", "--lines", "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gf, rest, err := ParseGlobalFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if gf != tt.wantGF {
				t.Errorf("gf = %+v, want %+v", gf, tt.wantGF)
			}
			if !reflect.DeepEqual(rest, tt.wantRest) {
				t.Errorf("rest = %v, want %v", rest, tt.wantRest)
			}
		})
	}
}
