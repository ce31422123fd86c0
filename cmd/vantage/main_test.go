package main

import (
	"flag"
	"testing"

	"github.com/urfave/cli/v2"
)

func contextWithArgs(args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	_ = set.Parse(args)
	return cli.NewContext(nil, set, nil)
}

func TestFeatureArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"none", nil, nil},
		{"plain", []string{"login", "billing"}, []string{"login", "billing"}},
		{"comma separated", []string{"login,billing"}, []string{"login", "billing"}},
		{"mixed with whitespace", []string{" login , billing ", "search"}, []string{"login", "billing", "search"}},
		{"empty segments dropped", []string{",,login,"}, []string{"login"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := featureArgs(contextWithArgs(tt.args...))
			if len(got) != len(tt.want) {
				t.Fatalf("featureArgs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("featureArgs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPct(t *testing.T) {
	if got := pct(66.666); got != "66.7%" {
		t.Errorf("pct(66.666) = %q", got)
	}
	if got := pct(0); got != "0.0%" {
		t.Errorf("pct(0) = %q", got)
	}
}
