package callscan

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/runreveal/callscan/parser"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
		want *Config
	}{
		{
			name: "Empty",
			data: "{}",
			want: DefaultConfig(),
		},
		{
			name: "CommentsAndTrailingCommas",
			data: `{
				// Collect additions too.
				"calls": ["mul", "add"],
				"reducers": {"add": "sum",},
				"maxDigits": 4, /* wider than default */
			}`,
			want: &Config{
				Calls:     []string{"mul", "add"},
				Enable:    "do",
				Disable:   "don't",
				MaxDigits: 4,
				Reducers:  map[string]string{"mul": "product", "add": "sum"},
			},
		},
		{
			name: "Conditional",
			data: `{"conditional": true, "enable": "on", "disable": "off"}`,
			want: &Config{
				Calls:       []string{"mul"},
				Conditional: true,
				Enable:      "on",
				Disable:     "off",
				MaxDigits:   DefaultMaxDigits,
				Reducers:    map[string]string{"mul": "product"},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(test.data))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ParseConfig(...) (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "Syntax", data: `{"calls": [}`, wantErr: "parse config"},
		{name: "UnknownField", data: `{"names": ["mul"]}`, wantErr: "names"},
		{name: "NoCalls", data: `{"calls": []}`, wantErr: "no calls"},
		{name: "EmptyCall", data: `{"calls": ["mul", ""]}`, wantErr: "calls[1]: empty name"},
		{name: "ZeroDigits", data: `{"maxDigits": 0}`, wantErr: "maxDigits = 0"},
		{name: "TooManyDigits", data: `{"maxDigits": 20}`, wantErr: "maxDigits = 20"},
		{
			name:    "SameToggle",
			data:    `{"conditional": true, "enable": "x", "disable": "x"}`,
			wantErr: `enable and disable are both "x"`,
		},
		{
			name:    "MissingToggle",
			data:    `{"conditional": true, "enable": ""}`,
			wantErr: "conditional requires enable and disable names",
		},
		{
			name:    "UnknownReducer",
			data:    `{"reducers": {"add": "plus"}}`,
			wantErr: `reducers["add"]: unknown kind "plus" (want one of none, product, sum)`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(test.data))
			if err == nil {
				t.Fatalf("ParseConfig(%q) did not return an error", test.data)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("ParseConfig(%q) = %v; want error containing %q", test.data, err, test.wantErr)
			}
		})
	}
}

func TestGrammarScan(t *testing.T) {
	tests := []struct {
		name   string
		config string
		input  string
		want   []Operation
		sum    int
	}{
		{
			name:   "Default",
			config: `{}`,
			input:  "mul(2,3)don't()mul(4,5)",
			want: []Operation{
				{Name: "mul", Operands: []int{2, 3}, Result: 6, Span: parser.Span{Start: 0, End: 8}},
				{Name: "mul", Operands: []int{4, 5}, Result: 20, Span: parser.Span{Start: 15, End: 23}},
			},
			sum: 26,
		},
		{
			name:   "DefaultConditional",
			config: `{"conditional": true}`,
			input:  "mul(2,3)don't()mul(4,5)do()mul(1,1)",
			want: []Operation{
				{Name: "mul", Operands: []int{2, 3}, Result: 6, Span: parser.Span{Start: 0, End: 8}},
				{Name: "mul", Operands: []int{1, 1}, Result: 1, Span: parser.Span{Start: 27, End: 35}},
			},
			sum: 7,
		},
		{
			name:   "CustomToggle",
			config: `{"conditional": true, "enable": "on", "disable": "off"}`,
			input:  "mul(1,2)off()mul(3,4)on()mul(5,6)",
			want: []Operation{
				{Name: "mul", Operands: []int{1, 2}, Result: 2, Span: parser.Span{Start: 0, End: 8}},
				{Name: "mul", Operands: []int{5, 6}, Result: 30, Span: parser.Span{Start: 25, End: 33}},
			},
			sum: 32,
		},
		{
			name:   "ExtraCalls",
			config: `{"calls": ["mul", "add", "max"], "reducers": {"add": "sum"}}`,
			input:  "add(1,2)mul(3,4)add(5)max(7,8)",
			want: []Operation{
				{Name: "add", Operands: []int{1, 2}, Result: 3, Span: parser.Span{Start: 0, End: 8}},
				{Name: "mul", Operands: []int{3, 4}, Result: 12, Span: parser.Span{Start: 8, End: 16}},
				{Name: "add", Operands: []int{5}, Result: 5, Span: parser.Span{Start: 16, End: 22}},
				{Name: "max", Operands: []int{7, 8}, Result: 0, Span: parser.Span{Start: 22, End: 30}},
			},
			sum: 15,
		},
		{
			name:   "OverflowResyncs",
			config: `{"maxDigits": 19}`,
			input:  "mul(99999999999999999999,2)mul(3,4)",
			want: []Operation{
				{Name: "mul", Operands: []int{3, 4}, Result: 12, Span: parser.Span{Start: 27, End: 35}},
			},
			sum: 12,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(test.config))
			if err != nil {
				t.Fatal(err)
			}
			g, err := cfg.Grammar()
			if err != nil {
				t.Fatal(err)
			}
			got := g.Scan(test.input)
			if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Scan(%q) (-want +got):\n%s", test.input, diff)
			}
			if sum := SumBinary(got); sum != test.sum {
				t.Errorf("SumBinary(...) = %d; want %d", sum, test.sum)
			}
		})
	}
}

func TestGrammarInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDigits = 0
	if _, err := cfg.Grammar(); err == nil {
		t.Error("Grammar() with maxDigits = 0 did not return an error")
	}
}
