package algo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/kaleb-himes/wolfCLU/internal/algo"
)

// Case is a single resolution case from a YAML golden file.
type Case struct {
	Name   string `yaml:"name"`
	Family string `yaml:"family,omitempty"`
	Mode   string `yaml:"mode,omitempty"`
	Bits   int    `yaml:"bits,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// Group is a named collection of cases.
type Group struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

func loadGroups(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "parse.yml"))
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	return groups
}

func TestParse(t *testing.T) {
	for _, group := range loadGroups(t) {
		t.Run(group.Name, func(t *testing.T) {
			for _, tc := range group.Cases {
				spec, err := algo.Parse(tc.Name)

				if tc.Error != "" {
					if err == nil {
						t.Errorf("Parse(%q) = %v, want error containing %q", tc.Name, spec, tc.Error)

						continue
					}

					if !strings.Contains(err.Error(), tc.Error) {
						t.Errorf("Parse(%q) error = %v, want containing %q", tc.Name, err, tc.Error)
					}

					continue
				}

				if err != nil {
					t.Errorf("Parse(%q) unexpected error: %v", tc.Name, err)

					continue
				}

				if string(spec.Family) != tc.Family || string(spec.Mode) != tc.Mode || spec.KeySizeBits != tc.Bits {
					t.Errorf("Parse(%q) = {%s %s %d}, want {%s %s %d}",
						tc.Name, spec.Family, spec.Mode, spec.KeySizeBits, tc.Family, tc.Mode, tc.Bits)
				}
			}
		})
	}
}

func TestSpecDerived(t *testing.T) {
	tests := []struct {
		name      string
		blockSize int
		keyLen    int
		isHash    bool
	}{
		{name: "aes-cbc-256", blockSize: 16, keyLen: 32},
		{name: "aes-ctr-128", blockSize: 16, keyLen: 16},
		{name: "3des-cbc-168", blockSize: 8, keyLen: 24},
		{name: "3des-cbc-56", blockSize: 8, keyLen: 8},
		{name: "camellia-cbc-192", blockSize: 16, keyLen: 24},
		{name: "sha256", isHash: true},
		{name: "blake2b", isHash: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := algo.Parse(tt.name)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.name, err)
			}

			if spec.IsHash() != tt.isHash {
				t.Fatalf("IsHash() = %v, want %v", spec.IsHash(), tt.isHash)
			}

			if tt.isHash {
				return
			}

			if spec.BlockSize() != tt.blockSize {
				t.Errorf("BlockSize() = %d, want %d", spec.BlockSize(), tt.blockSize)
			}

			if spec.KeyLen() != tt.keyLen {
				t.Errorf("KeyLen() = %d, want %d", spec.KeyLen(), tt.keyLen)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, spec := range algo.All() {
		parsed, err := algo.Parse(spec.String())
		if err != nil {
			t.Errorf("Parse(%q): %v", spec.String(), err)

			continue
		}

		if parsed != spec {
			t.Errorf("Parse(%q) = %v, want %v", spec.String(), parsed, spec)
		}
	}
}

func TestAllCoversClosedSet(t *testing.T) {
	specs := algo.All()

	const want = 18 // 9 CBC ciphers + 3 AES-CTR + 6 hashes
	if len(specs) != want {
		t.Fatalf("All() returned %d specs, want %d", len(specs), want)
	}

	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if seen[spec.String()] {
			t.Errorf("All() contains duplicate %q", spec.String())
		}

		seen[spec.String()] = true
	}
}
