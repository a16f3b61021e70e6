package logic_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaleb-himes/wolfCLU/internal/config"
	"github.com/kaleb-himes/wolfCLU/internal/keys"
	"github.com/kaleb-himes/wolfCLU/internal/logic"
)

func writeInput(t *testing.T, content []byte) (dir, path string) {
	t.Helper()

	dir = t.TempDir()
	path = filepath.Join(dir, "input")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return dir, path
}

func TestPasswordRoundTrip(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	dir, input := writeInput(t, plaintext)

	encrypted := filepath.Join(dir, "encrypted")
	decrypted := filepath.Join(dir, "decrypted")

	for _, algorithm := range []string{"aes-cbc-128", "aes-cbc-256", "aes-ctr-256", "3des-cbc-168", "camellia-cbc-128"} {
		t.Run(algorithm, func(t *testing.T) {
			enc := config.Config{
				Algorithm: algorithm,
				Input:     input,
				Output:    encrypted,
				Password:  "correct horse battery staple",
				Parallel:  1,
			}
			require.NoError(t, logic.RunCipher(&enc))

			ciphertext, err := os.ReadFile(encrypted)
			require.NoError(t, err)
			assert.NotContains(t, string(ciphertext), "quick brown fox")

			dec := enc
			dec.Input = encrypted
			dec.Output = decrypted
			dec.Decrypt = true
			require.NoError(t, logic.RunCipher(&dec))

			got, err := os.ReadFile(decrypted)
			require.NoError(t, err)
			assert.Equal(t, plaintext, got)
		})
	}
}

func TestExplicitKeyRoundTrip(t *testing.T) {
	plaintext := []byte("explicit key material round trip")
	dir, input := writeInput(t, plaintext)

	encrypted := filepath.Join(dir, "encrypted")
	decrypted := filepath.Join(dir, "decrypted")

	enc := config.Config{
		Algorithm: "aes-cbc-128",
		Input:     input,
		Output:    encrypted,
		Key:       "000102030405060708090a0b0c0d0e0f",
		IV:        "0f0e0d0c0b0a09080706050403020100",
		Parallel:  1,
	}
	require.NoError(t, logic.RunCipher(&enc))

	dec := enc
	dec.Input = encrypted
	dec.Output = decrypted
	dec.Decrypt = true
	require.NoError(t, logic.RunCipher(&dec))

	got, err := os.ReadFile(decrypted)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestExplicitKeyDecryptWithoutIV(t *testing.T) {
	_, input := writeInput(t, make([]byte, 32))

	cfg := config.Config{
		Algorithm: "aes-cbc-128",
		Input:     input,
		Output:    filepath.Join(t.TempDir(), "out"),
		Key:       "000102030405060708090a0b0c0d0e0f",
		Decrypt:   true,
		Parallel:  1,
	}

	err := logic.RunCipher(&cfg)
	assert.ErrorIs(t, err, keys.ErrMissingIV)
}

func TestCipherRejectsHashAlgorithm(t *testing.T) {
	cfg := config.Config{Algorithm: "sha256", Parallel: 1}

	assert.Error(t, logic.RunCipher(&cfg))
}

func TestRunHashSingleFile(t *testing.T) {
	dir, input := writeInput(t, nil)
	output := filepath.Join(dir, "digest")

	cfg := config.Config{
		Algorithm: "sha256",
		Files:     []string{input},
		Output:    output,
		Parallel:  1,
	}
	require.NoError(t, logic.RunHash(&cfg))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855\n", string(got))
}

func TestRunHashBinaryOutput(t *testing.T) {
	dir, input := writeInput(t, []byte("abc"))
	output := filepath.Join(dir, "digest.bin")

	cfg := config.Config{
		Algorithm: "sha256",
		Files:     []string{input},
		Output:    output,
		Binary:    true,
		Parallel:  1,
	}
	require.NoError(t, logic.RunHash(&cfg))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Len(t, got, 32)
}

func TestRunHashMultipleFiles(t *testing.T) {
	dir, first := writeInput(t, []byte("abc"))

	second := filepath.Join(dir, "second")
	require.NoError(t, os.WriteFile(second, []byte("def"), 0o600))

	output := filepath.Join(dir, "digests")

	cfg := config.Config{
		Algorithm: "sha256",
		Files:     []string{first, second},
		Output:    output,
		Parallel:  2,
	}
	require.NoError(t, logic.RunHash(&cfg))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), first)
	assert.Contains(t, string(got), second)
}

func TestRunHashBinaryRejectsMultipleFiles(t *testing.T) {
	dir, first := writeInput(t, []byte("abc"))

	second := filepath.Join(dir, "second")
	require.NoError(t, os.WriteFile(second, []byte("def"), 0o600))

	cfg := config.Config{
		Algorithm: "sha256",
		Files:     []string{first, second},
		Binary:    true,
		Parallel:  1,
	}

	assert.Error(t, logic.RunHash(&cfg))
}

func TestRunHashRejectsCipherAlgorithm(t *testing.T) {
	cfg := config.Config{Algorithm: "aes-cbc-128", Parallel: 1}

	assert.Error(t, logic.RunHash(&cfg))
}

func TestRunHashBlake2bSize(t *testing.T) {
	dir, input := writeInput(t, []byte("abc"))
	output := filepath.Join(dir, "digest")

	cfg := config.Config{
		Algorithm: "blake2b",
		Files:     []string{input},
		Output:    output,
		Size:      20,
		Parallel:  1,
	}
	require.NoError(t, logic.RunHash(&cfg))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	// 20 bytes hex-encoded plus trailing newline.
	assert.Len(t, got, 41)
}

func TestRunBenchUnknownAlgorithm(t *testing.T) {
	cfg := config.Config{Algorithm: "nonesuch", Parallel: 1}

	assert.Error(t, logic.RunBench(&cfg))
}

func TestRunBenchRequiresAlgorithmOrAll(t *testing.T) {
	cfg := config.Config{Parallel: 1}

	assert.Error(t, logic.RunBench(&cfg))
}
