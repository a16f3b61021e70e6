// Package benchmark drives timed throughput loops over the supported
// ciphers and hashes.
//
// Each algorithm processes synthetic in-memory blocks until a wall-clock
// cutoff, checked at block boundaries; only fully completed blocks count.
package benchmark

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/kaleb-himes/wolfCLU/internal/algo"
	"github.com/kaleb-himes/wolfCLU/internal/encryption"
	"github.com/kaleb-himes/wolfCLU/internal/hashing"
)

const (
	// BlockSize is the synthetic block length each loop iteration processes.
	BlockSize = 16384

	// DefaultDuration is the per-algorithm wall-clock budget.
	DefaultDuration = 3 * time.Second

	// MinDuration and MaxDuration bound the configurable budget.
	MinDuration = 1 * time.Second
	MaxDuration = 10 * time.Second

	megabyte = 1024 * 1024
)

// Result aggregates one benchmarked algorithm.
type Result struct {
	Name    string
	Blocks  int64
	Elapsed time.Duration
}

// Throughput derives MB/s from the block count.
func (r Result) Throughput() float64 {
	seconds := r.Elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}

	return float64(r.Blocks) * BlockSize / seconds / megabyte
}

// String formats the result the way the bench command prints it.
func (r Result) String() string {
	return fmt.Sprintf("%-16s %8d blocks of %s in %.2fs: %8.2f MB/s",
		r.Name, r.Blocks, humanize.IBytes(BlockSize), r.Elapsed.Seconds(), r.Throughput())
}

// Driver runs benchmark loops with a clamped wall-clock budget.
type Driver struct {
	duration time.Duration
}

// NewDriver clamps the requested duration into [MinDuration, MaxDuration].
// Zero selects the default.
func NewDriver(duration time.Duration) *Driver {
	switch {
	case duration == 0:
		duration = DefaultDuration
	case duration < MinDuration:
		duration = MinDuration
	case duration > MaxDuration:
		duration = MaxDuration
	}

	return &Driver{duration: duration}
}

// Run benchmarks a single algorithm.
func (d *Driver) Run(spec algo.Spec) (Result, error) {
	if spec.IsHash() {
		return d.runHash(spec)
	}

	return d.runCipher(spec)
}

// RunAll benchmarks every supported algorithm, writing one result line per
// algorithm. A failing algorithm is reported and skipped; the rest continue.
func (d *Driver) RunAll(out io.Writer) error {
	var failed int

	for _, spec := range algo.All() {
		result, err := d.Run(spec)
		if err != nil {
			failed++

			fmt.Fprintf(out, "%-16s skipped: %v\n", spec, err)

			continue
		}

		fmt.Fprintln(out, result)
	}

	if failed > 0 {
		return fmt.Errorf("%d algorithm(s) failed to run", failed)
	}

	return nil
}

func (d *Driver) runCipher(spec algo.Spec) (Result, error) {
	key := make([]byte, spec.KeyLen())
	iv := make([]byte, spec.BlockSize())

	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return Result{}, fmt.Errorf("random source: %w", err)
	}

	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return Result{}, fmt.Errorf("random source: %w", err)
	}

	block, err := encryption.NewBlockCipher(spec, key)
	if err != nil {
		return Result{}, err
	}

	data := make([]byte, BlockSize)

	var crypt func([]byte)

	switch spec.Mode {
	case algo.CTR:
		stream := cipher.NewCTR(block, iv)
		crypt = func(b []byte) { stream.XORKeyStream(b, b) }
	default:
		mode := cipher.NewCBCEncrypter(block, iv)
		crypt = func(b []byte) { mode.CryptBlocks(b, b) }
	}

	start := time.Now()

	var blocks int64

	for time.Since(start) < d.duration {
		crypt(data)
		blocks++
	}

	return Result{Name: spec.String(), Blocks: blocks, Elapsed: time.Since(start)}, nil
}

func (d *Driver) runHash(spec algo.Spec) (Result, error) {
	digest, err := hashing.New(spec, 0)
	if err != nil {
		return Result{}, err
	}

	data := make([]byte, BlockSize)

	start := time.Now()

	var blocks int64

	for time.Since(start) < d.duration {
		digest.Write(data)
		blocks++
	}

	digest.Sum(nil)

	return Result{Name: spec.String(), Blocks: blocks, Elapsed: time.Since(start)}, nil
}
