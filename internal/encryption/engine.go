package encryption

import (
	"bufio"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"

	"github.com/kaleb-himes/wolfCLU/internal/algo"
	"github.com/kaleb-himes/wolfCLU/internal/keys"
)

// Job streams one source through a cipher into one sink. A Job is built once
// per invocation and never reused; the key material stays owned by the caller.
type Job struct {
	// Spec is the resolved cipher algorithm.
	Spec algo.Spec

	// Material holds the key and IV, plus the salt in password mode.
	Material *keys.Material

	// Decrypt selects direction.
	Decrypt bool

	// ChunkSize overrides the read granularity. Zero means DefaultChunkSize.
	ChunkSize int
}

// Run consumes the job: it reads the source in fixed-size chunks, applies the
// cipher and writes the result as it goes. The final block is written only
// after padding validation on decrypt. Partial output is left in place on
// failure.
//
// On encrypt in password mode, the salt and IV are prepended to the output
// stream so decryption can recover them; see ReadPasswordHeader.
func (j *Job) Run(reader io.Reader, writer io.Writer) error {
	if j.Spec.IsHash() {
		return fmt.Errorf("%s is not a cipher", j.Spec)
	}

	block, err := NewBlockCipher(j.Spec, j.Material.Key)
	if err != nil {
		return err
	}

	if len(j.Material.IV) != block.BlockSize() {
		return fmt.Errorf("iv must be %d bytes, got %d", block.BlockSize(), len(j.Material.IV))
	}

	if !j.Decrypt {
		if err := writePasswordHeader(writer, j.Material); err != nil {
			return err
		}
	}

	switch j.Spec.Mode {
	case algo.CBC:
		if j.Decrypt {
			return j.decryptCBC(block, reader, writer)
		}

		return j.encryptCBC(block, reader, writer)

	case algo.CTR:
		return j.runCTR(block, reader, writer)

	default:
		return fmt.Errorf("unsupported cipher mode %q", j.Spec.Mode)
	}
}

func (j *Job) chunkSize() int {
	if j.ChunkSize > 0 {
		return j.ChunkSize
	}

	return DefaultChunkSize
}

// encryptCBC encrypts the stream in CBC mode, chaining state across chunks
// and PKCS#7-padding the final short block.
func (j *Job) encryptCBC(block cipher.Block, reader io.Reader, writer io.Writer) error {
	blockSize := block.BlockSize()
	mode := cipher.NewCBCEncrypter(block, j.Material.IV)
	bufReader := bufio.NewReaderSize(reader, j.chunkSize())

	buf, release := getBuffer(j.chunkSize())
	defer release()

	blockBuf := make([]byte, 0, j.chunkSize()+blockSize)
	ciphertext := make([]byte, 0, j.chunkSize()+blockSize)
	isEOF := false

	for !isEOF {
		n, err := bufReader.Read(buf)
		if n > 0 {
			blockBuf = append(blockBuf, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			isEOF = true
		} else if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		// Encrypt all complete blocks; the trailing partial (or empty)
		// remainder waits for padding at EOF.
		full := len(blockBuf) / blockSize * blockSize
		if full > 0 {
			ciphertext = grow(ciphertext, full)
			mode.CryptBlocks(ciphertext[:full], blockBuf[:full])

			if _, err := writer.Write(ciphertext[:full]); err != nil {
				return fmt.Errorf("writing encrypted block: %w", err)
			}

			blockBuf = append(blockBuf[:0], blockBuf[full:]...)
		}

		if isEOF {
			padded := pkcs7Pad(blockBuf, blockSize)
			ciphertext = grow(ciphertext, len(padded))
			mode.CryptBlocks(ciphertext[:len(padded)], padded)

			if _, err := writer.Write(ciphertext[:len(padded)]); err != nil {
				return fmt.Errorf("writing final encrypted block: %w", err)
			}
		}
	}

	return nil
}

// decryptCBC decrypts the stream in CBC mode, holding the last full block
// back until EOF so its padding can be validated before anything of it is
// written.
func (j *Job) decryptCBC(block cipher.Block, reader io.Reader, writer io.Writer) error {
	blockSize := block.BlockSize()
	mode := cipher.NewCBCDecrypter(block, j.Material.IV)
	bufReader := bufio.NewReaderSize(reader, j.chunkSize())

	buf, release := getBuffer(j.chunkSize())
	defer release()

	blockBuf := make([]byte, 0, j.chunkSize()+blockSize)
	plaintext := make([]byte, 0, j.chunkSize()+blockSize)
	total := 0
	isEOF := false

	for !isEOF {
		n, err := bufReader.Read(buf)
		if n > 0 {
			total += n
			blockBuf = append(blockBuf, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			isEOF = true
		} else if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		if isEOF {
			if total == 0 {
				return ErrEmptyData
			}

			if len(blockBuf)%blockSize != 0 {
				return ErrInvalidBlockSize
			}
		}

		// Decrypt everything except the trailing block, which may carry
		// padding and is only released after validation at EOF.
		full := (len(blockBuf) - 1) / blockSize * blockSize
		if full > 0 {
			plaintext = grow(plaintext, full)
			mode.CryptBlocks(plaintext[:full], blockBuf[:full])

			if _, err := writer.Write(plaintext[:full]); err != nil {
				return fmt.Errorf("writing decrypted block: %w", err)
			}

			blockBuf = append(blockBuf[:0], blockBuf[full:]...)
		}

		if isEOF {
			last := make([]byte, blockSize)
			mode.CryptBlocks(last, blockBuf)

			unpadded, err := pkcs7Unpad(last, blockSize)
			if err != nil {
				return err
			}

			if _, err := writer.Write(unpadded); err != nil {
				return fmt.Errorf("writing final decrypted block: %w", err)
			}
		}
	}

	return nil
}

// runCTR applies the counter-mode keystream; encrypt and decrypt are the
// same XOR operation and no padding is involved.
func (j *Job) runCTR(block cipher.Block, reader io.Reader, writer io.Writer) error {
	stream := cipher.NewCTR(block, j.Material.IV)

	buf, release := getBuffer(j.chunkSize())
	defer release()

	out := make([]byte, j.chunkSize())

	for {
		n, readErr := reader.Read(buf)
		if n > 0 {
			stream.XORKeyStream(out[:n], buf[:n])

			if _, err := writer.Write(out[:n]); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}

		if readErr != nil {
			return fmt.Errorf("reading input: %w", readErr)
		}
	}
}

// grow returns b extended to at least n bytes, reusing capacity.
func grow(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}

	return b[:n]
}

// writePasswordHeader prepends the salt and IV to the ciphertext stream for
// password-derived jobs, so the same password is enough to decrypt. Explicit
// key jobs write a bare ciphertext stream.
func writePasswordHeader(writer io.Writer, m *keys.Material) error {
	if m.Source != keys.PasswordDerived {
		return nil
	}

	if _, err := writer.Write(m.Salt); err != nil {
		return fmt.Errorf("writing salt: %w", err)
	}

	if _, err := writer.Write(m.IV); err != nil {
		return fmt.Errorf("writing iv: %w", err)
	}

	return nil
}

// ReadPasswordHeader reads back the salt and IV that writePasswordHeader
// prepended. It must be called before key derivation on the decrypt path.
func ReadPasswordHeader(reader io.Reader, spec algo.Spec) (salt, iv []byte, err error) {
	salt = make([]byte, keys.SaltSize)
	if _, err := io.ReadFull(reader, salt); err != nil {
		return nil, nil, fmt.Errorf("reading salt: %w", err)
	}

	iv = make([]byte, spec.BlockSize())
	if _, err := io.ReadFull(reader, iv); err != nil {
		return nil, nil, fmt.Errorf("reading iv: %w", err)
	}

	return salt, iv, nil
}
