package encryption

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/fileutil"
)

var (
	// ErrEmptySuffix is returned when encrypted outputs would overwrite their inputs.
	ErrEmptySuffix = errors.New("encrypt suffix must not be empty")

	// ErrSamePath is returned when a file's output path equals its input path.
	ErrSamePath = errors.New("output would overwrite input")
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// key stores raw key bytes
	key []byte

	// block is the engine used for encryption, nil when decrypting
	block cipher.Block

	// mode is the chaining mode used for encryption
	mode CipherMode

	// logger receives diagnostics
	logger *slog.Logger
}

// NewProcessor creates a new Processor with the given configuration.
// When encrypting, the engine is built up front from the configured parameters.
// When decrypting, it is built per file from the envelope header.
func NewProcessor(cfg *config.Config, logger *slog.Logger) (*Processor, error) {
	if cfg.Suffixes.Encrypt == "" {
		return nil, ErrEmptySuffix
	}

	encryptionKey, err := cfg.Key.Bytes()
	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}

	processor := &Processor{
		cfg:    cfg,
		key:    encryptionKey,
		logger: logger,
	}

	if cfg.Decrypt {
		return processor, nil
	}

	processor.mode, err = ParseCipherMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	processor.block, err = NewBlock(processor.params(), encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	logger.Debug("engine ready",
		"width", cfg.Engine.Width,
		"rounds", cfg.Engine.Rounds,
		"function", cfg.Engine.Function,
		"mode", processor.mode,
	)

	return processor, nil
}

func (p *Processor) params() Params {
	return Params{
		Width:    p.cfg.Engine.Width,
		Rounds:   p.cfg.Engine.Rounds,
		Function: p.cfg.Engine.Function,
	}
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Returns the number of successfully processed files and the number of errors.
//
//nolint:cyclop
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	limit := p.cfg.Parallel
	if limit < 1 {
		limit = runtime.NumCPU()
	}

	group := errgroup.Group{}
	group.SetLimit(limit)

	results := make(chan Result, len(p.cfg.Files))
	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				p.logger.Debug("processed", "file", result.Input, "output", result.Output,
					"size", result.OutputSize, "elapsed", result.Elapsed)

				if !p.cfg.Quiet {
					fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
				}
			}

			if p.cfg.Delete && result.Error == nil {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input) //nolint:forbidigo
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			start := time.Now()
			outPath := OutputPath(file, p.cfg)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.logger.Debug("processing failed", "file", file, "error", err)

				results <- Result{Input: file, Elapsed: time.Since(start), Error: err}

				return err
			}

			results <- Result{Input: file, Output: outPath, OutputSize: size, Elapsed: time.Since(start)}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// Encrypt writes the envelope header, the optional IV, the ciphertext and the tag to writer.
func (p *Processor) Encrypt(reader io.Reader, writer io.Writer, isExec bool) error {
	header, err := envelope{mode: p.mode, executable: isExec, params: p.params()}.marshal()
	if err != nil {
		return fmt.Errorf("building header: %w", err)
	}

	if _, err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	mac, err := newEnvelopeMAC(p.key, header)
	if err != nil {
		return err
	}

	sink := io.MultiWriter(writer, mac)

	var blockMode cipher.BlockMode

	switch p.mode {
	case ModeCBC:
		iv := make([]byte, p.block.BlockSize())
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			return fmt.Errorf("generating IV: %w", err)
		}

		if _, err := sink.Write(iv); err != nil {
			return fmt.Errorf("writing IV: %w", err)
		}

		blockMode = cipher.NewCBCEncrypter(p.block, iv)
	default:
		blockMode = newECBEncrypter(p.block)
	}

	if err := encryptStream(reader, sink, blockMode); err != nil {
		return err
	}

	if _, err := writer.Write(mac.Sum(nil)); err != nil {
		return fmt.Errorf("writing authentication tag: %w", err)
	}

	return nil
}

// Decrypt reads an envelope from reader, decrypts it with the parameters from its header
// and writes the plaintext to writer. It returns whether the original file was executable.
//
// Plaintext is streamed to writer before the tag is checked. On error the caller must
// discard everything written so far; processFile does this by removing its temp file.
func (p *Processor) Decrypt(reader io.Reader, writer io.Writer) (bool, error) {
	header := make([]byte, envelopeHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return false, fmt.Errorf("reading header: %w", err)
	}

	env, err := parseEnvelopeHeader(header)
	if err != nil {
		return false, err
	}

	block, err := NewBlock(env.params, p.key)
	if err != nil {
		return false, fmt.Errorf("decrypt: %w", err)
	}

	p.logger.Debug("envelope",
		"width", env.params.Width,
		"rounds", env.params.Rounds,
		"function", env.params.Function,
		"mode", env.mode,
	)

	mac, err := newEnvelopeMAC(p.key, header)
	if err != nil {
		return false, err
	}

	var blockMode cipher.BlockMode

	switch env.mode {
	case ModeCBC:
		iv := make([]byte, block.BlockSize())
		if _, err := io.ReadFull(reader, iv); err != nil {
			return false, fmt.Errorf("reading IV: %w", err)
		}

		mac.Write(iv)

		blockMode = cipher.NewCBCDecrypter(block, iv)
	default:
		blockMode = newECBDecrypter(block)
	}

	return env.executable, decryptStream(reader, writer, blockMode, mac)
}

// processFile handles the encryption or decryption of a single file.
// It creates a temporary file for output and performs an atomic rename on completion.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	if filepath.Clean(filename) == filepath.Clean(outPath) {
		return 0, fmt.Errorf("%w: %q", ErrSamePath, filename)
	}

	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	executable := tc.IsExec

	if p.cfg.Decrypt {
		executable, err = p.Decrypt(inFile, tc.TmpFile)
		if err != nil {
			return 0, fmt.Errorf("decrypting file: %w", err)
		}
	} else if err = p.Encrypt(inFile, tc.TmpFile, tc.IsExec); err != nil {
		return 0, fmt.Errorf("encrypting file: %w", err)
	}

	if err = tc.Commit(outPath, executable); err != nil {
		return 0, err
	}

	if err = inFile.Close(); err != nil {
		return 0, fmt.Errorf("closing input file: %w", err)
	}

	size, err = fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func OutputPath(filename string, cfg *config.Config) string {
	ext := cfg.Suffixes.Encrypt

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
