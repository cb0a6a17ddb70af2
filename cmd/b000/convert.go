package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/spf13/cobra"

	"github.com/b000io/b000/b000"
	"github.com/b000io/b000/mzmlio"
	"github.com/b000io/b000/section"
)

type convertMode int

const (
	modeMzMLToB64 convertMode = iota
	modeMzMLToB32
	modeB64ToMzML
)

func (m convertMode) outputExt() string {
	switch m {
	case modeMzMLToB64:
		return ".b64"
	case modeMzMLToB32:
		return ".b32"
	default:
		return ".mzML"
	}
}

func newConvertCmd() *cobra.Command {
	var (
		inputPath    string
		outputPath   string
		toB64        bool
		toB32        bool
		fromB        bool
		level        uint8
		cores        int
		pattern      string
		patternExact string
		regex        string
		overwrite    bool
		configPath   string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert mzML files to/from the B000 binary container format",
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cmd.Flags().Changed("level") && defaults.Level != 0 {
				level = defaults.Level
			}
			if !cmd.Flags().Changed("cores") && defaults.Cores != 0 {
				cores = defaults.Cores
			}

			explicitModes := 0
			for _, name := range []string{"mzml-to-b64", "mzml-to-b32", "b64-to-mzml"} {
				if cmd.Flags().Changed(name) {
					explicitModes++
				}
			}
			if explicitModes > 1 {
				return fmt.Errorf("--mzml-to-b64, --mzml-to-b32, and --b64-to-mzml are mutually exclusive")
			}
			if explicitModes == 0 {
				switch defaults.Mode {
				case "", "mzml-to-b64":
				case "mzml-to-b32":
					toB32 = true
				case "b64-to-mzml":
					fromB = true
				default:
					return fmt.Errorf("config: unknown mode %q", defaults.Mode)
				}
			}
			mode := modeMzMLToB64
			switch {
			case toB32:
				mode = modeMzMLToB32
			case fromB:
				mode = modeB64ToMzML
			}

			filter, err := newFileFilter(pattern, patternExact, regex)
			if err != nil {
				return err
			}

			files, err := collectFiles(inputPath, filter)
			if err != nil {
				return err
			}

			c := runPool(context.Background(), files, cores, func(path string) (outcome, string, error) {
				return convertFile(path, inputPath, outputPath, mode, level, overwrite)
			})

			fmt.Printf("total: %d ok, %d skipped, %d rewrote, %d errored\n", c.ok.Load(), c.skip.Load(), c.rewrote.Load(), c.errored.Load())
			if c.errored.Load() > 0 {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input-path", "", "input file or directory (required)")
	cmd.Flags().StringVar(&outputPath, "output-path", "", "output file or directory (required)")
	cmd.Flags().BoolVar(&toB64, "mzml-to-b64", true, "convert mzML to .b64 (default)")
	cmd.Flags().BoolVar(&toB32, "mzml-to-b32", false, "convert mzML to .b32 (f32_compress)")
	cmd.Flags().BoolVar(&fromB, "b64-to-mzml", false, "convert .b64/.b32 back to mzML")
	cmd.Flags().Uint8Var(&level, "level", 12, "zstd compression level (0..=22)")
	cmd.Flags().IntVar(&cores, "cores", 1, "worker pool size (1..=1024)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "glob filter on file name")
	cmd.Flags().StringVar(&patternExact, "pattern-exact", "", "exact file name filter")
	cmd.Flags().StringVar(&regex, "regex", "", "regex filter on file name")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "always (re)write outputs")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML defaults file (default ~/.b000rc if present)")
	cmd.MarkFlagRequired("input-path")
	cmd.MarkFlagRequired("output-path")

	return cmd
}

func collectFiles(root string, filter *fileFilter) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filter.Match(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func convertFile(path, inputRoot, outputRoot string, mode convertMode, level uint8, overwrite bool) (outcome, string, error) {
	start := time.Now()

	outPath := outputFor(path, inputRoot, outputRoot, mode)

	if !overwrite {
		if existing, err := os.ReadFile(outPath); err == nil {
			if section.ValidTrailer(existing) {
				return outcomeSkip, fmt.Sprintf("%s (%s)", outPath, time.Since(start)), nil
			}
		}
	}

	wroteOverExisting := false
	if _, err := os.Stat(outPath); err == nil {
		wroteOverExisting = !overwrite
	}

	var outBytes []byte
	switch mode {
	case modeMzMLToB64, modeMzMLToB32:
		data, err := os.ReadFile(path)
		if err != nil {
			return outcomeError, "", err
		}
		doc, err := mzmlio.Read(data)
		if err != nil {
			return outcomeError, "", err
		}

		opts := b000.DefaultEncodeOptions()
		opts.Level = level
		opts.F32Compress = mode == modeMzMLToB32
		outBytes, err = b000.Encode(doc, opts)
		if err != nil {
			return outcomeError, "", err
		}

	case modeB64ToMzML:
		f, err := os.Open(path)
		if err != nil {
			return outcomeError, "", err
		}
		defer f.Close()

		mapped, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return outcomeError, "", err
		}
		defer mapped.Unmap()

		doc, err := b000.Decode(mapped, b000.DecodeOptions{})
		if err != nil {
			return outcomeError, "", err
		}
		outBytes, err = mzmlio.Write(doc)
		if err != nil {
			return outcomeError, "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return outcomeError, "", err
	}
	if err := os.WriteFile(outPath, outBytes, 0o644); err != nil {
		return outcomeError, "", err
	}

	o := outcomeOK
	if wroteOverExisting {
		o = outcomeRewrote
	}
	return o, fmt.Sprintf("%s (%s, %d bytes)", outPath, time.Since(start), len(outBytes)), nil
}

// outputFor derives path's output name: if inputRoot is a directory, the
// file's path relative to it is mirrored under outputRoot; otherwise
// outputRoot is used verbatim. The extension is replaced per mode (.b64/
// .b32/.mzML), matching §6's extension convention.
func outputFor(path, inputRoot, outputRoot string, mode convertMode) string {
	info, err := os.Stat(inputRoot)
	if err != nil || !info.IsDir() {
		return outputRoot
	}

	rel, err := filepath.Rel(inputRoot, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	ext := filepath.Ext(rel)
	base := strings.TrimSuffix(rel, ext)
	return filepath.Join(outputRoot, base+mode.outputExt())
}
