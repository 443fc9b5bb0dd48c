// bench_io compares file read strategies for hashing:
//
//  1. "mmap": map the whole file and hash the mapping with one Sum call
//  2. "stream": sequential buffered reads fed to a streaming Hasher
//
// Each pass hashes the same file and reports wall time, throughput, and
// the digest, which must agree across strategies. "sweep" runs the
// stream pass across a ladder of buffer sizes.
//
// Usage:
//
//	go run ./cmd/bench_io -size 256
//	go run ./cmd/bench_io -file /data/corpus.bin -mode sweep
//	go run ./cmd/bench_io -file /data/corpus.bin -cold
//
// With -cold the file's pages are dropped from the page cache between
// passes (Linux only), so every strategy reads from disk rather than
// replaying the previous pass's cache.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/tamirms/nilsimsa"
	"github.com/tamirms/nilsimsa/internal/fileio"
)

func main() {
	file := flag.String("file", "", "input file (default: generate a temp file)")
	sizeMB := flag.Int("size", 256, "generated file size in MB")
	bufferKB := flag.Int("buffer", 256, "read buffer size in KB for stream mode")
	mode := flag.String("mode", "both", "mode: mmap, stream, sweep, or both")
	tmpDir := flag.String("dir", "", "temp directory (default: os.TempDir())")
	cold := flag.Bool("cold", false, "drop the page cache before each pass")
	flag.Parse()

	path := *file
	if path == "" {
		if *tmpDir == "" {
			*tmpDir = os.TempDir()
		}
		generated, err := writeTestFile(*tmpDir, int64(*sizeMB)<<20)
		if err != nil {
			fmt.Printf("ERROR: generate input: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = os.Remove(generated) }()
		path = generated
	}

	stat, err := os.Stat(path)
	if err != nil {
		fmt.Printf("ERROR: stat input: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Configuration:\n")
	fmt.Printf("  Input:       %s\n", path)
	fmt.Printf("  Size:        %.1f MB\n", float64(stat.Size())/(1<<20))
	fmt.Printf("  Cold cache:  %v\n", *cold)
	fmt.Printf("  GOMAXPROCS:  %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	if *mode == "sweep" {
		fmt.Println("=== read buffer sweep (streamed) ===")
		for _, kb := range []int{16, 64, 256, 1024, 4096} {
			benchStream(path, kb<<10, *cold)
		}
		return
	}

	if *mode == "mmap" || *mode == "both" {
		fmt.Println("=== mmap + one-shot Sum ===")
		benchMmap(path, *cold)
		fmt.Println()
	}

	if *mode == "stream" || *mode == "both" {
		fmt.Println("=== streamed reads ===")
		benchStream(path, *bufferKB<<10, *cold)
		fmt.Println()
	}
}

// benchMmap maps the file and hashes the whole mapping in one call. Page
// faults during the scan are part of the measured time.
func benchMmap(path string, cold bool) {
	if cold {
		dropCache(path)
	}

	start := time.Now()
	m, err := fileio.Open(path)
	if err != nil {
		fmt.Printf("  ERROR: %v\n", err)
		return
	}
	digest := nilsimsa.Sum(m.Bytes())
	dur := time.Since(start)

	size := m.Size()
	_ = m.Close()

	rate := float64(size) / dur.Seconds() / (1 << 20)
	fmt.Printf("  Hash:  %6.2fs (%7.1f MB/s)  digest=%s\n", dur.Seconds(), rate, digest)
}

// benchStream reads the file sequentially with a fixed-size buffer and
// feeds every chunk to a streaming Hasher.
func benchStream(path string, bufSize int, cold bool) {
	if cold {
		dropCache(path)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("  ERROR: %v\n", err)
		return
	}
	defer f.Close()

	start := time.Now()
	var h nilsimsa.Hasher
	buf := make([]byte, bufSize)
	var total int64
	for {
		n, err := f.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
			total += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("  ERROR: read: %v\n", err)
			return
		}
	}
	digest := h.Digest()
	dur := time.Since(start)

	rate := float64(total) / dur.Seconds() / (1 << 20)
	fmt.Printf("  buf=%5dK  %6.2fs (%7.1f MB/s)  digest=%s\n",
		bufSize>>10, dur.Seconds(), rate, digest)
}

// writeTestFile fills a temp file with fixed-seed random data and syncs
// it, so cold-cache passes can evict every page.
func writeTestFile(dir string, size int64) (string, error) {
	f, err := os.CreateTemp(dir, "bench-io-*.bin")
	if err != nil {
		return "", err
	}

	rng := rand.New(rand.NewPCG(42, 0))
	buf := make([]byte, 1<<20)
	for written := int64(0); written < size; written += int64(len(buf)) {
		for i := 0; i < len(buf); i += 8 {
			binary.LittleEndian.PutUint64(buf[i:], rng.Uint64())
		}
		if _, err := f.Write(buf); err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
			return "", err
		}
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), f.Close()
}
