// Bench is a benchmarking tool for measuring Nilsimsa hashing throughput,
// digest comparison throughput, and memory usage, with conventional fast
// hashes (xxhash64, xxh3, murmur3) run on the same input for scale.
//
// Usage:
//
//	go run ./cmd/bench -size 67108864 -writesize 65536 -pairs 2000000
//
// Flags:
//
//	-size       bytes of input to hash (default: 64 MiB)
//	-writesize  bytes per Write call in the streaming pass (default: 64 KiB)
//	-pairs      number of digest pairs to score (default: 2,000,000)
//	-cutoff     Hamming distance cutoff for the early-exit pass (default: 38)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	"github.com/tamirms/nilsimsa"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024 // Convert KB to bytes on Linux
	}
	return maxRSS
}

// sink keeps the compiler from eliminating pure hash calls.
var sink uint64

func main() {
	sizeFlag := flag.Int("size", 64<<20, "input size in bytes")
	writeFlag := flag.Int("writesize", 64<<10, "bytes per Write call in the streaming pass")
	pairsFlag := flag.Int("pairs", 2_000_000, "number of digest pairs to score")
	cutoffFlag := flag.Int("cutoff", 38, "Hamming distance cutoff for the early-exit pass")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	size := *sizeFlag
	writeSize := *writeFlag
	numPairs := *pairsFlag
	if size <= 0 || writeSize <= 0 || numPairs <= 0 {
		fmt.Println("size, writesize, and pairs must be positive")
		return
	}

	fmt.Println("Generating input...")
	rng := mrand.New(mrand.NewPCG(0x1234567890ABCDEF, 0xFEDCBA9876543210))
	data := make([]byte, size)
	fillRandom(rng, data)

	// Hash the input at least this often so the fast baselines get a
	// measurable timing window.
	rounds := max(1, (256<<20)/size)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Println("Hashing...")
	oneShotDur := timePass(rounds, func() {
		d := nilsimsa.Sum(data)
		sink ^= uint64(d[0])
	})

	var streamed nilsimsa.Digest
	streamDur := timePass(rounds, func() {
		h := nilsimsa.New()
		for off := 0; off < len(data); off += writeSize {
			end := min(off+writeSize, len(data))
			_, _ = h.Write(data[off:end]) // cannot fail before Digest
		}
		streamed = h.Digest()
	})
	if streamed != nilsimsa.Sum(data) {
		fmt.Println("streamed digest differs from one-shot digest")
		return
	}

	xxhashDur := timePass(rounds, func() { sink ^= xxhash.Sum64(data) })
	xxh3Dur := timePass(rounds, func() { sink ^= xxh3.Hash(data) })
	murmurDur := timePass(rounds, func() {
		h1, _ := murmur3.Sum128(data)
		sink ^= h1
	})

	fmt.Println("Scoring digest pairs...")
	pairsA := make([]nilsimsa.Digest, numPairs)
	pairsB := make([]nilsimsa.Digest, numPairs)
	for i := range pairsA {
		fillRandom(rng, pairsA[i][:])
		fillRandom(rng, pairsB[i][:])
	}

	var scoreSum int64
	compareDur := timePass(1, func() {
		for i := range pairsA {
			scoreSum += int64(nilsimsa.Compare(pairsA[i], pairsB[i]))
		}
	})

	var cutoffSum int64
	cutoffDur := timePass(1, func() {
		for i := range pairsA {
			cutoffSum += int64(nilsimsa.CompareWithCutoff(pairsA[i], pairsB[i], *cutoffFlag))
		}
	})

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Printf("could not create memory profile: %v\n", err)
		} else {
			runtime.GC() // Get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				fmt.Printf("could not write memory profile: %v\n", err)
			}
			_ = f.Close()
		}
	}

	hashed := float64(size) * float64(rounds)
	mbps := func(d time.Duration) float64 { return hashed / d.Seconds() / 1_000_000 }
	pairRate := func(d time.Duration) float64 { return float64(numPairs) / d.Seconds() / 1_000_000 }

	fmt.Printf("\n")
	fmt.Printf("╔══════════════════════════╦════════════════════╗\n")
	fmt.Printf("║ Metric                   ║ Value              ║\n")
	fmt.Printf("╠══════════════════════════╬════════════════════╣\n")
	fmt.Printf("║ Input size               ║ %8d MiB       ║\n", size>>20)
	fmt.Printf("║ Rounds                   ║ %8d           ║\n", rounds)
	fmt.Printf("║ Nilsimsa one-shot        ║ %8.1f MB/s      ║\n", mbps(oneShotDur))
	fmt.Printf("║ Nilsimsa streamed        ║ %8.1f MB/s      ║\n", mbps(streamDur))
	fmt.Printf("║   write size             ║ %8d B         ║\n", writeSize)
	fmt.Printf("║ xxhash64 baseline        ║ %8.1f MB/s      ║\n", mbps(xxhashDur))
	fmt.Printf("║ xxh3-64 baseline         ║ %8.1f MB/s      ║\n", mbps(xxh3Dur))
	fmt.Printf("║ murmur3-128 baseline     ║ %8.1f MB/s      ║\n", mbps(murmurDur))
	fmt.Printf("║ Compare                  ║ %8.2f Mpairs/s  ║\n", pairRate(compareDur))
	fmt.Printf("║ Compare cutoff=%-3d       ║ %8.2f Mpairs/s  ║\n", *cutoffFlag, pairRate(cutoffDur))
	fmt.Printf("║ Mean score (exact)       ║ %8.2f           ║\n", float64(scoreSum)/float64(numPairs))
	fmt.Printf("║ Mean score (cutoff)      ║ %8.2f           ║\n", float64(cutoffSum)/float64(numPairs))
	fmt.Printf("║ Peak RSS                 ║ %8.1f MB        ║\n", float64(getMaxRSS())/1_000_000)
	fmt.Printf("╚══════════════════════════╩════════════════════╝\n")
}

// timePass runs fn rounds times and returns the total elapsed time.
func timePass(rounds int, fn func()) time.Duration {
	start := time.Now()
	for range rounds {
		fn()
	}
	return time.Since(start)
}

// fillRandom fills buf with pseudo-random bytes from rng, eight at a time.
func fillRandom(rng *mrand.Rand, buf []byte) {
	for i := 0; i+8 <= len(buf); i += 8 {
		binary.LittleEndian.PutUint64(buf[i:], rng.Uint64())
	}
	if tail := len(buf) % 8; tail > 0 {
		v := rng.Uint64()
		for j := range tail {
			buf[len(buf)-tail+j] = byte(v >> (8 * j))
		}
	}
}
