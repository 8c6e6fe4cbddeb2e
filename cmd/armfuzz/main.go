// Command armfuzz hammers one (width, variant) decoder with random
// instruction words across a pool of worker goroutines, asserting that
// classification, parsing and display never panic. It is not part of the
// core contract; it exists purely to exercise the runtime decode path at
// volume, the same role the original project's standalone fuzz binary
// plays for its own decoder.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AetiasHax/armv5te/args"
	"github.com/AetiasHax/armv5te/display"

	armv4tarm "github.com/AetiasHax/armv5te/armv4t/arm"
	armv4tthumb "github.com/AetiasHax/armv5te/armv4t/thumb"
	armv5tearm "github.com/AetiasHax/armv5te/armv5te/arm"
	armv5tethumb "github.com/AetiasHax/armv5te/armv5te/thumb"
	armv6arm "github.com/AetiasHax/armv5te/armv6/arm"
	armv6thumb "github.com/AetiasHax/armv5te/armv6/thumb"
	armv6karm "github.com/AetiasHax/armv5te/armv6k/arm"
	armv6kthumb "github.com/AetiasHax/armv5te/armv6k/thumb"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	var (
		threads    = flag.Int("t", runtime.NumCPU(), "number of worker goroutines")
		iterations = flag.Int("n", 100000, "iterations per worker")
		ual        = flag.Bool("ual", false, "render with UAL-style register names (a1-a4/v1-v8 aliasing)")
		showVer    = flag.Bool("version", false, "show version and exit")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVer {
		fmt.Printf("armfuzz %s\n", Version)
		return
	}

	rest := flag.Args()
	var wantArm, wantThumb bool
	var variant string
	for _, a := range rest {
		switch a {
		case "arm":
			wantArm = true
		case "thumb":
			wantThumb = true
		case "v4t", "v5te", "v6", "v6k":
			variant = a
		default:
			fmt.Fprintf(os.Stderr, "armfuzz: unknown argument %q\n", a)
			printUsage()
			os.Exit(1)
		}
	}

	if wantArm == wantThumb {
		fmt.Fprintln(os.Stderr, "armfuzz: expected exactly one of: arm, thumb")
		os.Exit(1)
	}
	if variant == "" {
		fmt.Fprintln(os.Stderr, "armfuzz: expected one of: v4t, v5te, v6, v6k")
		os.Exit(1)
	}
	if *threads <= 0 {
		fmt.Fprintln(os.Stderr, "armfuzz: number of threads must be positive")
		os.Exit(1)
	}
	if *iterations <= 0 {
		fmt.Fprintln(os.Stderr, "armfuzz: number of iterations must be positive")
		os.Exit(1)
	}

	opts := display.DefaultOptions
	if *ual {
		opts.RegNames.AV = true
	}

	fmt.Printf("Starting %d threads running %d iterations on %s/%s\n", *threads, *iterations, variant, argWidth(wantArm))

	start := time.Now()
	var total int64
	var wg sync.WaitGroup
	for w := 0; w < *threads; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			n := fuzzOne(variant, wantArm, *iterations, seed, opts)
			atomic.AddInt64(&total, int64(n))
		}(int64(w) + time.Now().UnixNano())
	}
	wg.Wait()

	fmt.Printf("Finished %d words in %.2fs\n", total, time.Since(start).Seconds())
}

func argWidth(wantArm bool) string {
	if wantArm {
		return "arm"
	}
	return "thumb"
}

// fuzzOne runs one worker's share of iterations against a single decoder,
// recovering from (and reporting, then re-panicking) any runtime failure
// so a crash is never silently swallowed.
func fuzzOne(variant string, wantArm bool, iterations int, seed int64, opts display.Options) int {
	rng := rand.New(rand.NewSource(seed))
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "armfuzz: panic decoding a generated word: %v\n", r)
			panic(r)
		}
	}()

	for i := 0; i < iterations; i++ {
		if wantArm {
			code := rng.Uint32()
			var parsed args.ParsedIns
			switch variant {
			case "v4t":
				parsed = armv4tarm.New(code).Parse()
			case "v5te":
				parsed = armv5tearm.New(code).Parse()
			case "v6":
				parsed = armv6arm.New(code).Parse()
			case "v6k":
				parsed = armv6karm.New(code).Parse()
			}
			_ = display.Display(parsed, opts).String()
		} else {
			code := uint16(rng.Uint32())
			var parsed args.ParsedIns
			switch variant {
			case "v4t":
				parsed = armv4tthumb.New(code).Parse()
			case "v5te":
				parsed = armv5tethumb.New(code).Parse()
			case "v6":
				parsed = armv6thumb.New(code).Parse()
			case "v6k":
				parsed = armv6kthumb.New(code).Parse()
			}
			_ = display.Display(parsed, opts).String()
		}
	}
	return iterations
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `armfuzz: hammer a decoder with random instruction words

Usage:
  armfuzz [flags] arm|thumb v4t|v5te|v6|v6k

Flags:
  -t N        number of worker goroutines (default: NumCPU)
  -n N        iterations per worker (default: 100000)
  -ual        render with UAL-style register aliasing
  -version    show version and exit

Examples:
  armfuzz arm v5te
  armfuzz -t 4 -n 1000000 thumb v6
`)
}
