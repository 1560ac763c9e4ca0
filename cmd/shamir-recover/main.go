// shamir-recover reconstructs a secret from shares produced by shamir-split.
// Shares are entered one per line as "x,y" and collection ends with "done"
// (or EOF). The modulus must be exactly the one the shares were generated
// with.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/luiscm/shamir/sharing"
)

const version = "1.0.0"

func main() {
	var (
		primeFlag   = flag.String("prime", "", "Field modulus the shares were generated with (default 2^127-1)")
		showVersion = flag.Bool("version", false, "Show version information")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] < shares.txt\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reconstruct a secret from Shamir shares.\n\n")
		fmt.Fprintf(os.Stderr, "Shares are read from stdin, one \"x,y\" line each, until \"done\", \"exit\"\n")
		fmt.Fprintf(os.Stderr, "or end of input. At least as many shares as the original threshold are\n")
		fmt.Fprintf(os.Stderr, "needed; with fewer the result is an unrelated value, not an error.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "  --prime string\n        Field modulus the shares were generated with (default: 2^127-1)\n")
		fmt.Fprintf(os.Stderr, "  --version\n        Show version information\n")
		fmt.Fprintf(os.Stderr, "  --help\n        Show help message\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s < shares.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  shamir-split --secret 42 --shares 5 --threshold 3 | %s\n", os.Args[0])
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("shamir-recover v%s\n", version)
		return
	}

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	prime := sharing.DefaultPrime()
	if *primeFlag != "" {
		p, ok := new(big.Int).SetString(*primeFlag, 10)
		if !ok || p.Cmp(big.NewInt(2)) < 0 {
			fmt.Fprintf(os.Stderr, "Error: --prime must be a decimal integer greater than 1\n")
			os.Exit(1)
		}
		prime = p
	}

	var shares []*sharing.Share
	stdin := bufio.NewScanner(os.Stdin)
	stdin.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprintf(os.Stderr, "Enter shares one per line as x,y and finish with \"done\"\n")

	for {
		eof := collectShares(stdin, &shares, prime)
		if err := stdin.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading shares: %v\n", err)
			os.Exit(1)
		}

		secret, err := sharing.RecoverSecret(shares, prime)
		if err != nil {
			reportRecoveryError(err)
			if eof {
				os.Exit(1)
			}
			// Input is still open: let the user add more shares.
			continue
		}

		fmt.Fprintf(os.Stderr, "Reconstructed from %d shares. If that is fewer than the original\n", len(shares))
		fmt.Fprintf(os.Stderr, "threshold, or the modulus differs, this is NOT the real secret.\n")
		fmt.Println(secret)
		return
	}
}

// collectShares reads "x,y" lines into shares until the done/exit sentinel or
// end of input, skipping malformed lines and duplicate x-coordinates with a
// message. It reports whether input is exhausted.
func collectShares(stdin *bufio.Scanner, shares *[]*sharing.Share, prime *big.Int) bool {
	for {
		fmt.Fprintf(os.Stderr, "Share %d: ", len(*shares)+1)
		if !stdin.Scan() {
			fmt.Fprintln(os.Stderr)
			return true
		}

		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}
		if lower := strings.ToLower(line); lower == "done" || lower == "exit" {
			return false
		}

		share, err := sharing.ParseShare(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid share %q, expected x,y (example: 3,9876)\n", line)
			continue
		}
		if duplicate(*shares, share, prime) {
			fmt.Fprintf(os.Stderr, "A share with x = %s was already entered, ignoring\n", share.X)
			continue
		}
		*shares = append(*shares, share)
	}
}

// duplicate reports whether a share with the same x mod prime was already
// collected. The library rejects duplicates too; catching them here lets the
// user keep typing instead of restarting.
func duplicate(shares []*sharing.Share, candidate *sharing.Share, prime *big.Int) bool {
	cx := new(big.Int).Mod(candidate.X, prime)
	for _, share := range shares {
		if new(big.Int).Mod(share.X, prime).Cmp(cx) == 0 {
			return true
		}
	}
	return false
}

func reportRecoveryError(err error) {
	switch {
	case errors.Is(err, sharing.ErrInsufficientShares):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "At least 2 shares are needed. If the scheme was created with a\n")
		fmt.Fprintf(os.Stderr, "threshold of 1, the y value of any single share IS the secret.\n")
	case errors.Is(err, sharing.ErrNoInverse):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Check that the modulus is the exact prime used to generate the shares.\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
