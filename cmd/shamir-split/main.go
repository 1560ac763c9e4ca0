// shamir-split splits an integer secret into shares using Shamir's threshold
// scheme. Any -threshold of the generated shares reconstruct the secret with
// shamir-recover; fewer reveal nothing.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/luiscm/shamir/sharing"
)

const version = "1.0.0"

func main() {
	var (
		secretFlag    = flag.String("secret", "", "Secret integer to split (will prompt if not provided)")
		sharesFlag    = flag.Int("shares", 0, "Total number of shares to generate (will prompt if not provided)")
		thresholdFlag = flag.Int("threshold", 0, "Minimum number of shares needed to reconstruct (will prompt if not provided)")
		primeFlag     = flag.String("prime", "", "Field modulus, a prime larger than the secret (default 2^127-1)")
		showVersion   = flag.Bool("version", false, "Show version information")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Split an integer secret into N shares of which any K reconstruct it.\n\n")
		fmt.Fprintf(os.Stderr, "Each share is printed as one \"x,y\" line on stdout, ready to hand to a\n")
		fmt.Fprintf(os.Stderr, "share holder together with the modulus. Keep the modulus with the shares:\n")
		fmt.Fprintf(os.Stderr, "recovery needs the exact same value.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "  --secret string\n        Secret integer to split (prompted without echo if not provided)\n")
		fmt.Fprintf(os.Stderr, "  --shares int\n        Total number of shares to generate\n")
		fmt.Fprintf(os.Stderr, "  --threshold int\n        Minimum number of shares needed to reconstruct\n")
		fmt.Fprintf(os.Stderr, "  --prime string\n        Field modulus, a prime larger than the secret (default: 2^127-1)\n")
		fmt.Fprintf(os.Stderr, "  --version\n        Show version information\n")
		fmt.Fprintf(os.Stderr, "  --help\n        Show help message\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --shares 5 --threshold 3\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --secret 42 --shares 5 --threshold 3 > shares.txt\n", os.Args[0])
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("shamir-split v%s\n", version)
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

	interactive := term.IsTerminal(int(syscall.Stdin))
	stdin := bufio.NewReader(os.Stdin)

	secret, err := resolveSecret(*secretFlag, interactive, stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shareCount := *sharesFlag
	threshold := *thresholdFlag
	if shareCount < 1 {
		if !interactive {
			fmt.Fprintf(os.Stderr, "Error: --shares is required\n")
			os.Exit(1)
		}
		shareCount = promptInt(stdin, "Total number of shares to generate: ", 1)
	}
	if threshold < 1 {
		if !interactive {
			fmt.Fprintf(os.Stderr, "Error: --threshold is required\n")
			os.Exit(1)
		}
		threshold = promptInt(stdin, "Minimum number of shares needed to reconstruct: ", 1)
	}

	// When interactive, keep asking instead of dying on an impossible
	// threshold; scripted runs fail fast.
	for threshold > shareCount {
		if !interactive {
			fmt.Fprintf(os.Stderr, "Error: threshold (%d) cannot exceed the number of shares (%d)\n", threshold, shareCount)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Threshold (%d) cannot exceed the number of shares (%d)\n", threshold, shareCount)
		threshold = promptInt(stdin, "Minimum number of shares needed to reconstruct: ", 1)
	}

	shares, err := sharing.MakeRandomShares(secret, threshold, shareCount, prime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Generated %d shares, any %d reconstruct the secret\n", shareCount, threshold)
	fmt.Fprintf(os.Stderr, "Modulus: %s\n", prime)
	for _, share := range shares {
		fmt.Println(share)
	}
}

// resolveSecret takes the secret from the flag when given, otherwise prompts.
// On a terminal the prompt does not echo; piped input is read as a plain
// line.
func resolveSecret(flagValue string, interactive bool, stdin *bufio.Reader) (*big.Int, error) {
	text := flagValue

	if text == "" && interactive {
		fmt.Fprint(os.Stderr, "Enter the secret integer: ")
		secretBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("reading secret: %v", err)
		}
		text = string(secretBytes)
	}

	if text == "" {
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("no secret provided")
		}
		text = line
	}

	secret, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
	if !ok || secret.Sign() < 0 {
		return nil, fmt.Errorf("secret must be a non-negative decimal integer")
	}
	return secret, nil
}

// promptInt keeps asking until it gets an integer >= min.
func promptInt(stdin *bufio.Reader, prompt string, min int) int {
	for {
		fmt.Fprint(os.Stderr, prompt)
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintf(os.Stderr, "\nError: input closed\n")
			os.Exit(1)
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || value < min {
			fmt.Fprintf(os.Stderr, "Please enter an integer greater than or equal to %d\n", min)
			continue
		}
		return value
	}
}
