package sharing

import (
	"fmt"
	"math/big"
	"strings"
)

// String renders the share in the "x,y" decimal text form the command-line
// tools exchange.
func (s *Share) String() string {
	return fmt.Sprintf("%s,%s", s.X, s.Y)
}

// ParseShare parses a share from its "x,y" text form. Whitespace around
// either coordinate is ignored. The x-coordinate must be a positive integer;
// x = 0 would place the secret itself in the share.
func ParseShare(text string) (*Share, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShareFormat, text)
	}

	x, ok := new(big.Int).SetString(strings.TrimSpace(parts[0]), 10)
	if !ok || x.Sign() <= 0 {
		return nil, fmt.Errorf("%w: bad x-coordinate in %q", ErrInvalidShareFormat, text)
	}

	y, ok := new(big.Int).SetString(strings.TrimSpace(parts[1]), 10)
	if !ok || y.Sign() < 0 {
		return nil, fmt.Errorf("%w: bad y-coordinate in %q", ErrInvalidShareFormat, text)
	}

	return &Share{X: x, Y: y}, nil
}
