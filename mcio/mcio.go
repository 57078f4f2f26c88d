package mcio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/label"
)

// Sentinel errors for malformed input files.
var (
	ErrMissingHeader    = errors.New("mcio: missing STATES/TRANSITIONS header")
	ErrMalformedRow     = errors.New("mcio: malformed row")
	ErrMissingDeclBlock = errors.New("mcio: missing #DECLARATION/#END block")
)

// stateID renders a 1-based .tra/.lab state number as this package's
// canonical chain.Chain state ID ("1", "2", ...), matching the original
// tool's 1-indexed state numbering directly rather than remapping to 0.
func stateID(n int) string { return strconv.Itoa(n) }

// ReadTra parses a .tra file into a fresh chain.Chain of the given kind.
// Header format:
//
//	STATES <n>
//	TRANSITIONS <m>
//	<from> <to> <value>   (one row per transition, m rows, 1-indexed states)
func ReadTra(r io.Reader, kind chain.Kind) (*chain.Chain, error) {
	return ReadTraWithRewards(r, kind, nil)
}

// ReadTraWithRewards behaves like ReadTra, additionally attaching a
// per-state reward from rewards (1-indexed, typically loaded via ReadRew)
// to each state as it is added; rewards may be nil.
func ReadTraWithRewards(r io.Reader, kind chain.Kind, rewards map[int]float64) (*chain.Chain, error) {
	sc := bufio.NewScanner(r)
	numStates, err := readHeaderLine(sc, "STATES")
	if err != nil {
		return nil, err
	}
	numTrans, err := readHeaderLine(sc, "TRANSITIONS")
	if err != nil {
		return nil, err
	}

	c := chain.NewChain(kind)
	for i := 1; i <= numStates; i++ {
		if err := c.AddState(stateID(i), rewards[i]); err != nil {
			return nil, err
		}
	}

	rows := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("mcio: ReadTra row %q: %w", line, ErrMalformedRow)
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("mcio: ReadTra row %q: %w", line, ErrMalformedRow)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("mcio: ReadTra row %q: %w", line, ErrMalformedRow)
		}
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("mcio: ReadTra row %q: %w", line, ErrMalformedRow)
		}
		action := ""
		if len(fields) >= 4 {
			action = fields[3]
		}
		if err := c.AddTransition(stateID(from), stateID(to), val, 0, action); err != nil {
			return nil, err
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rows != numTrans {
		return nil, fmt.Errorf("mcio: ReadTra declared %d transitions, found %d: %w", numTrans, rows, ErrMalformedRow)
	}

	return c, nil
}

// readHeaderLine scans the next non-blank line, requiring it to start with
// want (e.g. "STATES"), and returns the integer that follows.
func readHeaderLine(sc *bufio.Scanner, want string) (int, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != want {
			return 0, fmt.Errorf("mcio: expected %q header, got %q: %w", want, line, ErrMissingHeader)
		}

		return strconv.Atoi(fields[1])
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}

	return 0, fmt.Errorf("mcio: %w", ErrMissingHeader)
}

// ReadLab parses a .lab file into a fresh label.Set over numStates states.
// Format:
//
//	#DECLARATION
//	<label1> <label2> ...
//	#END
//	<state> <label> ...   (one row per labeled state, 1-indexed)
func ReadLab(r io.Reader, numStates int) (*label.Set, error) {
	sc := bufio.NewScanner(r)
	set := label.New(numStates)

	inDecl := false
	declDone := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "#DECLARATION" {
			inDecl = true

			continue
		}
		if line == "#END" {
			inDecl = false
			declDone = true

			continue
		}
		if inDecl {
			for _, name := range strings.Fields(line) {
				if err := set.AddLabel(name); err != nil {
					return nil, err
				}
			}

			continue
		}
		if !declDone {
			return nil, fmt.Errorf("mcio: ReadLab: %w", ErrMissingDeclBlock)
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("mcio: ReadLab row %q: %w", line, ErrMalformedRow)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("mcio: ReadLab row %q: %w", line, ErrMalformedRow)
		}
		for _, name := range fields[1:] {
			if err := set.SetBit(name, n-1); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !declDone {
		return nil, fmt.Errorf("mcio: ReadLab: %w", ErrMissingDeclBlock)
	}

	return set, nil
}

// ReadRew parses a .rew file (optional, DMRM/CMRM only) into a
// state-index -> reward map. Format:
//
//	STATES <n>
//	<state> <reward>   (1-indexed, one row per non-zero reward)
func ReadRew(r io.Reader) (map[int]float64, error) {
	sc := bufio.NewScanner(r)
	if _, err := readHeaderLine(sc, "STATES"); err != nil {
		return nil, err
	}

	out := make(map[int]float64)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("mcio: ReadRew row %q: %w", line, ErrMalformedRow)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("mcio: ReadRew row %q: %w", line, ErrMalformedRow)
		}
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("mcio: ReadRew row %q: %w", line, ErrMalformedRow)
		}
		out[n] = val
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
