package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2026, "go-galois")

	specs := []extensionSpecs{
		{Name: "gf4", Order: 4, Modulus: 0b111, Symbols: []string{"0", "1", "α", "β"}},
	}

	for _, spec := range specs {
		cfg, err := spec.config()
		assertNoError(err, "for field \"%s\"", spec.Name)

		assertNoError(bgen.Generate(cfg, "field", "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s_tables.go", spec.Name),
				Templates: []string{"tables.go.tmpl"},
			},
		), "for field \"%s\"", spec.Name)
	}
	// run gofmt on the field package
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// extensionSpecs describes a binary extension field GF(2ᵐ), constructed as
// GF(2)[x] modulo some irreducible polynomial of degree m.  Elements are
// encoded by their coefficient bits, so addition is exclusive-or.
type extensionSpecs struct {
	Name string
	// Number of elements (2ᵐ)
	Order uint32
	// Modulus polynomial, with bit i holding the coefficient of xⁱ.
	Modulus uint32
	// Printable symbol for each element
	Symbols []string
}

type extensionConfig struct {
	extensionSpecs
	Add     [][]uint32
	Mul     [][]uint32
	Inverse []uint32
}

func (f extensionSpecs) config() (*extensionConfig, error) {
	degree := bitLen(f.Modulus) - 1
	//
	switch {
	case f.Order < 4 || f.Order&(f.Order-1) != 0:
		return nil, fmt.Errorf("order %d is not a power of two greater than 2", f.Order)
	case uint32(1)<<degree != f.Order:
		return nil, fmt.Errorf("modulus %#b has wrong degree for order %d", f.Modulus, f.Order)
	case !irreducible(f.Modulus):
		return nil, fmt.Errorf("modulus %#b is reducible", f.Modulus)
	case uint32(len(f.Symbols)) != f.Order:
		return nil, fmt.Errorf("expected %d symbols, got %d", f.Order, len(f.Symbols))
	}
	//
	cfg := &extensionConfig{extensionSpecs: f}
	cfg.Add = make([][]uint32, f.Order)
	cfg.Mul = make([][]uint32, f.Order)
	cfg.Inverse = make([]uint32, f.Order)
	//
	for x := uint32(0); x < f.Order; x++ {
		cfg.Add[x] = make([]uint32, f.Order)
		cfg.Mul[x] = make([]uint32, f.Order)
		//
		for y := uint32(0); y < f.Order; y++ {
			cfg.Add[x][y] = x ^ y
			cfg.Mul[x][y] = mulMod(x, y, f.Modulus)
			//
			if cfg.Mul[x][y] == 1 {
				cfg.Inverse[x] = y
			}
		}
	}
	//
	return cfg, nil
}

// mulMod computes the carry-less product x·y reduced modulo m.
func mulMod(x, y, m uint32) uint32 {
	var (
		product uint32
		degree  = bitLen(m) - 1
	)
	//
	for ; y != 0; y >>= 1 {
		if y&1 == 1 {
			product ^= x
		}
		//
		x <<= 1
		if x&(1<<degree) != 0 {
			x ^= m
		}
	}
	//
	return product
}

// irreducible checks that m has no non-trivial factor, by trial division.
func irreducible(m uint32) bool {
	for d := uint32(2); bitLen(d) <= bitLen(m)/2+1 && d < m; d++ {
		if polyMod(m, d) == 0 {
			return false
		}
	}
	//
	return true
}

func polyMod(x, d uint32) uint32 {
	for bitLen(x) >= bitLen(d) {
		x ^= d << (bitLen(x) - bitLen(d))
	}
	//
	return x
}

func bitLen(x uint32) uint32 {
	n := uint32(0)
	for ; x != 0; x >>= 1 {
		n++
	}
	//
	return n
}

func assertNoError(err error, context string, args ...any) {
	if err != nil {
		fmt.Printf("error: %v %s\n", err, fmt.Sprintf(context, args...))
		os.Exit(1)
	}
}
