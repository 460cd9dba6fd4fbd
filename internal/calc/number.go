package calc

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	ErrInvalidExpression = errors.New("invalid expression")
	ErrDivisionByZero    = errors.New("division by zero")
)

// maxIntBits bounds integer powers so a single keypress cannot stall the UI.
const maxIntBits = 14000

// number is either an arbitrary precision integer or a float64.
type number struct {
	i       *big.Int
	f       float64
	isFloat bool
}

func intNumber(i *big.Int) number  { return number{i: i} }
func floatNumber(f float64) number { return number{f: f, isFloat: true} }

func parseLiteral(lit string) (number, error) {
	if strings.ContainsRune(lit, '.') {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return number{}, fmt.Errorf("%w: bad number %q", ErrInvalidExpression, lit)
		}
		return floatNumber(f), nil
	}

	// Non-zero integers may not start with 0.
	if len(lit) > 1 && lit[0] == '0' && strings.Trim(lit, "0") != "" {
		return number{}, fmt.Errorf("%w: leading zeros in %q", ErrInvalidExpression, lit)
	}
	i, ok := new(big.Int).SetString(lit, 10)
	if !ok {
		return number{}, fmt.Errorf("%w: bad number %q", ErrInvalidExpression, lit)
	}
	return intNumber(i), nil
}

func (n number) float() (float64, error) {
	if n.isFloat {
		return n.f, nil
	}
	f, _ := new(big.Float).SetInt(n.i).Float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: integer too large to convert to float", ErrInvalidExpression)
	}
	return f, nil
}

func (n number) isZero() bool {
	if n.isFloat {
		return n.f == 0
	}
	return n.i.Sign() == 0
}

func (n number) String() string {
	if !n.isFloat {
		return n.i.String()
	}
	return formatFloat(n.f)
}

func negate(n number) number {
	if n.isFloat {
		return floatNumber(-n.f)
	}
	return intNumber(new(big.Int).Neg(n.i))
}

func add(a, b number) (number, error) {
	if !a.isFloat && !b.isFloat {
		return intNumber(new(big.Int).Add(a.i, b.i)), nil
	}
	return floatOp(a, b, func(x, y float64) float64 { return x + y })
}

func sub(a, b number) (number, error) {
	if !a.isFloat && !b.isFloat {
		return intNumber(new(big.Int).Sub(a.i, b.i)), nil
	}
	return floatOp(a, b, func(x, y float64) float64 { return x - y })
}

func mul(a, b number) (number, error) {
	if !a.isFloat && !b.isFloat {
		return intNumber(new(big.Int).Mul(a.i, b.i)), nil
	}
	return floatOp(a, b, func(x, y float64) float64 { return x * y })
}

func div(a, b number) (number, error) {
	if b.isZero() {
		return number{}, ErrDivisionByZero
	}
	if !a.isFloat && !b.isFloat {
		f, _ := new(big.Rat).SetFrac(a.i, b.i).Float64()
		if math.IsInf(f, 0) {
			return number{}, fmt.Errorf("%w: integer division result too large", ErrInvalidExpression)
		}
		return floatNumber(f), nil
	}
	return floatOp(a, b, func(x, y float64) float64 { return x / y })
}

func floorDiv(a, b number) (number, error) {
	if b.isZero() {
		return number{}, ErrDivisionByZero
	}
	if !a.isFloat && !b.isFloat {
		q, m := new(big.Int).QuoRem(a.i, b.i, new(big.Int))
		if m.Sign() != 0 && m.Sign() != b.i.Sign() {
			q.Sub(q, big.NewInt(1))
		}
		return intNumber(q), nil
	}
	return floatOp(a, b, floorDivFloat)
}

// floorDivFloat follows the usual divmod rounding so the quotient is consistent with the remainder.
func floorDivFloat(x, y float64) float64 {
	mod := math.Mod(x, y)
	d := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		d -= 1
	}
	if d == 0 {
		return math.Copysign(0, x/y)
	}
	fd := math.Floor(d)
	if d-fd > 0.5 {
		fd += 1
	}
	return fd
}

func pow(base, exp number) (number, error) {
	if !base.isFloat && !exp.isFloat && exp.i.Sign() >= 0 {
		return intPow(base.i, exp.i)
	}

	x, err := base.float()
	if err != nil {
		return number{}, err
	}
	y, err := exp.float()
	if err != nil {
		return number{}, err
	}

	if x == 0 && y < 0 {
		return number{}, fmt.Errorf("%w: zero cannot be raised to a negative power", ErrDivisionByZero)
	}
	if x < 0 && y != math.Trunc(y) {
		return number{}, fmt.Errorf("%w: result is not a real number", ErrInvalidExpression)
	}
	r := math.Pow(x, y)
	if math.IsInf(r, 0) && !math.IsInf(x, 0) {
		return number{}, fmt.Errorf("%w: numerical result out of range", ErrInvalidExpression)
	}
	return floatNumber(r), nil
}

func intPow(base, exp *big.Int) (number, error) {
	abs := new(big.Int).Abs(base)
	if abs.Cmp(big.NewInt(1)) > 0 {
		if !exp.IsInt64() || exp.Int64() > maxIntBits/int64(abs.BitLen()-1) {
			return number{}, fmt.Errorf("%w: result too large", ErrInvalidExpression)
		}
	}
	return intNumber(new(big.Int).Exp(base, exp, nil)), nil
}

func floatOp(a, b number, op func(x, y float64) float64) (number, error) {
	x, err := a.float()
	if err != nil {
		return number{}, err
	}
	y, err := b.float()
	if err != nil {
		return number{}, err
	}
	return floatNumber(op(x, y)), nil
}

// formatFloat renders the shortest round-trip form, keeping a ".0" on whole
// numbers and switching to exponent notation outside [1e-4, 1e16).
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
