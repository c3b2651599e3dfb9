//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

// Curves registered from JS.
// Key: handle (string)
var registry = make(map[string]*curves.Curve)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECC WASM Initialized")

	js.Global().Set("GoECC", map[string]interface{}{
		"NewCurve":       js.FuncOf(NewCurve),
		"PointAt":        js.FuncOf(PointAt),
		"Add":            js.FuncOf(Add),
		"ScalarMultiply": js.FuncOf(ScalarMultiply),
		"Order":          js.FuncOf(Order),
		"Compress":       js.FuncOf(Compress),
		"Decompress":     js.FuncOf(Decompress),
		"EncodeBase58":   js.FuncOf(EncodeBase58),
		"DecodeBase58":   js.FuncOf(DecodeBase58),
	})

	<-c
}

// jsonPoint is the JS view of a point. A null point is the identity.
type jsonPoint struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// NewCurve registers a curve.
// Arguments:
// 0: JSON string {"a": "...", "b": "...", "p": "..."} with decimal values
// Returns:
// Curve handle (string) or an "error: ..." string
func NewCurve(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	var input struct {
		A string `json:"a"`
		B string `json:"b"`
		P string `json:"p"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	a, err := parseInt(input.A)
	if err != nil {
		return errString(err)
	}
	b, err := parseInt(input.B)
	if err != nil {
		return errString(err)
	}
	p, err := parseInt(input.P)
	if err != nil {
		return errString(err)
	}

	curve, err := curves.New(a, b, p)
	if err != nil {
		return errString(err)
	}

	handle := fmt.Sprintf("%s:%s:%s", a, b, p)
	registry[handle] = curve
	return handle
}

// PointAt returns both points with the given x-coordinate.
// Arguments:
// 0: Curve handle
// 1: x (decimal string)
// Returns:
// JSON array of two points
func PointAt(this js.Value, args []js.Value) interface{} {
	curve, err := curveArg(args, 2)
	if err != nil {
		return errString(err)
	}
	x, err := parseInt(args[1].String())
	if err != nil {
		return errString(err)
	}

	p1, p2, err := curve.PointAt(x)
	if err != nil {
		return errString(err)
	}
	return encode([]*jsonPoint{toJSON(p1), toJSON(p2)})
}

// Add returns the sum of two points.
// Arguments:
// 0: Curve handle
// 1: JSON point
// 2: JSON point
func Add(this js.Value, args []js.Value) interface{} {
	curve, err := curveArg(args, 3)
	if err != nil {
		return errString(err)
	}
	p1, err := fromJSON(args[1].String())
	if err != nil {
		return errString(err)
	}
	p2, err := fromJSON(args[2].String())
	if err != nil {
		return errString(err)
	}

	sum, err := curve.Add(p1, p2)
	if err != nil {
		return errString(err)
	}
	return encode(toJSON(sum))
}

// ScalarMultiply returns n times a point.
// Arguments:
// 0: Curve handle
// 1: JSON point
// 2: n (decimal string)
func ScalarMultiply(this js.Value, args []js.Value) interface{} {
	curve, err := curveArg(args, 3)
	if err != nil {
		return errString(err)
	}
	pt, err := fromJSON(args[1].String())
	if err != nil {
		return errString(err)
	}
	n, err := parseInt(args[2].String())
	if err != nil {
		return errString(err)
	}

	res, err := curve.ScalarMultiply(pt, n)
	if err != nil {
		return errString(err)
	}
	return encode(toJSON(res))
}

// Order returns the order of a point as a decimal string.
// Arguments:
// 0: Curve handle
// 1: JSON point
func Order(this js.Value, args []js.Value) interface{} {
	curve, err := curveArg(args, 2)
	if err != nil {
		return errString(err)
	}
	pt, err := fromJSON(args[1].String())
	if err != nil {
		return errString(err)
	}

	n, err := curve.Order(pt)
	if err != nil {
		return errString(err)
	}
	return n.String()
}

// Compress returns the compressed form of a point.
// Arguments:
// 0: Curve handle
// 1: JSON point
func Compress(this js.Value, args []js.Value) interface{} {
	curve, err := curveArg(args, 2)
	if err != nil {
		return errString(err)
	}
	pt, err := fromJSON(args[1].String())
	if err != nil {
		return errString(err)
	}
	return encode(toJSON(curve.Compress(pt)))
}

// Decompress recovers a point from its compressed form.
// Arguments:
// 0: Curve handle
// 1: JSON point holding (x, parity)
func Decompress(this js.Value, args []js.Value) interface{} {
	curve, err := curveArg(args, 2)
	if err != nil {
		return errString(err)
	}
	pt, err := fromJSON(args[1].String())
	if err != nil {
		return errString(err)
	}

	res, err := curve.Decompress(pt)
	if err != nil {
		return errString(err)
	}
	return encode(toJSON(res))
}

// EncodeBase58 returns the multibase text of a point.
// Arguments:
// 0: Curve handle
// 1: JSON point
func EncodeBase58(this js.Value, args []js.Value) interface{} {
	curve, err := curveArg(args, 2)
	if err != nil {
		return errString(err)
	}
	pt, err := fromJSON(args[1].String())
	if err != nil {
		return errString(err)
	}
	return curve.EncodeBase58(pt)
}

// DecodeBase58 parses multibase text into a JSON point.
// Arguments:
// 0: Curve handle
// 1: Multibase string
func DecodeBase58(this js.Value, args []js.Value) interface{} {
	curve, err := curveArg(args, 2)
	if err != nil {
		return errString(err)
	}

	pt, err := curve.DecodeBase58(args[1].String())
	if err != nil {
		return errString(err)
	}
	return encode(toJSON(pt))
}

func curveArg(args []js.Value, want int) (*curves.Curve, error) {
	if len(args) != want {
		return nil, fmt.Errorf("expected %d arguments", want)
	}
	curve, ok := registry[args[0].String()]
	if !ok {
		return nil, fmt.Errorf("curve not found")
	}
	return curve, nil
}

func parseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

func toJSON(pt curves.Point) *jsonPoint {
	x, y, ok := pt.Coords()
	if !ok {
		return nil
	}
	return &jsonPoint{X: x.String(), Y: y.String()}
}

func fromJSON(s string) (curves.Point, error) {
	var jp *jsonPoint
	if err := json.Unmarshal([]byte(s), &jp); err != nil {
		return curves.Point{}, fmt.Errorf("invalid point json: %v", err)
	}
	if jp == nil {
		return curves.Identity(), nil
	}
	x, err := parseInt(jp.X)
	if err != nil {
		return curves.Point{}, err
	}
	y, err := parseInt(jp.Y)
	if err != nil {
		return curves.Point{}, err
	}
	return curves.NewPoint(x, y), nil
}

func encode(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return errString(err)
	}
	return string(b)
}

func errString(err error) string {
	return fmt.Sprintf("error: %v", err)
}
