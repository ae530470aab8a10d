package nativelib

import (
	"encoding/json"
	"math"
	"os"
	"strconv"

	"github.com/dropbox/godropbox/errors"
)

// Case is one call of a native method with its expected result, in a form
// the JVM-side test suite can replay. Numbers are written as
// strings so NaN and infinities survive JSON.
type Case struct {
	TestName string   `json:"testName"`
	Method   string   `json:"method"`
	Args     []string `json:"args"`
	Expected string   `json:"expected"`
}

// Cases returns the canonical boundary cases with expected values computed
// by this library.
func Cases() []Case {
	var cases []Case

	cases = append(cases, Case{
		TestName: "greeting",
		Method:   "stringFromJNI",
		Args:     []string{},
		Expected: GreetingText(),
	})

	for _, c := range []struct {
		name string
		a, b int32
	}{
		{"add_positive", 2, 3},
		{"add_to_zero", -1, 1},
		{"add_wraps", math.MaxInt32, 1},
	} {
		cases = append(cases, Case{
			TestName: c.name,
			Method:   "addNumbers",
			Args:     []string{formatInt(c.a), formatInt(c.b)},
			Expected: formatInt(AddIntegers(c.a, c.b)),
		})
	}

	for _, c := range []struct {
		name string
		x    float64
	}{
		{"sqrt_four", 4},
		{"sqrt_sixteen", 16},
		{"sqrt_negative", -1},
		{"sqrt_inf", math.Inf(1)},
	} {
		cases = append(cases, Case{
			TestName: c.name,
			Method:   "calculateSquareRoot",
			Args:     []string{formatDouble(c.x)},
			Expected: formatDouble(SquareRoot(c.x)),
		})
	}

	for _, c := range []struct {
		name  string
		items []string
	}{
		{"join_empty", []string{}},
		{"join_three", []string{"a", "b", "c"}},
		{"join_demo", []string{"Hello", "Native", "World", "JNI"}},
		{"join_unicode", []string{"你好", "ünïcode"}},
	} {
		cases = append(cases, Case{
			TestName: c.name,
			Method:   "processStringArray",
			Args:     c.items,
			Expected: JoinTexts(c.items),
		})
	}

	return cases
}

// WriteCases writes Cases to path as indented JSON.
func WriteCases(path string) error {
	data, err := json.MarshalIndent(Cases(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling cases: ")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s: ", path)
	}
	return nil
}

func formatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// formatDouble spells NaN and the infinities the way Double.parseDouble reads them.
func formatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
