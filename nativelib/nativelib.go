// Package nativelib implements the functions the JVM host calls through
// the NativeLib class. It has no cgo dependency: the host runtime is
// reached through the Host interface so the conversions and the
// borrow/release discipline can be exercised without a JVM.
package nativelib

import (
	"math"
	"strings"

	"github.com/dropbox/godropbox/errors"
	"go.uber.org/zap"
)

const (
	Greeting  = "Hello from C++"
	JoinLabel = "Processed strings: "
	JoinSep   = ", "
)

func GreetingText() string {
	return Greeting
}

// AddIntegers wraps on overflow, like the host's int arithmetic.
func AddIntegers(a, b int32) int32 {
	return a + b
}

// SquareRoot returns NaN for negative input.
func SquareRoot(x float64) float64 {
	return math.Sqrt(x)
}

// JoinTexts prefixes the joined texts with JoinLabel.
func JoinTexts(texts []string) string {
	return JoinLabel + strings.Join(texts, JoinSep)
}

// JoinStrings converts every element of the host string array items and
// joins them with JoinTexts. Each element is borrowed, converted and
// released before the next one is touched, including when conversion fails.
func JoinStrings(host Host, items Ref) (string, error) {
	if items == NullRef {
		return "", errors.Wrap(ErrNullReference, "string array: ")
	}

	n, err := host.ArrayLength(items)
	if err != nil {
		return "", errors.Wrapf(ErrHostFailure, "array length: %s", errors.GetMessage(err))
	}

	texts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		text, err := elementText(host, items, i)
		if err != nil {
			Logger().Debug("processStringArray rejected element",
				zap.Int("index", i),
				zap.Int("length", n),
				zap.Error(err))
			return "", err
		}
		texts = append(texts, text)
	}

	return JoinTexts(texts), nil
}

func elementText(host Host, items Ref, i int) (string, error) {
	elem, err := host.ArrayElement(items, i)
	if err != nil {
		return "", errors.Wrapf(ErrHostFailure, "element %d: %s", i, errors.GetMessage(err))
	}
	if elem == NullRef {
		return "", errors.Wrapf(ErrNullElement, "element %d: ", i)
	}
	defer host.DeleteLocalRef(elem)

	chars, err := host.StringUTFChars(elem)
	if err != nil {
		return "", errors.Wrapf(ErrHostFailure, "element %d chars: %s", i, errors.GetMessage(err))
	}
	defer host.ReleaseStringUTFChars(elem, chars)

	return chars.Text(), nil
}
