package nativelib

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/sha3"
)

// HostClass is the fully qualified Java class declaring the native methods.
const HostClass = "com.combo.plugin.sample.example.jni.NativeLib"

// Method is one native method of HostClass.
type Method struct {
	Name       string
	Descriptor string
}

var abi = []Method{
	{Name: "stringFromJNI", Descriptor: "()Ljava/lang/String;"},
	{Name: "addNumbers", Descriptor: "(II)I"},
	{Name: "calculateSquareRoot", Descriptor: "(D)D"},
	{Name: "processStringArray", Descriptor: "([Ljava/lang/String;)Ljava/lang/String;"},
	{Name: "getSystemInfo", Descriptor: "()Ljava/lang/String;"},
}

// ABI returns the native methods in declaration order.
func ABI() []Method {
	return append([]Method(nil), abi...)
}

// Symbol is the exported C symbol the JVM resolves for m.
func (m Method) Symbol() string {
	return SymbolName(HostClass, m.Name)
}

// SymbolName returns the short JNI symbol for a native method.
func SymbolName(class, method string) string {
	return "Java_" + mangle(class) + "_" + mangle(method)
}

func mangle(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '.' || r == '/':
			b.WriteByte('_')
		case r == '_':
			b.WriteString("_1")
		case r == ';':
			b.WriteString("_2")
		case r == '[':
			b.WriteString("_3")
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			for _, u := range utf16.Encode([]rune{r}) {
				writeUnicodeEscape(&b, u)
			}
		}
	}
	return b.String()
}

// writeUnicodeEscape writes _0xxxx with xxxx the lowercase hex UTF-16 unit.
func writeUnicodeEscape(b *strings.Builder, u uint16) {
	const hexdigits = "0123456789abcdef"
	b.WriteString("_0")
	for shift := 12; shift >= 0; shift -= 4 {
		b.WriteByte(hexdigits[(u>>uint(shift))&0xf])
	}
}

// ABIFingerprint is a short SHA3-256 digest over the class name and every
// method's name and descriptor. A host can compare it against its own
// declaration to detect a stale library.
func ABIFingerprint() string {
	h := sha3.New256()
	h.Write([]byte(HostClass))
	for _, m := range abi {
		h.Write([]byte{0})
		h.Write([]byte(m.Name))
		h.Write([]byte{0})
		h.Write([]byte(m.Descriptor))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
