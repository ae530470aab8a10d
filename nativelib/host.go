package nativelib

// Ref is an opaque reference to an object owned by the host runtime
// (a jobject, jstring or jobjectArray on the JVM).
type Ref uintptr

// NullRef is the host's null reference.
const NullRef Ref = 0

// UTFChars is a modified-UTF-8 buffer borrowed from a host string. It is
// only valid until it is handed back through Host.ReleaseStringUTFChars.
type UTFChars interface {
	Text() string
}

// Host is the slice of the host runtime's environment the boundary
// functions need. Every reference returned by ArrayElement must be passed
// to DeleteLocalRef, and every UTFChars returned by StringUTFChars must be
// passed to ReleaseStringUTFChars, exactly once.
type Host interface {
	ArrayLength(arr Ref) (int, error)
	ArrayElement(arr Ref, i int) (Ref, error)
	DeleteLocalRef(ref Ref)

	StringUTFChars(str Ref) (UTFChars, error)
	ReleaseStringUTFChars(str Ref, chars UTFChars)

	NewStringUTF(s string) (Ref, error)
}
