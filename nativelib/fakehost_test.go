package nativelib

import (
	"fmt"
	"testing"

	"github.com/dropbox/godropbox/errors"
	"github.com/stretchr/testify/assert"
)

// fakeHost is a resource-tracking stand-in for a JNIEnv. Arrays are
// registered up front, every element fetch hands out a fresh local
// reference and every UTF borrow a fresh buffer, so leaks and double
// releases show up in the counters.
type fakeHost struct {
	next   Ref
	arrays map[Ref][]*string
	locals map[Ref]*string

	deleted  map[Ref]int
	borrowed map[int]Ref
	released map[int]int
	nextBuf  int

	created []string
	misuse  []string

	failLength   bool
	failElement  int
	failChars    int
	panicOnChars int
}

type fakeChars struct {
	id   int
	text string
}

func (c fakeChars) Text() string { return c.text }

func newFakeHost() *fakeHost {
	return &fakeHost{
		next:         100,
		arrays:       map[Ref][]*string{},
		locals:       map[Ref]*string{},
		deleted:      map[Ref]int{},
		borrowed:     map[int]Ref{},
		released:     map[int]int{},
		failElement:  -1,
		failChars:    -1,
		panicOnChars: -1,
	}
}

func (h *fakeHost) newArray(items ...string) Ref {
	elems := make([]*string, len(items))
	for i := range items {
		elems[i] = &items[i]
	}
	return h.newArrayWithNulls(elems...)
}

func (h *fakeHost) newArrayWithNulls(elems ...*string) Ref {
	h.next++
	h.arrays[h.next] = elems
	return h.next
}

func (h *fakeHost) ArrayLength(arr Ref) (int, error) {
	if h.failLength {
		return 0, errors.New("length unavailable")
	}
	elems, ok := h.arrays[arr]
	if !ok {
		h.misuse = append(h.misuse, fmt.Sprintf("length of unknown array %d", arr))
		return 0, errors.New("unknown array")
	}
	return len(elems), nil
}

func (h *fakeHost) ArrayElement(arr Ref, i int) (Ref, error) {
	if i == h.failElement {
		return NullRef, errors.Newf("index %d out of bounds", i)
	}
	elems := h.arrays[arr]
	if elems[i] == nil {
		return NullRef, nil
	}
	h.next++
	h.locals[h.next] = elems[i]
	return h.next, nil
}

func (h *fakeHost) DeleteLocalRef(ref Ref) {
	if _, ok := h.locals[ref]; !ok {
		h.misuse = append(h.misuse, fmt.Sprintf("delete of unknown ref %d", ref))
		return
	}
	h.deleted[ref]++
}

func (h *fakeHost) StringUTFChars(str Ref) (UTFChars, error) {
	s, ok := h.locals[str]
	if !ok || h.deleted[str] > 0 {
		h.misuse = append(h.misuse, fmt.Sprintf("chars of dead ref %d", str))
		return nil, errors.New("dead ref")
	}
	h.nextBuf++
	if h.nextBuf-1 == h.failChars {
		return nil, errors.New("out of memory")
	}
	if h.nextBuf-1 == h.panicOnChars {
		panic("host exploded")
	}
	h.borrowed[h.nextBuf] = str
	return fakeChars{id: h.nextBuf, text: *s}, nil
}

func (h *fakeHost) ReleaseStringUTFChars(str Ref, chars UTFChars) {
	c := chars.(fakeChars)
	owner, ok := h.borrowed[c.id]
	if !ok || owner != str {
		h.misuse = append(h.misuse, fmt.Sprintf("release of foreign buffer %d", c.id))
		return
	}
	if h.deleted[str] > 0 {
		h.misuse = append(h.misuse, fmt.Sprintf("release after delete of ref %d", str))
	}
	h.released[c.id]++
}

func (h *fakeHost) NewStringUTF(s string) (Ref, error) {
	h.created = append(h.created, s)
	h.next++
	return h.next, nil
}

// assertBalanced checks every local reference was deleted exactly once and
// every borrowed buffer released exactly once.
func (h *fakeHost) assertBalanced(t *testing.T) {
	t.Helper()
	assert.Empty(t, h.misuse)
	for ref := range h.locals {
		assert.Equal(t, 1, h.deleted[ref], "local ref %d", ref)
	}
	for id := range h.borrowed {
		assert.Equal(t, 1, h.released[id], "buffer %d", id)
	}
}
