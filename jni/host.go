package main

// #include <jni.h>
// #include <stdlib.h>
// static jsize getArrayLength(JNIEnv *env, jobjectArray arr) {
//     return (*env)->GetArrayLength(env, arr);
// }
// static jobject getObjectArrayElement(JNIEnv *env, jobjectArray arr, jsize i) {
//     return (*env)->GetObjectArrayElement(env, arr, i);
// }
// static void deleteLocalRef(JNIEnv *env, jobject ref) {
//     (*env)->DeleteLocalRef(env, ref);
// }
// static const char* getStringUTFChars(JNIEnv *env, jstring str) {
//     return (*env)->GetStringUTFChars(env, str, NULL);
// }
// static void releaseStringUTFChars(JNIEnv *env, jstring str, const char *chars) {
//     (*env)->ReleaseStringUTFChars(env, str, chars);
// }
// static jstring newStringUTF(JNIEnv *env, const char *bytes) {
//     return (*env)->NewStringUTF(env, bytes);
// }
// static jboolean exceptionCheck(JNIEnv *env) {
//     return (*env)->ExceptionCheck(env);
// }
// static jint throwNew(JNIEnv *env, const char *className, const char *msg) {
//     jclass cls = (*env)->FindClass(env, className);
//     if (cls == NULL) {
//         return -1;
//     }
//     jint r = (*env)->ThrowNew(env, cls, msg);
//     (*env)->DeleteLocalRef(env, cls);
//     return r;
// }
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/dropbox/godropbox/errors"
	"go.uber.org/zap"

	"github.com/fedejinich/nativelib/nativelib"
)

const (
	nullPointerException  = "java/lang/NullPointerException"
	illegalStateException = "java/lang/IllegalStateException"
)

// jniHost is the nativelib.Host backed by the JNIEnv of the calling thread.
// It must not outlive the native call it was created for.
type jniHost struct {
	env *C.JNIEnv
}

type jniChars struct {
	ptr *C.char
}

func (c jniChars) Text() string {
	return nativelib.DecodeModifiedUTF8([]byte(C.GoString(c.ptr)))
}

func toRef(p unsafe.Pointer) nativelib.Ref {
	return nativelib.Ref(uintptr(p))
}

func fromRef(r nativelib.Ref) unsafe.Pointer {
	return unsafe.Pointer(uintptr(r))
}

func (h jniHost) ArrayLength(arr nativelib.Ref) (int, error) {
	n := C.getArrayLength(h.env, C.jobjectArray(fromRef(arr)))
	if err := h.pending("GetArrayLength"); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (h jniHost) ArrayElement(arr nativelib.Ref, i int) (nativelib.Ref, error) {
	elem := C.getObjectArrayElement(h.env, C.jobjectArray(fromRef(arr)), C.jsize(i))
	if err := h.pending("GetObjectArrayElement"); err != nil {
		return nativelib.NullRef, err
	}
	return toRef(unsafe.Pointer(elem)), nil
}

func (h jniHost) DeleteLocalRef(ref nativelib.Ref) {
	C.deleteLocalRef(h.env, C.jobject(fromRef(ref)))
}

func (h jniHost) StringUTFChars(str nativelib.Ref) (nativelib.UTFChars, error) {
	chars := C.getStringUTFChars(h.env, C.jstring(fromRef(str)))
	if chars == nil {
		// OutOfMemoryError is pending
		return nil, errors.New("GetStringUTFChars returned NULL")
	}
	return jniChars{ptr: chars}, nil
}

func (h jniHost) ReleaseStringUTFChars(str nativelib.Ref, chars nativelib.UTFChars) {
	C.releaseStringUTFChars(h.env, C.jstring(fromRef(str)), chars.(jniChars).ptr)
}

func (h jniHost) NewStringUTF(s string) (nativelib.Ref, error) {
	b := append(nativelib.EncodeModifiedUTF8(s), 0)
	cBytes := (*C.char)(C.CBytes(b))
	defer C.free(unsafe.Pointer(cBytes))

	str := C.newStringUTF(h.env, cBytes)
	if str == nil {
		return nativelib.NullRef, errors.New("NewStringUTF returned NULL")
	}
	return toRef(unsafe.Pointer(str)), nil
}

func (h jniHost) pending(call string) error {
	if C.exceptionCheck(h.env) == C.JNI_TRUE {
		return errors.Newf("%s raised a Java exception", call)
	}
	return nil
}

func (h jniHost) throw(className, msg string) {
	cClass := C.CString(className)
	defer C.free(unsafe.Pointer(cClass))
	cMsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cMsg))

	if C.throwNew(h.env, cClass, cMsg) != 0 {
		nativelib.Logger().Error("couldn't throw Java exception",
			zap.String("class", className),
			zap.String("message", msg))
	}
}

// throwFor leaves an exception raised by the JVM itself in place and
// otherwise throws one matching err.
func (h jniHost) throwFor(method string, err error) {
	nativelib.Logger().Warn("native method failed",
		zap.String("method", method),
		zap.String("error", errors.GetMessage(err)))

	if C.exceptionCheck(h.env) == C.JNI_TRUE {
		return
	}
	className := illegalStateException
	if nativelib.IsNullReference(err) {
		className = nullPointerException
	}
	h.throw(className, method+": "+errors.GetMessage(err))
}

// stringCall runs fn on behalf of the native method and hands its result
// back as a new Java string. Errors and panics become pending Java
// exceptions and the method returns NULL.
func stringCall(env *C.JNIEnv, method string, fn func(h jniHost) (string, error)) (ret C.jstring) {
	h := jniHost{env: env}
	defer func() {
		if r := recover(); r != nil {
			nativelib.Logger().Error("panic in native method",
				zap.String("method", method),
				zap.Any("panic", r))
			h.throw(illegalStateException, fmt.Sprintf("%s: %v", method, r))
			ret = nil
		}
	}()

	nativelib.Logger().Debug("native call", zap.String("method", method))

	s, err := fn(h)
	if err != nil {
		h.throwFor(method, err)
		return nil
	}

	ref, err := h.NewStringUTF(s)
	if err != nil {
		h.throwFor(method, err)
		return nil
	}
	return C.jstring(fromRef(ref))
}
