package main

// #include <jni.h>
import "C"
import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/fedejinich/nativelib/nativelib"
)

func main() {} // required by -buildmode=c-shared

//export JNI_OnLoad
func JNI_OnLoad(vm *C.JavaVM, reserved unsafe.Pointer) C.jint {
	cfg, cfgErr := nativelib.LoadConfig()
	if logger, err := cfg.NewLogger(); err == nil {
		nativelib.SetLogger(logger)
	}
	if cfgErr != nil {
		nativelib.Logger().Warn("invalid config, using defaults", zap.Error(cfgErr))
	}

	nativelib.Logger().Info("native library loaded",
		zap.String("class", nativelib.HostClass),
		zap.String("abi", nativelib.ABIFingerprint()))

	return C.JNI_VERSION_1_6
}

//export Java_com_combo_plugin_sample_example_jni_NativeLib_stringFromJNI
func Java_com_combo_plugin_sample_example_jni_NativeLib_stringFromJNI(env *C.JNIEnv, obj C.jobject) C.jstring {
	return stringCall(env, "stringFromJNI", func(jniHost) (string, error) {
		return nativelib.GreetingText(), nil
	})
}

//export Java_com_combo_plugin_sample_example_jni_NativeLib_addNumbers
func Java_com_combo_plugin_sample_example_jni_NativeLib_addNumbers(env *C.JNIEnv, obj C.jobject, a C.jint, b C.jint) C.jint {
	return C.jint(nativelib.AddIntegers(int32(a), int32(b)))
}

//export Java_com_combo_plugin_sample_example_jni_NativeLib_calculateSquareRoot
func Java_com_combo_plugin_sample_example_jni_NativeLib_calculateSquareRoot(env *C.JNIEnv, obj C.jobject, number C.jdouble) C.jdouble {
	return C.jdouble(nativelib.SquareRoot(float64(number)))
}

//export Java_com_combo_plugin_sample_example_jni_NativeLib_processStringArray
func Java_com_combo_plugin_sample_example_jni_NativeLib_processStringArray(env *C.JNIEnv, obj C.jobject, stringArray C.jobjectArray) C.jstring {
	return stringCall(env, "processStringArray", func(h jniHost) (string, error) {
		return nativelib.JoinStrings(h, toRef(unsafe.Pointer(stringArray)))
	})
}

//export Java_com_combo_plugin_sample_example_jni_NativeLib_getSystemInfo
func Java_com_combo_plugin_sample_example_jni_NativeLib_getSystemInfo(env *C.JNIEnv, obj C.jobject) C.jstring {
	return stringCall(env, "getSystemInfo", func(jniHost) (string, error) {
		return nativelib.SystemInfo(), nil
	})
}
