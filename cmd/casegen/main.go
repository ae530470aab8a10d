// Command casegen writes the native boundary cases replayed by the JVM
// test suite.
package main

import (
	"flag"

	"go.uber.org/zap"

	"github.com/fedejinich/nativelib/nativelib"
)

func main() {
	out := flag.String("out", "cases.json", "output file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := nativelib.WriteCases(*out); err != nil {
		logger.Fatal("couldn't write cases", zap.String("out", *out), zap.Error(err))
	}
	logger.Info("wrote cases", zap.String("out", *out), zap.Int("count", len(nativelib.Cases())))
}
