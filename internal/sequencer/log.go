package sequencer

import "github.com/sirupsen/logrus"

// log is the package-level entry point, mirroring the teacher's
// Context().Log convention (snow/engine/snowman/transitive.go calls
// t.Context().Log.Info(...) at every phase transition) but backed by
// logrus the way the rest of the pack's validator/proposer code does.
var log = logrus.WithField("prefix", "sequencer")

// verbo is the teacher's most-chatty log level (Context().Log.Verbo);
// logrus has no direct equivalent so it's mapped to Trace.
func verbo(format string, args ...interface{}) {
	log.Tracef(format, args...)
}
