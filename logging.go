package hamt

import "github.com/sirgallo/logger"

// log is the package-level logger, grounded on the teacher's own
// `cLog = logger.NewCustomLog("MMCMap")` convention (see MMCMap.go). The
// core is a pure in-memory data structure with no IO to fail, so logging
// here is narration, not error propagation: callers always get their
// answer back through a return value or an error, never through the log.
var log = logger.NewCustomLog("hamt")
