// Package tbv is the public façade of the typed block vector (spec.md,
// full document): a random-access sequence addressed by a contiguous
// integer row index whose storage is compacted into runs of contiguous
// same-typed values (blockseq.Sequence), with one of a finite set of value
// categories (category.Category) per run.
package tbv

import (
	"log"
	"os"
)

// Logger is the package-level logger Vector.SetRange reports the block
// count before and after each range write through,
// mirroring the teacher's un-abstracted use of the standard library log
// package (manager/slab_manager.go logs load timings with log.Printf
// directly rather than through a logging interface). Callers that want
// quieter output can redirect it, e.g. tbv.Logger.SetOutput(io.Discard).
var Logger = log.New(os.Stderr, "mdds: ", log.LstdFlags)
