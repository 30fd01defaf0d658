// Command mddsdump prints the block layout of a demonstration vector,
// color-coded by category, the way manager/executor/chunk_thread_processor.go
// uses github.com/fatih/color for status lines. It exists purely to exercise
// tbv.Vector's iterator surface from outside the library; it is not part of
// the core module.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dot5enko/mdds/category"
	"github.com/dot5enko/mdds/tbv"
)

func colorFor(cat category.Category) func(format string, a ...interface{}) string {
	switch cat {
	case category.Empty:
		return color.New(color.FgHiBlack).SprintfFunc()
	case category.Float64, category.Int8, category.Int16, category.Int32, category.Int64,
		category.Uint8, category.Uint16, category.Uint32, category.Uint64:
		return color.New(color.FgCyan).SprintfFunc()
	case category.Bool:
		return color.New(color.FgYellow).SprintfFunc()
	case category.String:
		return color.New(color.FgGreen).SprintfFunc()
	default:
		return color.New(color.FgMagenta).SprintfFunc()
	}
}

func dumpVector(v *tbv.Vector) {
	fmt.Printf("size=%d blocks=%d\n", v.Size(), v.BlockCount())
	row := 0
	for _, blk := range v.Begin() {
		sprint := colorFor(blk.Category)
		fmt.Println(sprint("  [%d..%d) %-8s size=%d", row, row+blk.Size, blk.Category, blk.Size))
		row += blk.Size
	}
}

func main() {
	v := tbv.New()
	for _, val := range []any{1.0, 2.0, 3.0, "a", "b", nil, true, false, 9.0} {
		if val == nil {
			v.PushBackEmpty(1)
			continue
		}
		if err := v.PushBack(val); err != nil {
			color.Red("push_back failed: %s", err)
			return
		}
	}

	dumpVector(v)
}
