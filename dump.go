package bignum

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "\t",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type dumpView struct {
	Sign  int
	Limbs []uint64
	Text  string
}

// Dump returns a multi-line description of x's sign and limbs for debugging.
func (x Int) Dump() string {
	return dumpConfig.Sdump(dumpView{
		Sign:  x.Sign(),
		Limbs: []uint64(x.abs),
		Text:  x.String(),
	})
}

// Fdump writes the dump of x to w, preceded by msg if it is not empty.
func Fdump(w io.Writer, msg string, x Int) error {
	if msg != "" {
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, x.Dump())
	return err
}
