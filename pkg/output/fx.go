package output

import (
	"os"

	"github.com/pseudomuto/tablectl/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("output", fx.Provide(func() *Output {
	return New(os.Stdout, consts.DefaultColorMode)
}))
