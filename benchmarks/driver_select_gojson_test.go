//go:build gojson

package godto_test

import (
	godto "github.com/godto/godto"
	drv "github.com/godto/godto/source/gojson"
)

func init() {
	godto.SetJSONDriver(drv.Driver())
}
