package b

import (
	"a"

	"dirpx.dev/enum"
)

type Shape struct {
	enum.Constant
}

var Shapes = enum.For[*Shape]()

var CIRCLE = Shapes.NewConstant("CIRCLE").MustCreate()

var Stolen = a.Colors.NewConstant("Stolen").MustCreate() // want `constants of \*a\.Color must be declared in package "a", not "b"`
