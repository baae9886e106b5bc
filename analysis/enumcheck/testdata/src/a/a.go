package a

import "dirpx.dev/enum"

type Color struct {
	enum.Constant
}

var Colors = enum.For[*Color]()

var (
	RED      = Colors.NewConstant("RED").MustCreate()
	DarkBlue = Colors.NewConstant("DARK_BLUE").MustCreate()
	green    = Colors.NewConstant("green").MustCreate()  // want `not exported \(PRIVATE\)`
	Yellow   = Colors.NewConstant("ORANGE").MustCreate() // want `no declaration named "ORANGE"`
	Reused   = Colors.NewConstant("Reused").MustCreate() // want `\(MUTABLE\)`
	Pinned   = Colors.NewConstant("Pinned").MustCreate() // want `\(MUTABLE\)`
)

const violetName = "VIOLET"

var Violet = Colors.NewConstant(violetName).MustCreate()

var dynamic = "DYNAMIC"

var Dynamic = Colors.NewConstant(dynamic).MustCreate() // want `name must be a string constant`

var Late *Color

var _ = &Pinned

func init() {
	Late = Colors.NewConstant("Late").MustCreate() // want `\(MUTABLE\)`
	Reused = nil
}

type palette struct {
	Main *Color
}

func (p *palette) reset() {
	p.Main = Colors.NewConstant("Main").MustCreate() // want `\(INSTANCE_MEMBER\)`
}

func build() *Color {
	Local := Colors.NewConstant("Local").MustCreate() // want `\(INSTANCE_MEMBER\)`
	return Local
}

func discard() {
	Colors.NewConstant("Discarded").MustCreate() // want `no declaration named "Discarded"`
}
