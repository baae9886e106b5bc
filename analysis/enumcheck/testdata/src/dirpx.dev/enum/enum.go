// Package enum is a minimal stand-in for dirpx.dev/enum used by the
// analyzer tests.
package enum

type Constant struct {
	name    string
	ordinal int
}

func (c *Constant) Name() string    { return c.name }
func (c *Constant) Ordinal() int    { return c.ordinal }
func (c *Constant) base() *Constant { return c }

type Enum interface {
	Name() string
	Ordinal() int
	base() *Constant
}

type Type[T Enum] struct{}

func For[T Enum]() *Type[T] { return &Type[T]{} }

func (t *Type[T]) NewConstant(name string) *Creator[T] { return &Creator[T]{} }

type Creator[T Enum] struct{}

func (c *Creator[T]) MustCreate(args ...any) T {
	var zero T
	return zero
}
