/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package enum_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/enum"
	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/config"
	"dirpx.dev/enum/examples/weekday"
	"dirpx.dev/enum/internal/enumtest/alpha"
	"dirpx.dev/enum/internal/enumtest/beta"
	"dirpx.dev/enum/registry"
)

// Sample is declared the regular way, in package variable initializers.
type Sample struct {
	enum.Constant
}

var Samples = enum.For[*Sample]()

var (
	UPPERCASE_TEST = Samples.NewConstant("UPPERCASE_TEST").MustCreate()
	LowercaseTest  = Samples.NewConstant("lowercase_test").MustCreate()
	CamelCaseTest  = Samples.NewConstant("camelCaseTest").MustCreate()
	MIxEdCaSeTeSt  = Samples.NewConstant("mIxEdCaSeTeSt").MustCreate()
)

// Step records how many of its siblings existed when it was built.
type Step struct {
	enum.Constant
	before int
}

func newStep() (*Step, error) {
	vs, err := enum.Values(reflect.TypeOf((*Step)(nil)))
	if err != nil {
		return nil, err
	}
	return &Step{before: len(vs)}, nil
}

var Steps = enum.For[*Step](enum.WithConstructors(newStep))

var (
	FIRST  = Steps.NewConstant("FIRST").MustCreate()
	SECOND = Steps.NewConstant("SECOND").MustCreate()
	THIRD  = Steps.NewConstant("THIRD").MustCreate()
)

// strict is an isolated registry with the default, strict configuration.
var strict = registry.New(config.DefaultConfig())

func mustIn[T enum.Enum](reg *registry.Registry, opts ...enum.Option) *enum.Type[T] {
	t, err := enum.In[T](reg, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// A constant of a type declared by another package.
var (
	foreignDays            = mustIn[*weekday.Weekday](strict)
	ForeignDay, foreignErr = foreignDays.NewConstant("ForeignDay").Create()
)

// Echo is built by a constructor that reads its own type from another
// goroutine while the constant is being created.
type Echo struct {
	enum.Constant
	seen int
}

func newEcho() (*Echo, error) {
	seen := make(chan int)
	go func() {
		vs, _ := strict.Values(reflect.TypeOf((*Echo)(nil)))
		seen <- len(vs)
	}()
	return &Echo{seen: <-seen}, nil
}

var Echoes = mustIn[*Echo](strict, enum.WithConstructors(newEcho))

var (
	ECHO_ONE = Echoes.NewConstant("ECHO_ONE").MustCreate()
	ECHO_TWO = Echoes.NewConstant("ECHO_TWO").MustCreate()
)

// Late is created through a package-scope closure.
type Late struct {
	enum.Constant
}

var (
	lates      = mustIn[*Late](strict)
	createLate = func(name string) (*Late, error) { return lates.NewConstant(name).Create() }
)

var EARLY, earlyErr = createLate("EARLY")

// A constant created by func init().
type Mutant struct {
	enum.Constant
}

var mutants = mustIn[*Mutant](strict)

var (
	mutant     *Mutant
	mutantErr  error
	mutantSeen apis.State
)

func init() {
	mutant, mutantErr = mutants.NewConstant("MUTANT").Create()
	mutantSeen = mutants.State()
}

// loose returns an isolated registry without declaration-context checks,
// so tests can declare constants inside functions.
func loose() *registry.Registry {
	return registry.New(config.Relaxed())
}

func TestValues_DeclarationOrderAndVerbatimNames(t *testing.T) {
	values, err := Samples.Values()
	require.NoError(t, err)

	want := []string{"UPPERCASE_TEST", "lowercase_test", "camelCaseTest", "mIxEdCaSeTeSt"}
	require.Len(t, values, len(want))
	for i, v := range values {
		assert.Equal(t, want[i], v.Name())
		assert.Equal(t, i, v.Ordinal())
	}
	assert.Same(t, UPPERCASE_TEST, values[0])
	assert.Same(t, LowercaseTest, values[1])
	assert.Same(t, CamelCaseTest, values[2])
	assert.Same(t, MIxEdCaSeTeSt, values[3])
}

func TestValues_OrdinalsAreStable(t *testing.T) {
	for i := 0; i < 3; i++ {
		values, err := Samples.Values()
		require.NoError(t, err)
		for j, v := range values {
			assert.Equal(t, j, v.Ordinal())
		}
	}
	assert.Equal(t, 2, CamelCaseTest.Ordinal())
}

func TestValues_IndependentTypes(t *testing.T) {
	assert.Equal(t, 0, alpha.TEST0.Ordinal())
	assert.Equal(t, 1, alpha.TEST1.Ordinal())
	assert.Equal(t, 0, beta.TEST0.Ordinal())
	assert.Equal(t, 1, beta.TEST1.Ordinal())

	a, err := alpha.Letters.Values()
	require.NoError(t, err)
	b, err := beta.Letters.Values()
	require.NoError(t, err)
	assert.Equal(t, []*alpha.Letter{alpha.TEST0, alpha.TEST1}, a)
	assert.Equal(t, []*beta.Letter{beta.TEST0, beta.TEST1}, b)
}

func TestGetAndTryGet(t *testing.T) {
	c, err := Samples.Get("camelCaseTest")
	require.NoError(t, err)
	assert.Same(t, CamelCaseTest, c)

	_, err = Samples.Get("CAMELCASETEST")
	var unknown *enum.UnknownConstantNameError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "CAMELCASETEST", unknown.Name)

	c, ok := Samples.TryGet("lowercase_test")
	assert.True(t, ok)
	assert.Same(t, LowercaseTest, c)

	c, ok = Samples.TryGet("missing")
	assert.False(t, ok)
	assert.Nil(t, c)

	c, ok = Samples.ByOrdinal(3)
	assert.True(t, ok)
	assert.Same(t, MIxEdCaSeTeSt, c)
}

func TestErasedQueries(t *testing.T) {
	typ := reflect.TypeOf((*Sample)(nil))

	values, err := enum.Values(typ)
	require.NoError(t, err)
	assert.Len(t, values, 4)

	c, err := enum.Get(typ, "UPPERCASE_TEST")
	require.NoError(t, err)
	assert.Same(t, UPPERCASE_TEST, c)

	_, ok := enum.TryGet(typ, "nope")
	assert.False(t, ok)
}

func TestSealedAfterInitialization(t *testing.T) {
	_, err := Samples.Values()
	require.NoError(t, err)
	assert.Equal(t, apis.Ready, Samples.State())

	a, err := Samples.Values()
	require.NoError(t, err)
	b, err := Samples.Values()
	require.NoError(t, err)
	assert.Same(t, &a[0], &b[0])

	_, err = Samples.NewConstant("LATE").Create()
	assert.ErrorIs(t, err, enum.ErrSealed)
	assert.NoError(t, Samples.Err())
	assert.Equal(t, 4, Samples.Len())
}

func TestPartialVisibilityDuringInitialization(t *testing.T) {
	assert.Equal(t, 0, FIRST.before)
	assert.Equal(t, 1, SECOND.before)
	assert.Equal(t, 2, THIRD.before)
}

func TestSameHandle(t *testing.T) {
	assert.Same(t, Samples, enum.For[*Sample]())
	assert.Equal(t, reflect.TypeOf((*Sample)(nil)), Samples.Reflect())
}

func TestTypeMismatch(t *testing.T) {
	assert.Nil(t, ForeignDay)
	var mismatch *enum.TypeMismatchError
	require.ErrorAs(t, foreignErr, &mismatch)
	assert.Equal(t, "dirpx.dev/enum/examples/weekday", mismatch.Expected)
	assert.Equal(t, "dirpx.dev/enum_test", mismatch.Actual)
	assert.ErrorIs(t, foreignErr, enum.ErrTypeMismatch)

	assert.Equal(t, apis.Failed, foreignDays.State())
	assert.ErrorIs(t, foreignDays.Err(), enum.ErrTypeMismatch)

	// The global weekday type is unaffected.
	assert.Equal(t, 7, weekday.Weekdays.Len())
}

func TestMutable(t *testing.T) {
	assert.Nil(t, mutant)
	var invalid *enum.InvalidModifiersError
	require.ErrorAs(t, mutantErr, &invalid)
	assert.Equal(t, enum.Mutable, invalid.Kind)
	assert.Equal(t, "MUTANT", invalid.Name)
	assert.Equal(t, apis.Failed, mutantSeen)
}

func TestStrictQueryFromConstructorSeesPrefix(t *testing.T) {
	assert.Equal(t, 0, ECHO_ONE.seen)
	assert.Equal(t, 1, ECHO_TWO.seen)

	values, err := Echoes.Values()
	require.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Equal(t, apis.Ready, Echoes.State())
}

func TestPackageClosureCalledLater(t *testing.T) {
	require.NoError(t, earlyErr)
	assert.Equal(t, "EARLY", EARLY.Name())

	_, err := createLate("LATE")
	var invalid *enum.InvalidModifiersError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, enum.InstanceMember, invalid.Kind)
	assert.Equal(t, apis.Failed, lates.State())
}

func TestRedeclarationKeepsConstructors(t *testing.T) {
	assert.Same(t, Steps, enum.For[*Step](enum.WithConstructors(newStep)))
	assert.Equal(t, 3, Steps.Len())

	type Twice struct {
		enum.Constant
		n int
	}
	newTwice := func(n int) *Twice { return &Twice{n: n} }
	reg := loose()
	first := mustIn[*Twice](reg, enum.WithConstructors(newTwice))
	second := mustIn[*Twice](reg, enum.WithConstructors(newTwice))
	assert.Same(t, first, second)

	one, err := second.NewConstant("ONE").Create(1)
	require.NoError(t, err)
	assert.Equal(t, 1, one.n)
	assert.Equal(t, apis.Initializing, first.State())
}

func TestInstanceMember(t *testing.T) {
	type Member struct {
		enum.Constant
	}
	members := mustIn[*Member](registry.New(config.DefaultConfig()))

	_, err := members.NewConstant("MEMBER").Create()
	var invalid *enum.InvalidModifiersError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, enum.InstanceMember, invalid.Kind)

	// The failure is sticky.
	_, err = members.Values()
	var failed *enum.TypeFailedError
	require.ErrorAs(t, err, &failed)
	assert.ErrorIs(t, err, enum.ErrInvalidModifiers)
	assert.Panics(t, func() { members.NewConstant("OTHER").MustCreate() })
}

func TestMissingDeclaration(t *testing.T) {
	type Nameless struct {
		enum.Constant
	}
	nameless := mustIn[*Nameless](loose())

	_, err := nameless.NewConstant("").Create()
	assert.ErrorIs(t, err, enum.ErrMissingDeclaration)
	assert.Equal(t, apis.Failed, nameless.State())
}

type Coin struct {
	enum.Constant
	cents int
	label string
}

func newCoin(cents int) *Coin                  { return &Coin{cents: cents} }
func newLabeledCoin(cents int, l string) *Coin { return &Coin{cents: cents, label: l} }

func TestCreate_DispatchesOnArguments(t *testing.T) {
	coins := mustIn[*Coin](loose(), enum.WithConstructors(newCoin, newLabeledCoin))

	penny := coins.NewConstant("PENNY").MustCreate(1)
	dime := coins.NewConstant("DIME").MustCreate(10, "dime")
	assert.Equal(t, 1, penny.cents)
	assert.Equal(t, "dime", dime.label)
	assert.Equal(t, 1, dime.Ordinal())

	_, err := coins.NewConstant("BAD").Create("one")
	var nomatch *enum.NoMatchingConstructorError
	require.ErrorAs(t, err, &nomatch)
	assert.Equal(t, []reflect.Type{reflect.TypeOf("")}, nomatch.Args)

	// No ordinal was consumed and the type stays unusable.
	assert.Equal(t, 2, coins.Len())
	assert.ErrorIs(t, coins.Err(), enum.ErrNoMatchingConstructor)
}

func TestCreate_ConstructorError(t *testing.T) {
	boom := errors.New("boom")
	failing := func(cents int) (*Coin, error) {
		if cents < 0 {
			return nil, boom
		}
		return &Coin{cents: cents}, nil
	}
	coins := mustIn[*Coin](loose(), enum.WithConstructors(failing))

	_, err := coins.NewConstant("NEGATIVE").Create(-1)
	assert.ErrorIs(t, err, boom)
	_, err = coins.Get("NEGATIVE")
	assert.ErrorIs(t, err, enum.ErrTypeFailed)
	assert.ErrorIs(t, err, boom)
}

func TestNew_StaticFactory(t *testing.T) {
	coins := mustIn[*Coin](loose())

	quarter, err := coins.NewConstant("QUARTER").New(func() *Coin { return &Coin{cents: 25} })
	require.NoError(t, err)
	assert.Equal(t, 25, quarter.cents)
	assert.Equal(t, "QUARTER", quarter.Name())

	_, err = coins.NewConstant("AGAIN").New(func() *Coin { return quarter })
	assert.ErrorIs(t, err, enum.ErrAlreadyRegistered)
	assert.Equal(t, "QUARTER", quarter.Name(), "a rejected registration leaves the instance alone")
}

func TestNew_NilResults(t *testing.T) {
	coins := mustIn[*Coin](loose())
	_, err := coins.NewConstant("NIL").New(func() *Coin { return nil })
	assert.ErrorIs(t, err, enum.ErrNilInstance)

	other := mustIn[*Coin](loose())
	_, err = other.NewConstant("NOFUNC").New(nil)
	assert.ErrorIs(t, err, enum.ErrInvalidConstructor)
}

func TestCreate_DefaultConstructor(t *testing.T) {
	coins := mustIn[*Coin](loose())
	c, err := coins.NewConstant("ZERO").Create()
	require.NoError(t, err)
	assert.Equal(t, 0, c.cents)
}

func TestCreate_DuplicateName(t *testing.T) {
	coins := mustIn[*Coin](loose())
	coins.NewConstant("NICKEL").MustCreate()

	_, err := coins.NewConstant("NICKEL").Create()
	var dup *enum.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.ErrorIs(t, err, enum.ErrDuplicateName)
}

func TestOptions(t *testing.T) {
	type Invalid struct {
		enum.Constant
	}
	_, err := enum.In[*Invalid](loose(), enum.WithConstructors(42))
	assert.ErrorIs(t, err, enum.ErrInvalidConstructor)

	_, err = enum.In[*Invalid](nil)
	assert.ErrorIs(t, err, enum.ErrNilRegistry)

	assert.Panics(t, func() { enum.For[*Invalid](enum.WithConstructors("nope")) })

	reg := loose()
	_, err = enum.In[*Invalid](reg, enum.WithTypeName("test.invalid"))
	require.NoError(t, err)
	_, err = enum.In[*Invalid](reg, enum.WithTypeName("test.other"))
	assert.ErrorIs(t, err, registry.ErrConflictingRegistration)
}

type Flavor struct {
	enum.Constant
}

func TestTypeNames(t *testing.T) {
	flavors := mustIn[*Flavor](loose(), enum.WithTypeName("kitchen.flavor"))
	assert.Equal(t, "kitchen.flavor", flavors.Name())

	assert.Equal(t, "enum_test.Sample", Samples.Name())
	assert.Equal(t, "enum_test.Sample", enum.TypeName(reflect.TypeOf([]*Sample{})))
	assert.Equal(t, "calendar.weekday", weekday.Weekdays.Name())

	typ, ok := enum.TypeByName("calendar.weekday")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(weekday.Weekday{}), typ)

	_, ok = enum.TypeByName("no.such.type")
	assert.False(t, ok)
}

type renamed struct{ prefix string }

func (r renamed) TypeNameOf(v any, cfg apis.Config) string {
	return r.TypeName(reflect.TypeOf(v), cfg)
}

func (r renamed) TypeName(t reflect.Type, _ apis.Config) string {
	return r.prefix + t.String()
}

func TestGlobalState(t *testing.T) {
	oldCfg := enum.Config()
	t.Cleanup(func() {
		enum.ResetResolver()
		enum.SetConfig(oldCfg)
	})

	enum.SetResolver(renamed{prefix: "x:"})
	assert.Equal(t, "x:enum_test.Sample", Samples.Name())

	// An explicit resolver survives reconfiguration.
	enum.SetConfig(config.NewConfig(config.WithMaxUnwrap(4)))
	assert.Equal(t, 4, enum.Config().MaxUnwrap)
	assert.Equal(t, 4, enum.Registry().Config().MaxUnwrap)
	assert.Equal(t, "x:enum_test.Sample", Samples.Name())

	enum.ResetResolver()
	assert.Equal(t, "enum_test.Sample", Samples.Name())

	enum.SetResolver(nil)
	enum.SetBuilder(nil)
	assert.NotNil(t, enum.Resolver())
	assert.NotNil(t, enum.Builder())
}

func TestConcurrentQueries(t *testing.T) {
	want, err := Samples.Values()
	require.NoError(t, err)

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for i := 0; i < 500; i++ {
				got, err := Samples.Values()
				if err != nil {
					return err
				}
				if &got[0] != &want[0] {
					return fmt.Errorf("worker %d: Values returned a different slice", w)
				}
				if _, ok := Samples.TryGet("camelCaseTest"); !ok {
					return fmt.Errorf("worker %d: camelCaseTest not found", w)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestConcurrentCreation(t *testing.T) {
	coins := mustIn[*Coin](loose(), enum.WithConstructors(newCoin))

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 25; i++ {
				if _, err := coins.NewConstant(fmt.Sprintf("C%d_%d", w, i)).Create(w*100 + i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	values, err := coins.Values()
	require.NoError(t, err)
	require.Len(t, values, 200)
	for i, c := range values {
		assert.Equal(t, i, c.Ordinal())
	}
}
