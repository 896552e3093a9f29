package script

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dop251/goja"
	"github.com/ib-77/composable/pkg/rop"
)

var (
	ErrNotFunction = errors.New("script: compiled source is not a function")
	// ErrNoResult is reported when the script returns undefined or null.
	ErrNoResult = errors.New("script: no result returned")
	// ErrResultType is reported when the returned value does not fit the step output type.
	ErrResultType = errors.New("script: result has the wrong type")
)

type Step[In, Out any] struct {
	name    string
	program *goja.Program
}

// New compiles source as the body of a JavaScript function of input.
func New[In, Out any](source string) (*Step[In, Out], error) {
	return Named[In, Out]("script", source)
}

// Named is New with a name used in error messages and stack traces.
func Named[In, Out any](name, source string) (*Step[In, Out], error) {
	wrapped := "(function(input) {\n" + source + "\n})"
	program, err := goja.Compile(name, wrapped, true)
	if err != nil {
		return nil, fmt.Errorf("compiling script step %s: %w", name, err)
	}
	return &Step[In, Out]{name: name, program: program}, nil
}

func (s *Step[In, Out]) Name() string {
	return s.name
}

// Apply runs the script in a fresh runtime; goja runtimes are not safe for
// concurrent use and scripts must not see each other's globals.
func (s *Step[In, Out]) Apply(in In) rop.Result[Out] {
	runtime := goja.New()

	fnValue, err := runtime.RunProgram(s.program)
	if err != nil {
		return rop.Fail[Out](fmt.Errorf("%s: %w", s.name, err))
	}
	fn, ok := goja.AssertFunction(fnValue)
	if !ok {
		return rop.Fail[Out](ErrNotFunction)
	}

	value, err := fn(goja.Undefined(), runtime.ToValue(in))
	if err != nil {
		var exception *goja.Exception
		if errors.As(err, &exception) {
			return rop.Fail[Out](fmt.Errorf("%s: %s", s.name, exception.Value().String()))
		}
		return rop.Fail[Out](fmt.Errorf("%s: %w", s.name, err))
	}

	if goja.IsUndefined(value) || goja.IsNull(value) {
		return rop.Fail[Out](fmt.Errorf("%s: %w", s.name, ErrNoResult))
	}

	var out Out
	target := reflect.TypeOf(&out).Elem()
	if got := value.ExportType(); !fits(got, target) {
		return rop.Fail[Out](fmt.Errorf("%s: %w: got %v, want %v", s.name, ErrResultType, got, target))
	}
	if err := runtime.ExportTo(value, &out); err != nil {
		return rop.Fail[Out](fmt.Errorf("%s: exporting result: %w", s.name, err))
	}
	return rop.Success(out)
}

// fits rejects the lenient conversions ExportTo would otherwise apply to
// scalar targets, such as a string becoming NaN for a float64.
func fits(got, want reflect.Type) bool {
	if got == nil {
		return false
	}
	switch {
	case isNumber(want.Kind()):
		return isNumber(got.Kind())
	case want.Kind() == reflect.String, want.Kind() == reflect.Bool:
		return got.Kind() == want.Kind()
	}
	return true
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
