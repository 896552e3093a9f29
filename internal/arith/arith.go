// Package arith registers the numeric step kinds available to ropc pipelines.
package arith

import (
	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/registry"
	"github.com/ib-77/composable/pkg/rop/script"
	"github.com/ib-77/composable/pkg/rop/step"
)

type AddTo struct {
	Addend float64
}

func (a AddTo) Apply(in float64) rop.Result[float64] {
	return rop.Success(in + a.Addend)
}

type MultiplyBy struct {
	Factor float64
}

func (m MultiplyBy) Apply(in float64) rop.Result[float64] {
	return rop.Success(in * m.Factor)
}

type DivideBy struct {
	Divisor float64
}

func (d DivideBy) Apply(in float64) rop.Result[float64] {
	if d.Divisor == 0.0 {
		return rop.FailMsg[float64]("division by zero")
	}
	return rop.Success(in / d.Divisor)
}

// Register adds the add, multiply, divide and js kinds to r.
func Register(r *registry.Registry[float64]) error {
	kinds := map[string]registry.Factory[float64]{
		"add": func(params map[string]any) (step.Step[float64, float64], error) {
			v, err := registry.Float(params, "addend")
			return AddTo{Addend: v}, err
		},
		"multiply": func(params map[string]any) (step.Step[float64, float64], error) {
			v, err := registry.Float(params, "factor")
			return MultiplyBy{Factor: v}, err
		},
		"divide": func(params map[string]any) (step.Step[float64, float64], error) {
			v, err := registry.Float(params, "divisor")
			return DivideBy{Divisor: v}, err
		},
		"js": func(params map[string]any) (step.Step[float64, float64], error) {
			code, err := registry.String(params, "code")
			if err != nil {
				return nil, err
			}
			s, err := script.Named[float64, float64]("js", code)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	}
	for kind, factory := range kinds {
		if err := r.Register(kind, factory); err != nil {
			return err
		}
	}
	return nil
}
