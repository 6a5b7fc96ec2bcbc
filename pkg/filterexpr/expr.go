package filterexpr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/cel-go/cel"
)

// ValueKind describes the kind of value a variable holds.
type ValueKind string

const (
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
	KindBool   ValueKind = "bool"
)

// Schema declares the variables an expression may reference.
type Schema map[string]ValueKind

// Predicate is a compiled boolean CEL expression.
type Predicate struct {
	source  string
	schema  Schema
	program cel.Program
}

// Compile parses and type-checks expr against the schema. The expression must evaluate to a bool.
func Compile(expr string, schema Schema) (*Predicate, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("empty expression")
	}
	if len(schema) == 0 {
		return nil, errors.New("filter schema has no fields defined")
	}

	env, err := buildEnv(schema)
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter must evaluate to bool, got %s", ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to build program: %w", err)
	}
	return &Predicate{source: expr, schema: schema, program: program}, nil
}

// Eval runs the predicate. Variables missing from vars take their zero value.
func (p *Predicate) Eval(vars map[string]any) (bool, error) {
	activation := make(map[string]any, len(p.schema))
	for name, kind := range p.schema {
		if v, ok := vars[name]; ok {
			activation[name] = v
			continue
		}
		activation[name] = zeroValue(kind)
	}

	out, _, err := p.program.Eval(activation)
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", p.source, err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q produced %T, want bool", p.source, out.Value())
	}
	return matched, nil
}

// String returns the source expression.
func (p *Predicate) String() string {
	return p.source
}

func buildEnv(schema Schema) (*cel.Env, error) {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := make([]cel.EnvOption, 0, len(schema)+1)
	for _, name := range names {
		celType, err := celTypeForKind(schema[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		opts = append(opts, cel.Variable(name, celType))
	}
	opts = append(opts, cel.CrossTypeNumericComparisons(true))
	return cel.NewEnv(opts...)
}

func celTypeForKind(kind ValueKind) (*cel.Type, error) {
	switch kind {
	case KindString:
		return cel.StringType, nil
	case KindNumber:
		return cel.DoubleType, nil
	case KindBool:
		return cel.BoolType, nil
	default:
		return nil, fmt.Errorf("unsupported field kind %s", kind)
	}
}

func zeroValue(kind ValueKind) any {
	switch kind {
	case KindNumber:
		return float64(0)
	case KindBool:
		return false
	default:
		return ""
	}
}
