package action

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/viant/flutter-settings/sdk"
	"github.com/viant/flutter-settings/settings"
	"github.com/viant/fluxor/model/types"
)

// Name is the Fluxor service name.
const Name = "flutter/settings"

type ResolveInput struct {
	Dir string `json:"dir" description:"Android settings directory holding local.properties"`
}

type EvaluateInput struct {
	Dir    string `json:"dir" description:"Android settings directory holding local.properties"`
	Verify bool   `json:"verify,omitempty" description:"fail when the included build is missing from the SDK"`
}

type RenderOutput struct {
	Content string `json:"content"`
}

// Service implements types.Service on top of settings.Service.
type Service struct {
	settings  *settings.Service
	sigs      types.Signatures
	executors map[string]types.Executable
}

func (s *Service) Name() string              { return Name }
func (s *Service) Methods() types.Signatures { return s.sigs }
func (s *Service) Method(name string) (types.Executable, error) {
	if e, ok := s.executors[name]; ok {
		return e, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// New builds the action service.
func New(svc *settings.Service) *Service {
	s := &Service{settings: svc, executors: map[string]types.Executable{}}

	s.register("resolve", "Resolve the Flutter SDK path from local.properties or the environment",
		reflect.TypeOf(&ResolveInput{}), reflect.TypeOf(&sdk.Resolution{}),
		func(ctx context.Context, input interface{}) (interface{}, error) {
			in := &ResolveInput{}
			if err := decode(input, in); err != nil {
				return nil, err
			}
			return s.settings.Resolve(ctx, in.Dir)
		})

	s.register("evaluate", "Evaluate the Android settings: included build, repositories, plugin pins and modules",
		reflect.TypeOf(&EvaluateInput{}), reflect.TypeOf(&settings.Project{}),
		func(ctx context.Context, input interface{}) (interface{}, error) {
			in := &EvaluateInput{}
			if err := decode(input, in); err != nil {
				return nil, err
			}
			project, err := s.settings.Evaluate(ctx, in.Dir)
			if err != nil {
				return nil, err
			}
			if in.Verify {
				if err := s.settings.Verify(ctx, project); err != nil {
					return nil, err
				}
			}
			return project, nil
		})

	s.register("render", "Render settings.gradle.kts with the resolved SDK path",
		reflect.TypeOf(&ResolveInput{}), reflect.TypeOf(&RenderOutput{}),
		func(ctx context.Context, input interface{}) (interface{}, error) {
			in := &ResolveInput{}
			if err := decode(input, in); err != nil {
				return nil, err
			}
			project, err := s.settings.Evaluate(ctx, in.Dir)
			if err != nil {
				return nil, err
			}
			var buf bytes.Buffer
			if err := settings.Render(&buf, project); err != nil {
				return nil, err
			}
			return &RenderOutput{Content: buf.String()}, nil
		})
	return s
}

func (s *Service) register(name, description string, in, out reflect.Type, call func(context.Context, interface{}) (interface{}, error)) {
	s.sigs = append(s.sigs, types.Signature{
		Name:        name,
		Description: description,
		Input:       in,
		Output:      out,
	})
	s.executors[name] = func(ctx context.Context, input, output interface{}) error {
		result, err := call(ctx, input)
		if err != nil {
			return err
		}
		if output != nil {
			return assign(result, output)
		}
		return nil
	}
}

// decode copies an action input into dest. Typed inputs are taken as is,
// anything else goes through JSON.
func decode(input interface{}, dest interface{}) error {
	if input == nil {
		return nil
	}
	src := reflect.ValueOf(input)
	dst := reflect.ValueOf(dest)
	if src.Kind() == reflect.Ptr && src.IsNil() {
		return nil
	}
	if src.Type() == dst.Type() {
		dst.Elem().Set(src.Elem())
		return nil
	}
	data, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode %s input: %w", Name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s input: %w", Name, err)
	}
	return nil
}

func assign(result interface{}, output interface{}) error {
	src := reflect.ValueOf(result)
	dst := reflect.ValueOf(output)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return fmt.Errorf("output must be a non-nil pointer, got %T", output)
	}
	switch {
	case src.Type().AssignableTo(dst.Elem().Type()):
		dst.Elem().Set(src)
		return nil
	case src.Kind() == reflect.Ptr && src.Elem().Type().AssignableTo(dst.Elem().Type()):
		dst.Elem().Set(src.Elem())
		return nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, output)
}
