package transformer_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	crdberrors "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/transformer"
)

type fakeAdapter struct {
	name   string
	prefix string
	err    error
}

func (f fakeAdapter) Name() string { return f.name }

func (f fakeAdapter) TypeMapping() adapter.TypeMapping {
	return adapter.TypeMapping{model.FieldTypeString: "text"}
}

func (f fakeAdapter) Transform(def model.Definition) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("%s:%s:%s", f.prefix, def.Name, strings.Join(def.Fields.Names(), ",")), nil
}

func userModel() model.Definition {
	return model.New("User").Number("id").String("name").Build()
}

func TestRegistry_TransformDelegates(t *testing.T) {
	reg := transformer.New()
	reg.Register(fakeAdapter{name: "fake", prefix: "A"})

	out, err := reg.Transform(userModel(), "fake")
	require.NoError(t, err)
	assert.Equal(t, "A:User:id,name", out)
}

func TestRegistry_TransformIsDeterministic(t *testing.T) {
	reg := transformer.New(transformer.WithAdapters(fakeAdapter{name: "fake", prefix: "A"}))
	def := userModel()

	first, err := reg.Transform(def, "fake")
	require.NoError(t, err)
	second, err := reg.Transform(def, "fake")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRegistry_LastWriteWins(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := transformer.New(transformer.WithLogger(zap.New(core)))

	reg.Register(fakeAdapter{name: "dup", prefix: "A"})
	reg.Register(fakeAdapter{name: "dup", prefix: "B"})

	out, err := reg.Transform(userModel(), "dup")
	require.NoError(t, err)
	assert.Equal(t, "B:User:id,name", out)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, 1, logs.FilterMessage("adapter replaced").Len())
}

func TestRegistry_NotFound(t *testing.T) {
	cases := map[string]*transformer.Registry{
		"empty":        transformer.New(),
		"non-matching": transformer.New(transformer.WithAdapters(fakeAdapter{name: "fake"})),
	}

	for name, reg := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := reg.Transform(userModel(), "nonexistent")
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.Is(err, transformer.ErrAdapterNotFound))

			var notFound *transformer.AdapterNotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, "nonexistent", notFound.Name)
			assert.Equal(t, `transformer: adapter "nonexistent" not found`, err.Error())

			requested, ok := transformer.IsAdapterNotFound(err)
			assert.True(t, ok)
			assert.Equal(t, "nonexistent", requested)
		})
	}
}

func TestRegistry_NotFoundHintListsAdapters(t *testing.T) {
	reg := transformer.New(transformer.WithAdapters(
		fakeAdapter{name: "python"},
		fakeAdapter{name: "typescript"},
	))

	_, err := reg.Transform(userModel(), "java")
	require.Error(t, err)
	assert.Equal(t, []string{"registered adapters: python, typescript"}, crdberrors.GetAllHints(err))

	_, err = transformer.New().Transform(userModel(), "java")
	assert.Equal(t, []string{"no adapters are registered"}, crdberrors.GetAllHints(err))
}

func TestRegistry_AdapterErrorPropagatesUnchanged(t *testing.T) {
	boom := errors.New("boom")
	reg := transformer.New(transformer.WithAdapters(fakeAdapter{name: "broken", err: boom}))

	_, err := reg.Transform(userModel(), "broken")
	assert.Same(t, boom, err)
	_, isNotFound := transformer.IsAdapterNotFound(err)
	assert.False(t, isNotFound)
}

func TestRegistry_NamesAreExactKeys(t *testing.T) {
	reg := transformer.New(transformer.WithAdapters(fakeAdapter{name: "Postgres"}))

	assert.True(t, reg.Has("Postgres"))
	assert.False(t, reg.Has("postgres"))
}

func TestRegistry_NilAdapterIgnored(t *testing.T) {
	reg := transformer.New()
	reg.Register(nil)
	assert.Zero(t, reg.Len())
}

func TestRegistry_ListAndUnregister(t *testing.T) {
	reg := transformer.New(transformer.WithAdapters(
		fakeAdapter{name: "typescript"},
		fakeAdapter{name: "postgres"},
		fakeAdapter{name: "python"},
	))

	assert.Equal(t, []string{"postgres", "python", "typescript"}, reg.List())

	assert.True(t, reg.Unregister("python"))
	assert.False(t, reg.Unregister("python"))
	assert.Equal(t, []string{"postgres", "typescript"}, reg.List())

	a, err := reg.Get("postgres")
	require.NoError(t, err)
	assert.Equal(t, "postgres", a.Name())
}

func TestRegistry_TransformAll(t *testing.T) {
	reg := transformer.New(transformer.WithAdapters(
		fakeAdapter{name: "a", prefix: "A"},
		fakeAdapter{name: "b", prefix: "B"},
	))

	outputs, err := reg.TransformAll(userModel(), "b", "a")
	require.NoError(t, err)
	assert.Equal(t, []transformer.Output{
		{Adapter: "b", Text: "B:User:id,name"},
		{Adapter: "a", Text: "A:User:id,name"},
	}, outputs)

	outputs, err = reg.TransformAll(userModel(), "a", "missing", "b")
	require.Error(t, err)
	assert.Len(t, outputs, 1)
}

func TestRegistry_TransformDoesNotMutateModel(t *testing.T) {
	reg := transformer.New(transformer.WithAdapters(fakeAdapter{name: "fake"}))
	def := model.New("Order").String("status", model.Enum("pending")).Build()
	before, err := def.Fields.MarshalJSON()
	require.NoError(t, err)

	_, err = reg.Transform(def, "fake")
	require.NoError(t, err)

	after, err := def.Fields.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRegistry_ConcurrentRegisterAndTransform(t *testing.T) {
	reg := transformer.New(transformer.WithAdapters(fakeAdapter{name: "stable", prefix: "S"}))
	def := userModel()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			reg.Register(fakeAdapter{name: fmt.Sprintf("worker-%d", i%4), prefix: "W"})
		}(i)
		go func() {
			defer wg.Done()
			out, err := reg.Transform(def, "stable")
			assert.NoError(t, err)
			assert.Equal(t, "S:User:id,name", out)
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, reg.Len())
}
