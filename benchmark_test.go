package mixin

import (
	"testing"

	"github.com/ygrebnov/mixin/behavior"
)

// Benchmark shapes sized like typical small domain structs.
type benchBase struct {
	ID    int
	Name  string
	Tags  []string
	Score float64
}

type benchBaseArgs struct {
	ID   int
	Name string
}

func newBenchBase(a benchBaseArgs) (*benchBase, error) {
	return &benchBase{ID: a.ID, Name: a.Name, Tags: []string{"a", "b"}, Score: 1.5}, nil
}

type benchExt struct {
	Name    string
	Owner   string
	Entries map[string]string
}

type benchExtArgs struct {
	Owner string
}

func newBenchExt(a benchExtArgs) (*benchExt, error) {
	return &benchExt{Name: "ext", Owner: a.Owner, Entries: map[string]string{"k": "v"}}, nil
}

func benchClasses(b *testing.B) (*Class[benchBaseArgs, benchBase], *Class[benchExtArgs, benchExt]) {
	b.Helper()
	describe, err := behavior.New("describe", func(recv behavior.Receiver, _ ...string) (any, error) {
		name, _ := recv.Field("Name")
		return name, nil
	})
	if err != nil {
		b.Fatalf("behavior.New error: %v", err)
	}
	base, err := NewClass(newBenchBase, WithBehavior(describe))
	if err != nil {
		b.Fatalf("NewClass error: %v", err)
	}
	ext, err := NewClass(newBenchExt)
	if err != nil {
		b.Fatalf("NewClass error: %v", err)
	}
	return base, ext
}

func BenchmarkCompose(b *testing.B) {
	base, ext := benchClasses(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compose(base, ext); err != nil {
			b.Fatalf("Compose error: %v", err)
		}
	}
}

func BenchmarkComposedNew(b *testing.B) {
	base, ext := benchClasses(b)
	composed, err := Compose(base, ext)
	if err != nil {
		b.Fatalf("Compose error: %v", err)
	}
	args := NewArgs(benchBaseArgs{ID: 1, Name: "n"}, benchExtArgs{Owner: "o"})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = composed.New(args); err != nil {
			b.Fatalf("New error: %v", err)
		}
	}
}

func BenchmarkInstanceCall(b *testing.B) {
	base, ext := benchClasses(b)
	composed, err := Compose(base, ext)
	if err != nil {
		b.Fatalf("Compose error: %v", err)
	}
	inst, err := composed.New(NewArgs(benchBaseArgs{ID: 1, Name: "n"}, benchExtArgs{Owner: "o"}))
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = inst.Call("describe"); err != nil {
			b.Fatalf("Call error: %v", err)
		}
	}
}

func BenchmarkInstanceAs(b *testing.B) {
	base, ext := benchClasses(b)
	composed, err := Compose(base, ext)
	if err != nil {
		b.Fatalf("Compose error: %v", err)
	}
	inst, err := composed.New(NewArgs(benchBaseArgs{ID: 1, Name: "n"}, benchExtArgs{Owner: "o"}))
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out benchBase
		if err = inst.As(&out); err != nil {
			b.Fatalf("As error: %v", err)
		}
	}
}
