package mixin

import (
	"reflect"

	"github.com/ygrebnov/mixin/behavior"
	"github.com/ygrebnov/mixin/errors"
	"github.com/ygrebnov/mixin/internal/core"
)

// Option configures a composition.
type Option func(*composeConfig)

type composeConfig struct {
	shareTemplate bool
}

// WithSharedTemplate reproduces the legacy composition behavior: the
// extension's behaviors are installed directly onto the base class's own
// template, so every instance of the base class gains them, including
// instances created before the composition or without it. Fields are never
// shared this way, only behaviors. Without this option the composed class
// gets an isolated template and the base class is left untouched.
func WithSharedTemplate() Option {
	return func(c *composeConfig) {
		c.shareTemplate = true
	}
}

// ComposedConstructor is the type-level shape of a composed constructor: a
// construction capability taking the labeled pair of both argument types and
// yielding a composed instance. Composed.New satisfies it.
type ComposedConstructor[TBaseArgs any, TBase any, TExtArgs any, TExt any] func(args Args[TBaseArgs, TExtArgs]) (*Instance[TBase, TExt], error)

// Composed is the constructor descriptor produced by Compose. It is built
// once and may be invoked any number of times; each invocation yields an
// independent instance.
type Composed[TBaseArgs any, TBase any, TExtArgs any, TExt any] struct {
	base     *Class[TBaseArgs, TBase]
	ext      *Class[TExtArgs, TExt]
	template behavior.Template
	plan     *core.MergePlan
}

// Compose combines a base class and an extension class into one composed
// constructor. The merged field layout and behavior template are resolved
// here, once; construction later reuses them.
//
// Behavior precedence on name collisions is last-applied-wins: the
// extension's behavior replaces the base's in the composed template. The same
// policy applies to same-name fields.
func Compose[TBaseArgs any, TBase any, TExtArgs any, TExt any](
	base *Class[TBaseArgs, TBase],
	ext *Class[TExtArgs, TExt],
	opts ...Option,
) (*Composed[TBaseArgs, TBase, TExtArgs, TExt], error) {
	if base == nil || ext == nil {
		return nil, errors.ErrNilConstructor
	}

	var cfg composeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	plan, err := core.NewMergePlan(base.objType, ext.objType)
	if err != nil {
		return nil, err
	}

	var tpl behavior.Template
	if cfg.shareTemplate {
		// Legacy mode: mutate the base class's template in place and alias it.
		tpl = base.template
	} else {
		tpl = base.template.Clone()
	}
	if err = tpl.MergeFrom(ext.template); err != nil {
		return nil, err
	}

	return &Composed[TBaseArgs, TBase, TExtArgs, TExt]{
		base:     base,
		ext:      ext,
		template: tpl,
		plan:     plan,
	}, nil
}

// New constructs a composed instance. The base instance is built first
// through the base class's own construction path, then the extension
// instance; a failure from either constructor is returned unchanged. The two
// results are merged into a single value: base fields first, extension fields
// on top, copied shallowly.
func (c *Composed[TBaseArgs, TBase, TExtArgs, TExt]) New(args Args[TBaseArgs, TExtArgs]) (*Instance[TBase, TExt], error) {
	baseObj, err := c.base.New(args.Base)
	if err != nil {
		return nil, err
	}
	extObj, err := c.ext.New(args.Ext)
	if err != nil {
		return nil, err
	}

	baseV, err := objectValue(baseObj)
	if err != nil {
		return nil, err
	}
	extV, err := objectValue(extObj)
	if err != nil {
		return nil, err
	}

	merged, err := c.plan.Build(baseV, extV)
	if err != nil {
		return nil, err
	}
	view, err := core.NewStructView(merged)
	if err != nil {
		return nil, err
	}

	return &Instance[TBase, TExt]{
		value:    merged,
		view:     view,
		template: c.template,
	}, nil
}

// Constructor adapts the composed descriptor to the plain Constructor shape,
// so a composed constructor can be passed anywhere a Constructor is expected.
func (c *Composed[TBaseArgs, TBase, TExtArgs, TExt]) Constructor() Constructor[Args[TBaseArgs, TExtArgs], Instance[TBase, TExt]] {
	return c.New
}

// Template returns the composed behavior template. In shared-template mode
// this is the base class's own template.
func (c *Composed[TBaseArgs, TBase, TExtArgs, TExt]) Template() behavior.Template {
	return c.template
}

// Class wraps the composed constructor as a class of its own, so compositions
// chain: Compose(Compose(a, b).Class(), c). The returned class aliases the
// composed template and exposes the merged struct type for further merging.
func (c *Composed[TBaseArgs, TBase, TExtArgs, TExt]) Class() *Class[Args[TBaseArgs, TExtArgs], Instance[TBase, TExt]] {
	return &Class[Args[TBaseArgs, TExtArgs], Instance[TBase, TExt]]{
		ctor:     c.New,
		template: c.template,
		objType:  c.plan.Merged(),
	}
}

// Merged returns the merged struct type of composed instances.
func (c *Composed[TBaseArgs, TBase, TExtArgs, TExt]) Merged() reflect.Type {
	return c.plan.Merged()
}
