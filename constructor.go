// Package mixin composes two class constructors into one synthesized
// constructor whose instances carry the data fields and behaviors of both
// source classes.
//
// A class is a typed constructor function paired with a behavior template.
// Composing a base class with an extension class yields a composed
// constructor taking a labeled pair of the two original argument values and
// producing a single instance whose shape is the structural merge of both
// instance shapes. When both classes declare a field or behavior with the
// same name, the extension's declaration wins.
package mixin

// Constructor is a constructor descriptor: a construction capability taking
// an argument value of type TArgs and yielding an instance of TObject.
// Zero-argument constructors use struct{} as TArgs.
type Constructor[TArgs any, TObject any] func(args TArgs) (*TObject, error)

// Args is the labeled argument pair accepted by a composed constructor. The
// two original argument values stay separate; they are never merged
// positionally.
type Args[TBaseArgs any, TExtArgs any] struct {
	Base TBaseArgs
	Ext  TExtArgs
}

// NewArgs builds the argument pair for a composed constructor.
func NewArgs[TBaseArgs any, TExtArgs any](base TBaseArgs, ext TExtArgs) Args[TBaseArgs, TExtArgs] {
	return Args[TBaseArgs, TExtArgs]{Base: base, Ext: ext}
}
