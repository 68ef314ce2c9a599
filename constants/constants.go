package constants

const Namespace = "mixin"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace
